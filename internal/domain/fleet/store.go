package fleet

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rms/internal/domain/interval"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, plate, seats, created_at
    FROM vehicles
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Plate, &v.Seats, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (s *Store) VehicleExists(ctx context.Context, vehicleID string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM vehicles WHERE id = $1", vehicleID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertReservation(ctx context.Context, res Reservation) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO vehicle_reservations (vehicle_id, employee_id, start_date, end_date, purpose, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, res.VehicleID, res.EmployeeID, res.StartDate, res.EndDate, res.Purpose, res.Status).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetReservation(ctx context.Context, reservationID string) (Reservation, error) {
	var res Reservation
	err := s.DB.QueryRow(ctx, `
    SELECT id, vehicle_id, employee_id, start_date, end_date, purpose, status, created_at
    FROM vehicle_reservations
    WHERE id = $1
  `, reservationID).Scan(&res.ID, &res.VehicleID, &res.EmployeeID, &res.StartDate, &res.EndDate, &res.Purpose, &res.Status, &res.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Reservation{}, ErrNotFound
	}
	if err != nil {
		return Reservation{}, err
	}
	return res, nil
}

func (s *Store) ListReservationsForVehicle(ctx context.Context, vehicleID string) ([]Reservation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, vehicle_id, employee_id, start_date, end_date, purpose, status, created_at
    FROM vehicle_reservations
    WHERE vehicle_id = $1
    ORDER BY start_date
  `, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(&res.ID, &res.VehicleID, &res.EmployeeID, &res.StartDate, &res.EndDate, &res.Purpose, &res.Status, &res.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (s *Store) UpdateReservationStatus(ctx context.Context, reservationID string, status interval.Status) error {
	tag, err := s.DB.Exec(ctx, "UPDATE vehicle_reservations SET status = $1 WHERE id = $2", status, reservationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
