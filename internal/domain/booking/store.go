package booking

import (
	"context"
	"errors"
	"time"

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

func (s *Store) ListTypes(ctx context.Context) ([]LeaveType, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, code, is_paid, annual_days, created_at
    FROM leave_types
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []LeaveType
	for rows.Next() {
		var t LeaveType
		if err := rows.Scan(&t.ID, &t.Name, &t.Code, &t.IsPaid, &t.AnnualDays, &t.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (s *Store) TypeExists(ctx context.Context, leaveTypeID string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_types WHERE id = $1", leaveTypeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE id = $1", employeeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertRequest(ctx context.Context, req Request) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, working_days, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, req.EmployeeID, req.LeaveTypeID, req.StartDate, req.EndDate, req.WorkingDays, req.Reason, req.Status).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetRequest(ctx context.Context, requestID string) (Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, leave_type_id, start_date, end_date, working_days, reason, status, created_at
    FROM leave_requests
    WHERE id = $1
  `, requestID).Scan(&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate, &req.WorkingDays, &req.Reason, &req.Status, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Store) ListRequests(ctx context.Context, employeeID string, limit, offset int) ([]Request, int, error) {
	query := `
    SELECT id, employee_id, leave_type_id, start_date, end_date, working_days, reason, status, created_at
    FROM leave_requests
  `
	countQuery := "SELECT COUNT(1) FROM leave_requests"
	args := []any{}
	if employeeID != "" {
		query += " WHERE employee_id = $1"
		countQuery += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY created_at DESC"

	var total int
	if err := s.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if employeeID != "" {
		query += " LIMIT $2 OFFSET $3"
	} else {
		query += " LIMIT $1 OFFSET $2"
	}
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (s *Store) ListRequestsForEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, leave_type_id, start_date, end_date, working_days, reason, status, created_at
    FROM leave_requests
    WHERE employee_id = $1
    ORDER BY start_date
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (s *Store) UpdateRequestRange(ctx context.Context, requestID string, start, end time.Time, workingDays int) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests SET start_date = $1, end_date = $2, working_days = $3 WHERE id = $4
  `, start, end, workingDays, requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateRequestStatus(ctx context.Context, requestID string, status interval.Status) error {
	tag, err := s.DB.Exec(ctx, "UPDATE leave_requests SET status = $1 WHERE id = $2", status, requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListActiveRequests(ctx context.Context) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, leave_type_id, start_date, end_date, working_days, reason, status, created_at
    FROM leave_requests
    WHERE status IN ($1,$2)
    ORDER BY start_date
  `, interval.StatusPending, interval.StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func scanRequests(rows pgx.Rows) ([]Request, error) {
	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate, &req.WorkingDays, &req.Reason, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
