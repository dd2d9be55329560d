package fleet

import (
	"context"

	"rms/internal/domain/interval"
)

type StoreAPI interface {
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	VehicleExists(ctx context.Context, vehicleID string) (bool, error)
	InsertReservation(ctx context.Context, res Reservation) (string, error)
	GetReservation(ctx context.Context, reservationID string) (Reservation, error)
	ListReservationsForVehicle(ctx context.Context, vehicleID string) ([]Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservationID string, status interval.Status) error
}
