package fleet

import (
	"context"
	"time"

	"rms/internal/domain/interval"
)

// Service guards vehicle calendars with the same interval engine the leave
// domain uses; only the owner key changes.
type Service struct {
	store   StoreAPI
	counter *interval.Counter
}

func NewService(store StoreAPI, counter *interval.Counter) *Service {
	return &Service{store: store, counter: counter}
}

func (s *Service) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	return s.store.ListVehicles(ctx)
}

func (s *Service) GetReservation(ctx context.Context, reservationID string) (Reservation, error) {
	return s.store.GetReservation(ctx, reservationID)
}

func (s *Service) CreateReservation(ctx context.Context, vehicleID, employeeID, purpose string, start, end time.Time) (Reservation, error) {
	rng, err := interval.NewDateRange(start, end)
	if err != nil {
		return Reservation{}, err
	}

	ok, err := s.store.VehicleExists(ctx, vehicleID)
	if err != nil {
		return Reservation{}, err
	}
	if !ok {
		return Reservation{}, ErrUnknownVehicle
	}

	existing, err := s.store.ListReservationsForVehicle(ctx, vehicleID)
	if err != nil {
		return Reservation{}, err
	}
	if interval.HasConflict(rng, vehicleID, "", engineBookings(existing)) {
		return Reservation{}, ErrConflict
	}

	res := Reservation{
		VehicleID:  vehicleID,
		EmployeeID: employeeID,
		StartDate:  rng.Start,
		EndDate:    rng.End,
		Purpose:    purpose,
		Status:     interval.StatusApproved,
	}
	id, err := s.store.InsertReservation(ctx, res)
	if err != nil {
		return Reservation{}, err
	}
	res.ID = id
	return res, nil
}

func (s *Service) CancelReservation(ctx context.Context, reservationID string) (Reservation, error) {
	res, err := s.store.GetReservation(ctx, reservationID)
	if err != nil {
		return Reservation{}, err
	}
	if res.Status == interval.StatusCancelled {
		return Reservation{}, ErrInvalidState
	}
	if err := s.store.UpdateReservationStatus(ctx, reservationID, interval.StatusCancelled); err != nil {
		return Reservation{}, err
	}
	res.Status = interval.StatusCancelled
	return res, nil
}

// DisabledDays reports which days in the window are already taken for the
// vehicle, for the booking form's date picker.
func (s *Service) DisabledDays(ctx context.Context, vehicleID string, from, to time.Time) ([]time.Time, error) {
	window, err := interval.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.ListReservationsForVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return interval.DisabledDays(window, vehicleID, "", engineBookings(existing)), nil
}

// Schedule returns the vehicle's active reservations with the working-day
// blocks its calendar draws.
func (s *Service) Schedule(ctx context.Context, vehicleID string) ([]ScheduleEntry, error) {
	ok, err := s.store.VehicleExists(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownVehicle
	}

	reservations, err := s.store.ListReservationsForVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	entries := make([]ScheduleEntry, 0, len(reservations))
	for _, res := range reservations {
		if !res.engineBooking().Active() {
			continue
		}
		segments, err := s.counter.Segments(interval.DateRange{Start: res.StartDate, End: res.EndDate})
		if err != nil {
			return nil, err
		}
		entries = append(entries, ScheduleEntry{Reservation: res, Segments: segments})
	}
	return entries, nil
}
