package booking

import (
	"context"
	"time"

	"rms/internal/domain/interval"
)

// Service holds the leave-request rules: every write is validated against
// the same conflict and working-day functions the picker endpoints use, so
// the backend never trusts a client-side check.
type Service struct {
	store   StoreAPI
	counter *interval.Counter
}

func NewService(store StoreAPI, counter *interval.Counter) *Service {
	return &Service{store: store, counter: counter}
}

func (s *Service) ListTypes(ctx context.Context) ([]LeaveType, error) {
	return s.store.ListTypes(ctx)
}

func (s *Service) ListRequests(ctx context.Context, employeeID string, limit, offset int) ([]Request, int, error) {
	return s.store.ListRequests(ctx, employeeID, limit, offset)
}

func (s *Service) GetRequest(ctx context.Context, requestID string) (Request, error) {
	return s.store.GetRequest(ctx, requestID)
}

func (s *Service) CreateRequest(ctx context.Context, employeeID, leaveTypeID, reason string, start, end time.Time) (Request, error) {
	rng, err := interval.NewDateRange(start, end)
	if err != nil {
		return Request{}, err
	}

	ok, err := s.store.EmployeeExists(ctx, employeeID)
	if err != nil {
		return Request{}, err
	}
	if !ok {
		return Request{}, ErrUnknownEmployee
	}
	ok, err = s.store.TypeExists(ctx, leaveTypeID)
	if err != nil {
		return Request{}, err
	}
	if !ok {
		return Request{}, ErrUnknownLeaveType
	}

	existing, err := s.store.ListRequestsForEmployee(ctx, employeeID)
	if err != nil {
		return Request{}, err
	}
	// A new request has no id yet, so there is nothing to exclude.
	if interval.HasConflict(rng, employeeID, "", engineBookings(existing)) {
		return Request{}, ErrConflict
	}

	days, err := s.counter.CountWorkingDays(rng)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   rng.Start,
		EndDate:     rng.End,
		WorkingDays: days,
		Reason:      reason,
		Status:      interval.StatusPending,
	}
	id, err := s.store.InsertRequest(ctx, req)
	if err != nil {
		return Request{}, err
	}
	req.ID = id
	return req, nil
}

// UpdateRequest moves a pending request to a new range. The request's own
// id is excluded from the conflict check so it cannot collide with itself.
func (s *Service) UpdateRequest(ctx context.Context, requestID string, start, end time.Time) (Request, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if req.Status != interval.StatusPending {
		return Request{}, ErrInvalidState
	}

	rng, err := interval.NewDateRange(start, end)
	if err != nil {
		return Request{}, err
	}

	existing, err := s.store.ListRequestsForEmployee(ctx, req.EmployeeID)
	if err != nil {
		return Request{}, err
	}
	if interval.HasConflict(rng, req.EmployeeID, req.ID, engineBookings(existing)) {
		return Request{}, ErrConflict
	}

	days, err := s.counter.CountWorkingDays(rng)
	if err != nil {
		return Request{}, err
	}
	if err := s.store.UpdateRequestRange(ctx, requestID, rng.Start, rng.End, days); err != nil {
		return Request{}, err
	}

	req.StartDate = rng.Start
	req.EndDate = rng.End
	req.WorkingDays = days
	return req, nil
}

func (s *Service) ApproveRequest(ctx context.Context, requestID string) (Request, error) {
	return s.transition(ctx, requestID, interval.StatusApproved, interval.StatusPending)
}

func (s *Service) RejectRequest(ctx context.Context, requestID string) (Request, error) {
	return s.transition(ctx, requestID, interval.StatusRejected, interval.StatusPending)
}

// CancelRequest withdraws a request that has not been approved yet.
func (s *Service) CancelRequest(ctx context.Context, requestID string) (Request, error) {
	return s.transition(ctx, requestID, interval.StatusCancelled, interval.StatusPending)
}

func (s *Service) transition(ctx context.Context, requestID string, to interval.Status, from interval.Status) (Request, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if req.Status != from {
		return Request{}, ErrInvalidState
	}
	if err := s.store.UpdateRequestStatus(ctx, requestID, to); err != nil {
		return Request{}, err
	}
	req.Status = to
	return req, nil
}

// DisabledDays answers the date-picker query: which days in window cannot be
// chosen as either endpoint of a new or edited request for employeeID.
func (s *Service) DisabledDays(ctx context.Context, employeeID, excludeRequestID string, from, to time.Time) ([]time.Time, error) {
	window, err := interval.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.ListRequestsForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return interval.DisabledDays(window, employeeID, excludeRequestID, engineBookings(existing)), nil
}

// CalendarEntries returns every pending or approved request together with
// the working-day segments a calendar grid should draw for it.
func (s *Service) CalendarEntries(ctx context.Context) ([]CalendarEntry, error) {
	requests, err := s.store.ListActiveRequests(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]CalendarEntry, 0, len(requests))
	for _, req := range requests {
		segments, err := s.counter.Segments(interval.DateRange{Start: req.StartDate, End: req.EndDate})
		if err != nil {
			return nil, err
		}
		entries = append(entries, CalendarEntry{Request: req, Segments: segments})
	}
	return entries, nil
}

// Usage produces the per-type quota display for one employee. When the
// caller is evaluating a draft request it passes the candidate range, type
// and (for edits) the id to exclude; zero values mean "no candidate".
func (s *Service) Usage(ctx context.Context, employeeID string, candidate interval.Booking) ([]TypeUsage, error) {
	ok, err := s.store.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownEmployee
	}

	types, err := s.store.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.ListRequestsForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	bookings := engineBookings(existing)
	usage := make([]TypeUsage, 0, len(types))
	for _, t := range types {
		summary, err := s.counter.Summarize(t.ID, employeeID, candidate, bookings)
		if err != nil {
			return nil, err
		}
		usage = append(usage, TypeUsage{
			LeaveTypeID: t.ID,
			Code:        t.Code,
			Name:        t.Name,
			AnnualDays:  t.AnnualDays,
			Summary:     summary,
		})
	}
	return usage, nil
}
