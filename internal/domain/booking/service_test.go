package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"rms/internal/domain/interval"
)

type fakeStore struct {
	types    []LeaveType
	users    map[string]bool
	requests map[string]Request
	nextID   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		types: []LeaveType{
			{ID: "lt-annual", Name: "Annual Leave", Code: "AL", IsPaid: true, AnnualDays: 25},
			{ID: "lt-sick", Name: "Sick Leave", Code: "SL", IsPaid: true, AnnualDays: 10},
		},
		users:    map[string]bool{"emp-1": true, "emp-2": true},
		requests: map[string]Request{},
	}
}

func (f *fakeStore) ListTypes(ctx context.Context) ([]LeaveType, error) { return f.types, nil }

func (f *fakeStore) TypeExists(ctx context.Context, id string) (bool, error) {
	for _, t := range f.types {
		if t.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) EmployeeExists(ctx context.Context, id string) (bool, error) {
	return f.users[id], nil
}

func (f *fakeStore) InsertRequest(ctx context.Context, req Request) (string, error) {
	f.nextID++
	id := fmt.Sprintf("req-%d", f.nextID)
	req.ID = id
	req.CreatedAt = time.Now()
	f.requests[id] = req
	return id, nil
}

func (f *fakeStore) GetRequest(ctx context.Context, id string) (Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (f *fakeStore) ListRequests(ctx context.Context, employeeID string, limit, offset int) ([]Request, int, error) {
	requests, err := f.ListRequestsForEmployee(ctx, employeeID)
	return requests, len(requests), err
}

func (f *fakeStore) ListRequestsForEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	var out []Request
	for _, req := range f.requests {
		if employeeID == "" || req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateRequestRange(ctx context.Context, id string, start, end time.Time, workingDays int) error {
	req, ok := f.requests[id]
	if !ok {
		return ErrNotFound
	}
	req.StartDate, req.EndDate, req.WorkingDays = start, end, workingDays
	f.requests[id] = req
	return nil
}

func (f *fakeStore) UpdateRequestStatus(ctx context.Context, id string, status interval.Status) error {
	req, ok := f.requests[id]
	if !ok {
		return ErrNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

func (f *fakeStore) ListActiveRequests(ctx context.Context) ([]Request, error) {
	var out []Request
	for _, req := range f.requests {
		if req.Status == interval.StatusPending || req.Status == interval.StatusApproved {
			out = append(out, req)
		}
	}
	return out, nil
}

func testService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	calendar, err := interval.NewCalendar("us-federal", 2024, 2026, nil)
	if err != nil {
		t.Fatalf("calendar error: %v", err)
	}
	store := newFakeStore()
	return NewService(store, interval.NewCounter(calendar, nil)), store
}

func date(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateRequestCountsWorkingDays(t *testing.T) {
	svc, _ := testService(t)

	// Fri Mar 8 through Mon Mar 11 spans a weekend.
	req, err := svc.CreateRequest(context.Background(), "emp-1", "lt-annual", "trip", date(8), date(11))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if req.WorkingDays != 2 {
		t.Fatalf("expected 2 working days, got %d", req.WorkingDays)
	}
	if req.Status != interval.StatusPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
}

func TestCreateRequestRejectsConflict(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(10), date(15)); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := svc.CreateRequest(ctx, "emp-1", "lt-sick", "", date(14), date(16)); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The same range is free for another employee.
	if _, err := svc.CreateRequest(ctx, "emp-2", "lt-annual", "", date(14), date(16)); err != nil {
		t.Fatalf("create for other employee error: %v", err)
	}
}

func TestCreateRequestReferentialChecks(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.CreateRequest(ctx, "ghost", "lt-annual", "", date(4), date(5)); !errors.Is(err, ErrUnknownEmployee) {
		t.Fatalf("expected ErrUnknownEmployee, got %v", err)
	}
	if _, err := svc.CreateRequest(ctx, "emp-1", "lt-ghost", "", date(4), date(5)); !errors.Is(err, ErrUnknownLeaveType) {
		t.Fatalf("expected ErrUnknownLeaveType, got %v", err)
	}
	if _, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(5), date(4)); !errors.Is(err, interval.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestUpdateRequestExcludesItself(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(11), date(13))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	// Shifting by one day overlaps the request's own range; that must not
	// count as a conflict.
	updated, err := svc.UpdateRequest(ctx, req.ID, date(12), date(14))
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.WorkingDays != 3 {
		t.Fatalf("expected 3 working days, got %d", updated.WorkingDays)
	}
}

func TestUpdateRequestStillConflictsWithOthers(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(11), date(12)); err != nil {
		t.Fatalf("create error: %v", err)
	}
	second, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(14), date(15))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if _, err := svc.UpdateRequest(ctx, second.ID, date(12), date(15)); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(11), date(12))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	approved, err := svc.ApproveRequest(ctx, req.ID)
	if err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if approved.Status != interval.StatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	if _, err := svc.CancelRequest(ctx, req.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState cancelling an approved request, got %v", err)
	}
	if _, err := svc.RejectRequest(ctx, req.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState rejecting an approved request, got %v", err)
	}
}

func TestCancelledRequestFreesTheRange(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(11), date(12))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := svc.CancelRequest(ctx, req.ID); err != nil {
		t.Fatalf("cancel error: %v", err)
	}

	if _, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(11), date(12)); err != nil {
		t.Fatalf("expected cancelled range to be reusable, got %v", err)
	}
}

func TestDisabledDays(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(11), date(12))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	disabled, err := svc.DisabledDays(ctx, "emp-1", "", date(10), date(14))
	if err != nil {
		t.Fatalf("disabled days error: %v", err)
	}
	if len(disabled) != 2 {
		t.Fatalf("expected 2 disabled days, got %v", disabled)
	}

	// Editing the same request frees its own days.
	disabled, err = svc.DisabledDays(ctx, "emp-1", req.ID, date(10), date(14))
	if err != nil {
		t.Fatalf("disabled days error: %v", err)
	}
	if len(disabled) != 0 {
		t.Fatalf("expected no disabled days when editing, got %v", disabled)
	}
}

func TestCalendarEntriesSegmentAroundWeekends(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	// Fri Mar 8 through Mon Mar 11.
	if _, err := svc.CreateRequest(ctx, "emp-1", "lt-annual", "", date(8), date(11)); err != nil {
		t.Fatalf("create error: %v", err)
	}

	entries, err := svc.CalendarEntries(ctx)
	if err != nil {
		t.Fatalf("calendar error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if len(entries[0].Segments) != 2 {
		t.Fatalf("expected 2 segments around the weekend, got %v", entries[0].Segments)
	}
}

func TestUsagePerType(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	// Tue Mar 5 - Thu Mar 7, 3 working days of sick leave.
	prior, err := svc.CreateRequest(ctx, "emp-1", "lt-sick", "", date(5), date(7))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := svc.ApproveRequest(ctx, prior.ID); err != nil {
		t.Fatalf("approve error: %v", err)
	}

	candidate := interval.Booking{
		OwnerKey: "emp-1",
		Category: "lt-sick",
		Range:    interval.DateRange{Start: date(11), End: date(12)},
	}
	usage, err := svc.Usage(ctx, "emp-1", candidate)
	if err != nil {
		t.Fatalf("usage error: %v", err)
	}

	byType := make(map[string]TypeUsage, len(usage))
	for _, u := range usage {
		byType[u.LeaveTypeID] = u
		if u.Summary.TotalDays != u.Summary.UsedDays+u.Summary.CurrentDays {
			t.Fatalf("total invariant broken for %s: %+v", u.LeaveTypeID, u.Summary)
		}
	}

	sick := byType["lt-sick"].Summary
	if sick.UsedDays != 3 || sick.CurrentDays != 2 || sick.TotalDays != 5 {
		t.Fatalf("unexpected sick usage: %+v", sick)
	}
	annual := byType["lt-annual"].Summary
	if annual.UsedDays != 0 || annual.CurrentDays != 0 || annual.TotalDays != 0 {
		t.Fatalf("unexpected annual usage: %+v", annual)
	}
}
