package booking

import (
	"time"

	"rms/internal/domain/interval"
)

type LeaveType struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	IsPaid     bool      `json:"isPaid"`
	AnnualDays int       `json:"annualDays"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Request struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	LeaveTypeID string          `json:"leaveTypeId"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	WorkingDays int             `json:"workingDays"`
	Reason      string          `json:"reason"`
	Status      interval.Status `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CalendarEntry pairs a request with the working-day blocks a calendar grid
// draws for it. Styling follows the request's status.
type CalendarEntry struct {
	Request  Request            `json:"request"`
	Segments []interval.Segment `json:"segments"`
}

// TypeUsage is one row of the per-category quota display.
type TypeUsage struct {
	LeaveTypeID string                `json:"leaveTypeId"`
	Code        string                `json:"code"`
	Name        string                `json:"name"`
	AnnualDays  int                   `json:"annualDays"`
	Summary     interval.UsageSummary `json:"summary"`
}

func (r Request) engineBooking() interval.Booking {
	return interval.Booking{
		ID:       r.ID,
		OwnerKey: r.EmployeeID,
		Category: r.LeaveTypeID,
		Range:    interval.DateRange{Start: r.StartDate, End: r.EndDate},
		Status:   r.Status,
	}
}

func engineBookings(requests []Request) []interval.Booking {
	out := make([]interval.Booking, 0, len(requests))
	for _, req := range requests {
		out = append(out, req.engineBooking())
	}
	return out
}
