package interval

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Booking is the engine's view of an existing reservation. OwnerKey names
// the calendar that must stay conflict-free (an employee for leave, a
// vehicle for reservations); Category is only consulted by usage queries.
type Booking struct {
	ID       string
	OwnerKey string
	Category string
	Range    DateRange
	Status   Status
}

// Active reports whether the booking counts toward conflicts and usage.
// Rejected and cancelled bookings do not block anything.
func (b Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// HasConflict reports whether candidate shares at least one calendar day
// with an active booking for ownerKey. A booking whose ID equals excludeID
// is always skipped so that editing a booking cannot conflict with itself;
// pass "" when no booking exists yet.
func HasConflict(candidate DateRange, ownerKey, excludeID string, existing []Booking) bool {
	for _, b := range existing {
		if b.OwnerKey != ownerKey || !b.Active() {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b.Range) {
			return true
		}
	}
	return false
}

// DisabledDays returns the days within window that a date picker must grey
// out: every day contained in an active, non-excluded booking for ownerKey.
func DisabledDays(window DateRange, ownerKey, excludeID string, existing []Booking) []time.Time {
	var out []time.Time
	end := DayOf(window.End)
	for day := DayOf(window.Start); !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, b := range existing {
			if b.OwnerKey != ownerKey || !b.Active() {
				continue
			}
			if excludeID != "" && b.ID == excludeID {
				continue
			}
			if b.Range.Contains(day) {
				out = append(out, day)
				break
			}
		}
	}
	return out
}
