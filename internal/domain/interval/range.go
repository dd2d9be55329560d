// Package interval answers conflict, working-day count and segmentation
// queries over inclusive calendar-day ranges. Every operation is a pure
// function of its inputs plus an immutable holiday calendar snapshot.
package interval

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidRange = errors.New("range end precedes start")

// DateRange is an inclusive calendar-day range. Start is treated as
// start-of-day and End as end-of-day; time-of-day components are ignored for
// all comparisons and kept only so calendars can render partial edge days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange validates that end does not fall on an earlier calendar day
// than start. A single-day range has start and end on the same day.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if DayOf(end).Before(DayOf(start)) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// DayOf truncates t to midnight in its own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Days returns the inclusive calendar-day count of the range.
func (r DateRange) Days() int {
	// Round absorbs the off-by-an-hour midnight delta of DST transitions.
	return int(math.Round(DayOf(r.End).Sub(DayOf(r.Start)).Hours()/24)) + 1
}

// Contains reports whether d falls on a day covered by the range.
func (r DateRange) Contains(d time.Time) bool {
	day := DayOf(d)
	return !day.Before(DayOf(r.Start)) && !day.After(DayOf(r.End))
}

// Overlaps reports whether the two ranges share at least one calendar day.
// Both ends are inclusive on both ranges.
func (r DateRange) Overlaps(other DateRange) bool {
	return !DayOf(r.Start).After(DayOf(other.End)) && !DayOf(other.Start).After(DayOf(r.End))
}
