package interval

import "time"

// Segment is a maximal contiguous run of working days within a range,
// produced so calendar grids do not draw one block across weekend or
// holiday gaps.
type Segment struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Segments splits r into its ordered maximal working-day runs. The first
// and last day of the whole range keep r's original time-of-day; interior
// boundaries sit on whole days. A range with no working days yields nil.
// Conflict checks and day counts always use the unsegmented range.
func (c *Counter) Segments(r DateRange) ([]Segment, error) {
	var segments []Segment
	var open *Segment
	firstDay := DayOf(r.Start)
	lastDay := DayOf(r.End)

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		working, err := c.IsWorkingDay(day)
		if err != nil {
			return nil, err
		}
		if !working {
			if open != nil {
				segments = append(segments, *open)
				open = nil
			}
			continue
		}
		if open == nil {
			start := day
			if day.Equal(firstDay) {
				start = r.Start
			}
			open = &Segment{Start: start}
		}
		if day.Equal(lastDay) {
			open.End = r.End
		} else {
			open.End = day
		}
	}
	if open != nil {
		segments = append(segments, *open)
	}
	return segments, nil
}
