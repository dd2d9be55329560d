package interval

import "time"

// Weekend is the set of weekdays treated as non-working.
type Weekend map[time.Weekday]bool

func DefaultWeekend() Weekend {
	return Weekend{time.Saturday: true, time.Sunday: true}
}

// Counter answers working-day queries against one calendar snapshot.
type Counter struct {
	calendar *Calendar
	weekend  Weekend
}

// NewCounter binds a calendar snapshot to a weekly schedule. An empty
// weekend falls back to Saturday/Sunday.
func NewCounter(calendar *Calendar, weekend Weekend) *Counter {
	if len(weekend) == 0 {
		weekend = DefaultWeekend()
	}
	return &Counter{calendar: calendar, weekend: weekend}
}

// IsWorkingDay reports whether day is neither a weekend day nor a public
// holiday. Weekend days never consult holiday data.
func (c *Counter) IsWorkingDay(day time.Time) (bool, error) {
	if c.weekend[day.Weekday()] {
		return false, nil
	}
	holiday, err := c.calendar.IsPublicHoliday(day)
	if err != nil {
		return false, err
	}
	return !holiday, nil
}

// CountWorkingDays returns the number of working days in r, both ends
// inclusive. Holiday sets are irregular, so this is a day-by-day scan;
// ranges are bounded to human booking lengths.
func (c *Counter) CountWorkingDays(r DateRange) (int, error) {
	count := 0
	end := DayOf(r.End)
	for day := DayOf(r.Start); !day.After(end); day = day.AddDate(0, 0, 1) {
		working, err := c.IsWorkingDay(day)
		if err != nil {
			return 0, err
		}
		if working {
			count++
		}
	}
	return count, nil
}
