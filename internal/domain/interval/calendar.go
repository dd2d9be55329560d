package interval

import (
	"errors"
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var ErrUnknownJurisdiction = errors.New("unknown holiday jurisdiction")

// CalendarUnavailableError reports a holiday query for a year the snapshot
// was not built for. Callers must stop rather than treat the year as
// holiday-free, which would corrupt every downstream count.
type CalendarUnavailableError struct {
	Jurisdiction string
	Year         int
}

func (e *CalendarUnavailableError) Error() string {
	return fmt.Sprintf("holiday calendar %q has no data for year %d", e.Jurisdiction, e.Year)
}

const dayKey = "2006-01-02"

// jurisdictions maps configuration keys to public-holiday definitions.
var jurisdictions = map[string][]*cal.Holiday{
	"us-federal": {
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	},
}

// Calendar is an immutable public-holiday snapshot for one jurisdiction over
// a bounded, inclusive year range. All observed holiday days are resolved at
// construction, so lookups never compute or mutate anything.
type Calendar struct {
	jurisdiction string
	fromYear     int
	toYear       int
	version      string
	days         map[string]struct{}
}

// NewCalendar builds a snapshot covering [fromYear, toYear]. extra holds
// additional company-specific holiday dates; dates outside the covered years
// are ignored since queries there fail anyway.
func NewCalendar(jurisdiction string, fromYear, toYear int, extra []time.Time) (*Calendar, error) {
	defs, ok := jurisdictions[jurisdiction]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, jurisdiction)
	}
	if toYear < fromYear {
		return nil, fmt.Errorf("invalid holiday coverage %d..%d", fromYear, toYear)
	}

	business := cal.NewBusinessCalendar()
	business.AddHoliday(defs...)

	days := make(map[string]struct{})
	first := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Year() <= toYear; day = day.AddDate(0, 0, 1) {
		if _, observed, _ := business.IsHoliday(day); observed {
			days[day.Format(dayKey)] = struct{}{}
		}
	}
	for _, d := range extra {
		if d.Year() < fromYear || d.Year() > toYear {
			continue
		}
		days[DayOf(d).Format(dayKey)] = struct{}{}
	}

	return &Calendar{
		jurisdiction: jurisdiction,
		fromYear:     fromYear,
		toYear:       toYear,
		version:      fmt.Sprintf("%s:%d-%d:%d", jurisdiction, fromYear, toYear, len(days)),
		days:         days,
	}, nil
}

// IsPublicHoliday reports whether t falls on a public holiday. Dates outside
// the covered years return a CalendarUnavailableError, never a silent false.
func (c *Calendar) IsPublicHoliday(t time.Time) (bool, error) {
	if t.Year() < c.fromYear || t.Year() > c.toYear {
		return false, &CalendarUnavailableError{Jurisdiction: c.jurisdiction, Year: t.Year()}
	}
	_, ok := c.days[DayOf(t).Format(dayKey)]
	return ok, nil
}

// Version identifies the snapshot so callers can avoid comparing counts
// computed under different holiday tables.
func (c *Calendar) Version() string {
	return c.version
}
