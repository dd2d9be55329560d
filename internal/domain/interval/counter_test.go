package interval

import (
	"errors"
	"testing"
	"time"
)

func testCounter(t *testing.T) *Counter {
	t.Helper()
	calendar, err := NewCalendar("us-federal", 2024, 2026, nil)
	if err != nil {
		t.Fatalf("calendar error: %v", err)
	}
	return NewCounter(calendar, nil)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("range error: %v", err)
	}
	return r
}

func TestCountWorkingDaysSkipsHoliday(t *testing.T) {
	counter := testCounter(t)

	// Mon Jan 1 2024 is New Year's Day; Jan 1-5 is Mon-Fri.
	r := mustRange(t, day(2024, time.January, 1), day(2024, time.January, 5))
	count, err := counter.CountWorkingDays(r)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 working days, got %d", count)
	}
}

func TestCountWorkingDaysSingleDay(t *testing.T) {
	counter := testCounter(t)

	monday := day(2024, time.March, 11)
	count, err := counter.CountWorkingDays(mustRange(t, monday, monday))
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 working day, got %d", count)
	}

	saturday := day(2024, time.March, 9)
	count, err = counter.CountWorkingDays(mustRange(t, saturday, saturday))
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 working days on a Saturday, got %d", count)
	}
}

func TestCountWorkingDaysWeekendOnly(t *testing.T) {
	counter := testCounter(t)

	r := mustRange(t, day(2024, time.March, 9), day(2024, time.March, 10))
	count, err := counter.CountWorkingDays(r)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}
}

func TestCountWorkingDaysOutsideCoverage(t *testing.T) {
	counter := testCounter(t)

	r := mustRange(t, day(2031, time.March, 3), day(2031, time.March, 5))
	if _, err := counter.CountWorkingDays(r); err == nil {
		t.Fatal("expected error for year without holiday data")
	}
}

func TestIsWorkingDay(t *testing.T) {
	counter := testCounter(t)

	cases := []struct {
		name    string
		day     time.Time
		working bool
	}{
		{"weekday", day(2024, time.March, 12), true},
		{"saturday", day(2024, time.March, 9), false},
		{"sunday", day(2024, time.March, 10), false},
		{"christmas", day(2025, time.December, 25), false},
		{"juneteenth", day(2024, time.June, 19), false},
	}
	for _, tc := range cases {
		working, err := counter.IsWorkingDay(tc.day)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if working != tc.working {
			t.Fatalf("%s: expected working=%v", tc.name, tc.working)
		}
	}
}

func TestCustomWeekend(t *testing.T) {
	calendar, err := NewCalendar("us-federal", 2024, 2026, nil)
	if err != nil {
		t.Fatalf("calendar error: %v", err)
	}
	counter := NewCounter(calendar, Weekend{time.Friday: true, time.Saturday: true})

	working, err := counter.IsWorkingDay(day(2024, time.March, 10)) // Sunday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !working {
		t.Fatal("expected Sunday to be a working day under Fri/Sat weekend")
	}

	working, err = counter.IsWorkingDay(day(2024, time.March, 8)) // Friday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if working {
		t.Fatal("expected Friday to be a weekend day")
	}
}

func TestNewDateRangeRejectsReversed(t *testing.T) {
	_, err := NewDateRange(day(2024, time.February, 10), day(2024, time.February, 9))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestNewDateRangeIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.February, 10, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)
	r, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("same-day range must be valid regardless of times: %v", err)
	}
	if r.Days() != 1 {
		t.Fatalf("expected 1 day, got %d", r.Days())
	}
}
