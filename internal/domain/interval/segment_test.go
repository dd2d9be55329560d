package interval

import (
	"testing"
	"time"
)

func TestSegmentsSplitAroundWeekend(t *testing.T) {
	counter := testCounter(t)

	// Fri Mar 1 2024 through Mon Mar 4 2024.
	r := mustRange(t, day(2024, time.March, 1), day(2024, time.March, 4))
	segments, err := counter.Segments(r)
	if err != nil {
		t.Fatalf("segments error: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segments), segments)
	}
	if !segments[0].Start.Equal(day(2024, time.March, 1)) || !segments[0].End.Equal(day(2024, time.March, 1)) {
		t.Fatalf("unexpected first segment: %+v", segments[0])
	}
	if !segments[1].Start.Equal(day(2024, time.March, 4)) || !segments[1].End.Equal(day(2024, time.March, 4)) {
		t.Fatalf("unexpected second segment: %+v", segments[1])
	}
}

func TestSegmentsAllNonWorking(t *testing.T) {
	counter := testCounter(t)

	r := mustRange(t, day(2024, time.March, 9), day(2024, time.March, 10))
	segments, err := counter.Segments(r)
	if err != nil {
		t.Fatalf("segments error: %v", err)
	}
	if len(segments) != 0 {
		t.Fatalf("expected no segments for a weekend range, got %v", segments)
	}
}

func TestSegmentsKeepEdgeTimes(t *testing.T) {
	counter := testCounter(t)

	start := time.Date(2024, time.March, 1, 13, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 4, 11, 30, 0, 0, time.UTC)
	segments, err := counter.Segments(DateRange{Start: start, End: end})
	if err != nil {
		t.Fatalf("segments error: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if !segments[0].Start.Equal(start) {
		t.Fatalf("first segment must keep the original start time, got %v", segments[0].Start)
	}
	if !segments[1].End.Equal(end) {
		t.Fatalf("last segment must keep the original end time, got %v", segments[1].End)
	}
	// Interior boundaries sit on whole days.
	if !segments[0].End.Equal(day(2024, time.March, 1)) {
		t.Fatalf("interior boundary must be a whole day, got %v", segments[0].End)
	}
}

func TestSegmentsCoverExactlyTheWorkingDays(t *testing.T) {
	counter := testCounter(t)

	// Spans New Year's Day 2024 and two weekends.
	r := mustRange(t, day(2023, time.December, 29), day(2024, time.January, 8))
	calendar, err := NewCalendar("us-federal", 2023, 2026, nil)
	if err != nil {
		t.Fatalf("calendar error: %v", err)
	}
	counter = NewCounter(calendar, nil)

	segments, err := counter.Segments(r)
	if err != nil {
		t.Fatalf("segments error: %v", err)
	}

	covered := make(map[string]bool)
	for i, seg := range segments {
		if i > 0 && !DayOf(segments[i-1].End).Before(DayOf(seg.Start)) {
			t.Fatalf("segments out of order or overlapping: %v", segments)
		}
		for d := DayOf(seg.Start); !d.After(DayOf(seg.End)); d = d.AddDate(0, 0, 1) {
			covered[d.Format(dayKey)] = true
		}
	}

	for d := DayOf(r.Start); !d.After(DayOf(r.End)); d = d.AddDate(0, 0, 1) {
		working, err := counter.IsWorkingDay(d)
		if err != nil {
			t.Fatalf("working day error: %v", err)
		}
		if working != covered[d.Format(dayKey)] {
			t.Fatalf("day %s: working=%v covered=%v", d.Format(dayKey), working, covered[d.Format(dayKey)])
		}
	}
}

func TestSegmentsContinuousWeek(t *testing.T) {
	counter := testCounter(t)

	// Mon-Fri with no holidays collapses to one segment.
	r := mustRange(t, day(2024, time.March, 11), day(2024, time.March, 15))
	segments, err := counter.Segments(r)
	if err != nil {
		t.Fatalf("segments error: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("expected a single segment, got %v", segments)
	}
	if !segments[0].Start.Equal(r.Start) || !segments[0].End.Equal(r.End) {
		t.Fatalf("segment must span the whole range: %+v", segments[0])
	}
}
