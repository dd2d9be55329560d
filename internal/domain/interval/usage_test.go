package interval

import (
	"testing"
	"time"
)

func TestSummarizePerCategory(t *testing.T) {
	counter := testCounter(t)

	// Prior approved sick booking: Tue Mar 5 - Thu Mar 7 2024, 3 working days.
	existing := []Booking{
		{
			ID:       "prior",
			OwnerKey: "U1",
			Category: "sick",
			Range:    mustRange(t, day(2024, time.March, 5), day(2024, time.March, 7)),
			Status:   StatusApproved,
		},
	}
	// Candidate sick booking: Mon Mar 11 - Tue Mar 12 2024, 2 working days.
	candidate := Booking{
		OwnerKey: "U1",
		Category: "sick",
		Range:    mustRange(t, day(2024, time.March, 11), day(2024, time.March, 12)),
		Status:   StatusPending,
	}

	sick, err := counter.Summarize("sick", "U1", candidate, existing)
	if err != nil {
		t.Fatalf("summarize error: %v", err)
	}
	if sick.UsedDays != 3 || sick.CurrentDays != 2 || sick.TotalDays != 5 {
		t.Fatalf("unexpected sick summary: %+v", sick)
	}

	personal, err := counter.Summarize("personal", "U1", candidate, existing)
	if err != nil {
		t.Fatalf("summarize error: %v", err)
	}
	if personal.UsedDays != 0 || personal.CurrentDays != 0 || personal.TotalDays != 0 {
		t.Fatalf("unexpected personal summary: %+v", personal)
	}
}

func TestSummarizeExcludesCandidateFromUsed(t *testing.T) {
	counter := testCounter(t)

	rng := mustRange(t, day(2024, time.March, 5), day(2024, time.March, 7))
	self := Booking{ID: "r1", OwnerKey: "U1", Category: "sick", Range: rng, Status: StatusPending}

	summary, err := counter.Summarize("sick", "U1", self, []Booking{self})
	if err != nil {
		t.Fatalf("summarize error: %v", err)
	}
	if summary.UsedDays != 0 {
		t.Fatalf("candidate must not count toward used days, got %d", summary.UsedDays)
	}
	if summary.CurrentDays != 3 || summary.TotalDays != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestSummarizeIgnoresInactiveAndOtherOwners(t *testing.T) {
	counter := testCounter(t)

	rng := mustRange(t, day(2024, time.March, 5), day(2024, time.March, 7))
	existing := []Booking{
		{ID: "a", OwnerKey: "U1", Category: "sick", Range: rng, Status: StatusRejected},
		{ID: "b", OwnerKey: "U1", Category: "sick", Range: rng, Status: StatusCancelled},
		{ID: "c", OwnerKey: "U2", Category: "sick", Range: rng, Status: StatusApproved},
	}
	candidate := Booking{
		OwnerKey: "U1",
		Category: "sick",
		Range:    mustRange(t, day(2024, time.March, 11), day(2024, time.March, 11)),
	}

	summary, err := counter.Summarize("sick", "U1", candidate, existing)
	if err != nil {
		t.Fatalf("summarize error: %v", err)
	}
	if summary.UsedDays != 0 {
		t.Fatalf("expected no used days, got %d", summary.UsedDays)
	}
	if summary.TotalDays != summary.UsedDays+summary.CurrentDays {
		t.Fatalf("total invariant broken: %+v", summary)
	}
}
