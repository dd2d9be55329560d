package interval

// UsageSummary totals working days booked within one category.
type UsageSummary struct {
	UsedDays    int `json:"usedDays"`
	CurrentDays int `json:"currentDays"`
	TotalDays   int `json:"totalDays"`
}

// Summarize totals the working days ownerKey has booked in category.
// UsedDays covers active bookings other than the candidate itself;
// CurrentDays is the candidate's own count when it belongs to category,
// else zero. No quota ceiling is applied here; callers only display the
// numbers or layer their own policy on top.
func (c *Counter) Summarize(category, ownerKey string, candidate Booking, existing []Booking) (UsageSummary, error) {
	var summary UsageSummary
	for _, b := range existing {
		if b.OwnerKey != ownerKey || b.Category != category || !b.Active() {
			continue
		}
		if candidate.ID != "" && b.ID == candidate.ID {
			continue
		}
		days, err := c.CountWorkingDays(b.Range)
		if err != nil {
			return UsageSummary{}, err
		}
		summary.UsedDays += days
	}

	if candidate.Category == category {
		days, err := c.CountWorkingDays(candidate.Range)
		if err != nil {
			return UsageSummary{}, err
		}
		summary.CurrentDays = days
	}

	summary.TotalDays = summary.UsedDays + summary.CurrentDays
	return summary, nil
}
