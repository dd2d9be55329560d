package fleet

import (
	"time"

	"rms/internal/domain/interval"
)

type Vehicle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plate     string    `json:"plate"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}

type Reservation struct {
	ID         string          `json:"id"`
	VehicleID  string          `json:"vehicleId"`
	EmployeeID string          `json:"employeeId"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Purpose    string          `json:"purpose"`
	Status     interval.Status `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ScheduleEntry is one reservation with the blocks a vehicle calendar draws.
type ScheduleEntry struct {
	Reservation Reservation        `json:"reservation"`
	Segments    []interval.Segment `json:"segments"`
}

// The vehicle is the owner key here: its calendar is the one that must stay
// conflict-free, no matter which employee books it.
func (r Reservation) engineBooking() interval.Booking {
	return interval.Booking{
		ID:       r.ID,
		OwnerKey: r.VehicleID,
		Range:    interval.DateRange{Start: r.StartDate, End: r.EndDate},
		Status:   r.Status,
	}
}

func engineBookings(reservations []Reservation) []interval.Booking {
	out := make([]interval.Booking, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, r.engineBooking())
	}
	return out
}
