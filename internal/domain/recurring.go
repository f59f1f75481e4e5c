package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/pkg/types"
)

// RecurringEventTemplate describes repeated bookings of a court.
// It is only a template; the booking API creates the individual bookings.
type RecurringEventTemplate struct {
	ResourceID     int64
	DailyStart     types.TimeString
	DailyEnd       types.TimeString
	Weekdays       []time.Weekday
	DateRangeStart time.Time
	DateRangeEnd   time.Time
	Description    string
}

// BookingSnapshot is a point-in-time copy of one court's bookings for one day
type BookingSnapshot struct {
	ResourceID int64
	Day        time.Time
	Generation int64 // larger means a later fetch
	FetchedAt  time.Time
	Bookings   []*Booking
}
