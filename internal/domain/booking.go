package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingKind distinguishes member bookings from club events
type BookingKind string

const (
	KindRegular BookingKind = "regular"
	KindEvent   BookingKind = "event"
)

// Booking represents a court reservation as returned by the booking API
type Booking struct {
	ID             int64
	ResourceID     int64 // court
	ClubID         int64 // club owning the court
	Start          time.Time
	End            time.Time
	ParticipantIDs []int64 // without the booker
	BookedByID     int64
	Status         BookingStatus
	Kind           BookingKind
	Description    *string
}

// IsActive returns true if the booking occupies its interval
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanBeEditedBy reports whether the actor owns the booking or administers its club
func (b *Booking) CanBeEditedBy(actor Actor) bool {
	return b.BookedByID == actor.UserID || actor.IsAdminOf(b.ClubID)
}

// DurationMinutes returns the booking length in minutes
func (b *Booking) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// OverlapsInterval returns true if the booking shares an open sub-interval with [start, end)
func (b *Booking) OverlapsInterval(start, end time.Time) bool {
	return Overlaps(b.Start, b.End, start, end)
}

// IsValidStatus reports whether s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// IsValidKind reports whether k is a known booking kind
func IsValidKind(k BookingKind) bool {
	return k == KindRegular || k == KindEvent
}
