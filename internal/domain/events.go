package domain

import "time"

// Routing keys of published booking events
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventBookingConflict  = "booking.conflict"
	EventRecurringCreated = "recurring.created"
)

// BookingEvent is the payload of every booking.* and recurring.* event
type BookingEvent struct {
	Type            string    `json:"type"`
	BookingID       int64     `json:"bookingId,omitempty"`
	ResourceID      int64     `json:"resourceId"`
	ClubID          int64     `json:"clubId,omitempty"`
	ActorID         int64     `json:"actorId"`
	Start           time.Time `json:"start,omitempty"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	AlternativeID   *int64    `json:"alternativeResourceId,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}
