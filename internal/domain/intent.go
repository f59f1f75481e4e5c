package domain

import "time"

// BookingIntent is the in-progress single booking selection
type BookingIntent struct {
	ResourceID       int64
	Start            time.Time
	DurationMinutes  int
	ParticipantIDs   []int64
	EditingBookingID *int64
}

// End returns the end of the requested interval
func (i BookingIntent) End() time.Time {
	return i.Start.Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// IsValidDuration reports whether minutes is a whole number of grid steps within one day
func IsValidDuration(minutes int) bool {
	return minutes > 0 && minutes <= MaxDurationMinutes && minutes%SlotStepMinutes == 0
}

// IsEditing returns true if the intent modifies an existing booking
func (i BookingIntent) IsEditing() bool {
	return i.EditingBookingID != nil
}

// PartySize returns the number of players including the booker
func (i BookingIntent) PartySize() int {
	return len(i.ParticipantIDs) + 1
}
