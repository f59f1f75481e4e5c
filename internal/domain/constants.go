package domain

// Grid defaults
const (
	SlotStepMinutes         = 30
	MaxDurationMinutes      = 24 * 60
	DefaultGridStartMinutes = 8 * 60     // 08:00
	DefaultGridEndMinutes   = 21*60 + 30 // 21:30, start of the last slot
)

// Party limits. The booker is implicit and not listed among participants.
const (
	MinParticipants = 1
	MaxParticipants = 3
	MaxPartySize    = MaxParticipants + 1
)

// Recurring event limits
const (
	DefaultMaxDescriptionLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
