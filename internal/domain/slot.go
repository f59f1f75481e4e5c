package domain

import "time"

// TimeSlot is one fixed cell of a court's daily grid
// Slots are built by the grid generator only; End is always Start plus the grid step
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if the slot overlaps the booking interval
func (s TimeSlot) Overlaps(b *Booking) bool {
	return Overlaps(s.Start, s.End, b.Start, b.End)
}

// Overlaps is the open-interval overlap test used everywhere in the scheduler.
// Intervals that only touch (a.End == b.Start) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
