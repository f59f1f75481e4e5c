package schedule

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/pkg/ptr"
)

// Status классификация слота
type Status string

const (
	StatusPast          Status = "past"
	StatusAvailable     Status = "available"
	StatusBookedRegular Status = "booked_regular"
	StatusBookedEvent   Status = "booked_event"
)

// Availability результат классификации одного слота
type Availability struct {
	Slot        domain.TimeSlot
	Status      Status
	BookingID   int64  // для занятых слотов
	BookedByID  int64  // для StatusBookedRegular
	Description string // для StatusBookedEvent
}

// Actionable возвращает true, если слот можно выбрать для бронирования
func (a Availability) Actionable() bool {
	return a.Status == StatusAvailable
}

// Classify определяет состояние слота относительно now и снимка бронирований
// Прошедшие слоты (start <= now) не проверяются на занятость
func Classify(slot domain.TimeSlot, now time.Time, bookings []*domain.Booking) Availability {
	if !slot.Start.After(now) {
		return Availability{Slot: slot, Status: StatusPast}
	}

	booking := FindOverlapping(slot.Start, slot.End, bookings)
	if booking == nil {
		return Availability{Slot: slot, Status: StatusAvailable}
	}

	if booking.Kind == domain.KindEvent {
		return Availability{
			Slot:        slot,
			Status:      StatusBookedEvent,
			BookingID:   booking.ID,
			Description: ptr.Value(booking.Description),
		}
	}

	return Availability{
		Slot:       slot,
		Status:     StatusBookedRegular,
		BookingID:  booking.ID,
		BookedByID: booking.BookedByID,
	}
}

// ClassifyDay классифицирует всю сетку дня
func ClassifyDay(slots []domain.TimeSlot, now time.Time, bookings []*domain.Booking) []Availability {
	result := make([]Availability, len(slots))
	for i, slot := range slots {
		result[i] = Classify(slot, now, bookings)
	}
	return result
}

// FindOverlapping возвращает первое активное бронирование, пересекающее [start, end)
// Граничащие интервалы (конец одного = начало другого) пересечением не считаются
func FindOverlapping(start, end time.Time, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if booking == nil || !booking.IsActive() {
			continue
		}
		if booking.OverlapsInterval(start, end) {
			return booking
		}
	}
	return nil
}
