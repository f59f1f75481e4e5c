package submit_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
)

var (
	// ErrBookingNotFound возвращается, когда редактируемое бронирование не найдено
	ErrBookingNotFound = errors.New("submit_booking: booking not found")

	// ErrAccessDenied возвращается, когда редактирует не владелец и не администратор клуба
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrCannotEdit возвращается при попытке изменить отмененное бронирование
	ErrCannotEdit = errors.New("submit_booking: cancelled booking cannot be edited")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")
)

// ConflictError API отклонило бронирование: интервал уже занят
// Alternative - свободный корт на тот же интервал, если нашелся
// Предложение не резервирует корт и может устареть до повторной отправки
type ConflictError struct {
	Alternative *schedule.Alternative
	Cause       error
}

func (e *ConflictError) Error() string {
	if e.Alternative != nil {
		return fmt.Sprintf("booking conflict, court %d is free at %s: %v",
			e.Alternative.ResourceID, e.Alternative.Start.Format(domain.TimeFormat), e.Cause)
	}
	return fmt.Sprintf("booking conflict, no alternative court: %v", e.Cause)
}

// Unwrap позволяет errors.Is(err, domain.ErrConflict)
func (e *ConflictError) Unwrap() error {
	return e.Cause
}
