package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// Request модель запроса на создание или изменение бронирования
type Request struct {
	Actor  domain.Actor
	Intent domain.BookingIntent

	// Где сейчас находится редактируемое бронирование
	// Нулевые значения: корт и день из Intent
	OriginalResourceID int64
	OriginalDate       time.Time
}

// Response модель ответа с сохраненным бронированием
type Response struct {
	Booking *domain.Booking
	Created bool // false для изменения существующего
}

// SuggestRequest запрос альтернативного корта на интервал
type SuggestRequest struct {
	Actor           domain.Actor
	ResourceID      int64 // корт, который исключается из поиска
	Start           time.Time
	DurationMinutes int
	IgnoreBookingID *int64 // бронирование, которое не считается занятостью (при редактировании)
}
