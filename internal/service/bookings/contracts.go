package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// BookingAPIClient интерфейс клиента API бронирований
type BookingAPIClient interface {
	ListBookings(ctx context.Context, actor domain.Actor, resourceID int64, date time.Time) ([]*domain.Booking, error)
	CancelBooking(ctx context.Context, actor domain.Actor, bookingID int64) error
}

// CourtsService интерфейс сервиса кортов
type CourtsService interface {
	GetCourt(ctx context.Context, actor domain.Actor, clubID, courtID int64) (domain.Court, error)
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
