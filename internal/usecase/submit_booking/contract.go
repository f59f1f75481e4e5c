package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// BookingAPIClient интерфейс клиента API бронирований
type BookingAPIClient interface {
	ListBookings(ctx context.Context, actor domain.Actor, resourceID int64, date time.Time) ([]*domain.Booking, error)
	CreateBooking(ctx context.Context, actor domain.Actor, intent domain.BookingIntent) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, actor domain.Actor, bookingID int64, intent domain.BookingIntent) (*domain.Booking, error)
}

// CourtsService интерфейс сервиса кортов клуба
type CourtsService interface {
	ListCourts(ctx context.Context, actor domain.Actor, clubID int64) ([]domain.Court, error)
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics интерфейс метрик конфликтов
type Metrics interface {
	IncConflict()
	ObserveAlternative(found bool)
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
