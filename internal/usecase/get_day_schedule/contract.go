package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// BookingAPIClient интерфейс клиента API бронирований
type BookingAPIClient interface {
	ListBookings(ctx context.Context, actor domain.Actor, resourceID int64, date time.Time) ([]*domain.Booking, error)
}

// SnapshotRepository интерфейс хранилища снимков бронирований
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.BookingSnapshot) (bool, error)
	Get(ctx context.Context, resourceID int64, day time.Time) (*domain.BookingSnapshot, error)
}

// Metrics интерфейс метрик use case
type Metrics interface {
	IncSupersededSnapshot()
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
