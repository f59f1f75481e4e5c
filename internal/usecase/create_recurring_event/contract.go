package create_recurring_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/recurrence"
)

// BookingAPIClient интерфейс клиента API бронирований
type BookingAPIClient interface {
	CreateRecurringEvent(ctx context.Context, actor domain.Actor, req recurrence.Request) error
}

// CourtsService интерфейс сервиса кортов клуба
type CourtsService interface {
	GetCourt(ctx context.Context, actor domain.Actor, clubID, courtID int64) (domain.Court, error)
}

// EventPublisher интерфейс публикации событий
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
