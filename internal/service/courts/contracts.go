package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// BookingAPIClient интерфейс клиента API бронирований
type BookingAPIClient interface {
	ListCourts(ctx context.Context, actor domain.Actor, clubID int64) ([]domain.Court, error)
}

// CourtsCache интерфейс кеша кортов клуба
type CourtsCache interface {
	Get(ctx context.Context, clubID int64) ([]domain.Court, bool, error)
	Save(ctx context.Context, clubID int64, courts []domain.Court) error
	Invalidate(ctx context.Context, clubID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
