package list_courts

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

type CourtsService interface {
	ListCourts(ctx context.Context, actor domain.Actor, clubID int64) ([]domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
