package create_recurring_event

import (
	"context"

	createRecurringEvent "github.com/m04kA/SMC-CourtScheduler/internal/usecase/create_recurring_event"
)

type CreateRecurringEventUseCase interface {
	Execute(ctx context.Context, req *createRecurringEvent.Request) (*createRecurringEvent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
