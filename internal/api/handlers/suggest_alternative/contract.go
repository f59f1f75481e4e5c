package suggest_alternative

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
	submitBooking "github.com/m04kA/SMC-CourtScheduler/internal/usecase/submit_booking"
)

type AlternativeSuggester interface {
	Suggest(ctx context.Context, req *submitBooking.SuggestRequest) (*schedule.Alternative, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
