package refresh_courts

import "context"

type CourtsService interface {
	Refresh(ctx context.Context, clubID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
