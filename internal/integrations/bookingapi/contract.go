package bookingapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики вызовов удаленного API
type Metrics interface {
	ObserveBookingAPICall(operation string, err error, duration time.Duration)
}
