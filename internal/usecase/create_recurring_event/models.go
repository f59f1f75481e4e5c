package create_recurring_event

import (
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/recurrence"
)

// Request модель запроса на создание повторяющегося события
type Request struct {
	Actor    domain.Actor
	Template domain.RecurringEventTemplate
}

// Response отправленный в API payload
type Response struct {
	Payload recurrence.Request
}
