package wizard_transition

import (
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/wizard"
)

type WizardMachine interface {
	Initial() wizard.State
	Apply(state wizard.State, event wizard.Event, form domain.RecurringEventTemplate) wizard.State
	Navigable(state wizard.State, form domain.RecurringEventTemplate) []wizard.Step
	Errors(state wizard.State, form domain.RecurringEventTemplate) domain.ValidationErrors
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
