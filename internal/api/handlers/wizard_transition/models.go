package wizard_transition

import (
	"fmt"
	"sort"

	createRecurringEvent "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/create_recurring_event"
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/wizard"
)

// TransitionRequest HTTP request model
// Пустой state означает начальное состояние мастера
type TransitionRequest struct {
	State *StateDTO                            `json:"state,omitempty"`
	Event EventDTO                             `json:"event"`
	Form  createRecurringEvent.TemplateRequest `json:"form"`
}

// StateDTO состояние мастера на клиенте
type StateDTO struct {
	Step      string   `json:"step"`
	Completed []string `json:"completed"`
}

// EventDTO событие мастера
type EventDTO struct {
	Type   string `json:"type"`             // next, back, jump, close
	Target string `json:"target,omitempty"` // имя шага для jump
}

// TransitionResponse HTTP response model
type TransitionResponse struct {
	State     StateDTO            `json:"state"`
	Terminal  bool                `json:"terminal"`
	Navigable []string            `json:"navigable"`
	Errors    []domain.FieldError `json:"errors"`
}

// ToState восстанавливает состояние мастера
// Состояние, недостижимое переходами машины, отклоняется
func (d *StateDTO) ToState(initial wizard.State) (wizard.State, error) {
	if d == nil {
		return initial, nil
	}
	step, err := wizard.ParseStep(d.Step)
	if err != nil {
		return wizard.State{}, err
	}
	completed := make([]wizard.Step, 0, len(d.Completed))
	for _, name := range d.Completed {
		s, err := wizard.ParseStep(name)
		if err != nil {
			return wizard.State{}, err
		}
		completed = append(completed, s)
	}
	sort.Slice(completed, func(i, j int) bool { return completed[i] < completed[j] })

	state := wizard.State{StepIndex: int(step), Completed: completed}
	if err := state.Validate(); err != nil {
		return wizard.State{}, err
	}
	return state, nil
}

// ToEvent конвертирует событие
func (d EventDTO) ToEvent() (wizard.Event, error) {
	event := wizard.Event{Type: wizard.EventType(d.Type)}
	switch event.Type {
	case wizard.EventNext, wizard.EventBack, wizard.EventClose:
		return event, nil
	case wizard.EventJump:
		target, err := wizard.ParseStep(d.Target)
		if err != nil {
			return wizard.Event{}, err
		}
		event.Target = target
		return event, nil
	default:
		return wizard.Event{}, fmt.Errorf("unknown wizard event %q", d.Type)
	}
}

// FromState конвертирует состояние в DTO
func FromState(state wizard.State) StateDTO {
	completed := make([]string, len(state.Completed))
	for i, s := range state.Completed {
		completed[i] = s.String()
	}
	return StateDTO{Step: state.Current().String(), Completed: completed}
}

func stepNames(steps []wizard.Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.String()
	}
	return names
}
