// Package wizard is the step machine of the recurring event flow.
// States are values and every transition returns a new state.
package wizard

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/recurrence"
)

// State текущий шаг и пройденные шаги
type State struct {
	StepIndex int
	Completed []Step // по возрастанию, без повторов
}

// Current возвращает текущий шаг
func (s State) Current() Step {
	return Step(s.StepIndex)
}

// IsCompleted возвращает true, если шаг уже пройден
func (s State) IsCompleted(step Step) bool {
	for _, c := range s.Completed {
		if c == step {
			return true
		}
	}
	return false
}

// Validate проверяет, что состояние достижимо из начального
// Пройденные шаги образуют префикс без терминального шага, текущий шаг не дальше первого непройденного
func (s State) Validate() error {
	if !s.Current().Valid() {
		return fmt.Errorf("%w: step index %d", ErrInvalidState, s.StepIndex)
	}
	seen := make(map[Step]struct{}, len(s.Completed))
	for _, step := range s.Completed {
		if !step.Valid() || step.IsTerminal() {
			return fmt.Errorf("%w: step %s cannot be completed", ErrInvalidState, step)
		}
		if _, ok := seen[step]; ok {
			return fmt.Errorf("%w: step %s completed twice", ErrInvalidState, step)
		}
		if int(step) >= len(s.Completed) {
			return fmt.Errorf("%w: step %s completed before an earlier step", ErrInvalidState, step)
		}
		seen[step] = struct{}{}
	}
	if s.StepIndex > len(s.Completed) {
		return fmt.Errorf("%w: step %s reached with %d completed steps", ErrInvalidState, s.Current(), len(s.Completed))
	}
	return nil
}

func (s State) withStep(index int, completed ...Step) State {
	merged := make([]Step, len(s.Completed), len(s.Completed)+len(completed))
	copy(merged, s.Completed)
	for _, step := range completed {
		if !s.IsCompleted(step) {
			merged = append(merged, step)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })
	return State{StepIndex: index, Completed: merged}
}

// EventType тип события мастера
type EventType string

const (
	EventNext  EventType = "next"
	EventBack  EventType = "back"
	EventJump  EventType = "jump"
	EventClose EventType = "close"
)

// Event событие перехода; Target используется только для EventJump
type Event struct {
	Type   EventType
	Target Step
}

// Machine вычисляет переходы по данным формы
type Machine struct {
	maxDescriptionLength int
}

// NewMachine создает машину с ограничением длины описания
func NewMachine(maxDescriptionLength int) *Machine {
	return &Machine{maxDescriptionLength: maxDescriptionLength}
}

// Initial начальное состояние: первый шаг, ничего не пройдено
func (m *Machine) Initial() State {
	return State{StepIndex: int(StepResource), Completed: []Step{}}
}

// Guard проверяет, можно ли уйти вперед с шага step при данных form
func (m *Machine) Guard(step Step, form domain.RecurringEventTemplate) bool {
	field, ok := guardField(step)
	if !ok {
		return step.IsTerminal()
	}
	return !recurrence.Validate(form, m.maxDescriptionLength).Has(field)
}

// Next переходит на следующий шаг, если выполнен guard текущего
// На терминальном шаге и при невыполненном guard состояние не меняется
func (m *Machine) Next(state State, form domain.RecurringEventTemplate) State {
	current := state.Current()
	if current.IsTerminal() || !m.Guard(current, form) {
		return state
	}
	return state.withStep(state.StepIndex+1, current)
}

// Back возвращается на предыдущий шаг, не ниже первого
func (m *Machine) Back(state State) State {
	if state.StepIndex == 0 {
		return state
	}
	return state.withStep(state.StepIndex - 1)
}

// JumpTo переходит на шаг target, если он уже пройден
// или guard всех шагов до него выполняется на текущих данных
func (m *Machine) JumpTo(state State, target Step, form domain.RecurringEventTemplate) State {
	if !m.canJump(state, target, form) {
		return state
	}
	if state.IsCompleted(target) {
		return state.withStep(int(target))
	}
	return state.withStep(int(target), Steps()[:target]...)
}

// Close закрывает мастер, состояние сбрасывается
func (m *Machine) Close(State) State {
	return m.Initial()
}

// Apply применяет событие к состоянию
func (m *Machine) Apply(state State, event Event, form domain.RecurringEventTemplate) State {
	switch event.Type {
	case EventNext:
		return m.Next(state, form)
	case EventBack:
		return m.Back(state)
	case EventJump:
		return m.JumpTo(state, event.Target, form)
	case EventClose:
		return m.Close(state)
	default:
		return state
	}
}

// Navigable возвращает шаги, на которые сейчас разрешен переход
func (m *Machine) Navigable(state State, form domain.RecurringEventTemplate) []Step {
	steps := make([]Step, 0, len(stepNames))
	for _, step := range Steps() {
		if m.canJump(state, step, form) {
			steps = append(steps, step)
		}
	}
	return steps
}

// Errors возвращает ошибки полей текущего шага (для подсказок в форме)
func (m *Machine) Errors(state State, form domain.RecurringEventTemplate) domain.ValidationErrors {
	field, ok := guardField(state.Current())
	if !ok {
		return recurrence.Validate(form, m.maxDescriptionLength)
	}
	if err, found := recurrence.Validate(form, m.maxDescriptionLength).Get(field); found {
		return domain.ValidationErrors{err}
	}
	return nil
}

func (m *Machine) canJump(state State, target Step, form domain.RecurringEventTemplate) bool {
	if !target.Valid() {
		return false
	}
	if int(target) == state.StepIndex || state.IsCompleted(target) {
		return true
	}
	for _, step := range Steps()[:target] {
		if !m.Guard(step, form) {
			return false
		}
	}
	return true
}

func guardField(step Step) (string, bool) {
	switch step {
	case StepResource:
		return domain.FieldResource, true
	case StepDateRange:
		return domain.FieldDateRange, true
	case StepTimeRange:
		return domain.FieldDailyTime, true
	case StepWeekdays:
		return domain.FieldWeekdays, true
	case StepDescription:
		return domain.FieldDescription, true
	default:
		return "", false
	}
}
