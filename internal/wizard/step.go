package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStep возвращается ParseStep для неизвестного имени шага
	ErrUnknownStep = errors.New("wizard: unknown step")
	// ErrInvalidState возвращается для состояния, недостижимого переходами машины
	ErrInvalidState = errors.New("wizard: unreachable state")
)

// Step шаг мастера создания повторяющегося события
type Step int

// Шаги в фиксированном порядке, StepReview - терминальный
const (
	StepResource Step = iota
	StepDateRange
	StepTimeRange
	StepWeekdays
	StepDescription
	StepReview
)

var stepNames = [...]string{"resource", "date-range", "time-range", "weekdays", "description", "review"}

// Steps все шаги по порядку
func Steps() []Step {
	return []Step{StepResource, StepDateRange, StepTimeRange, StepWeekdays, StepDescription, StepReview}
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// Valid возвращает true для существующего шага
func (s Step) Valid() bool {
	return s >= StepResource && s <= StepReview
}

// IsTerminal возвращает true для шага подтверждения
func (s Step) IsTerminal() bool {
	return s == StepReview
}

// ParseStep возвращает шаг по имени
func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}
