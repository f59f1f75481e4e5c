// Package schedule holds the pure scheduling rules of a court: the daily slot
// grid, slot availability, booking intent checks and the alternative court search.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/pkg/types"
)

// ErrInvalidGrid возвращается при некорректной конфигурации сетки
var ErrInvalidGrid = errors.New("schedule: invalid grid config")

// GridConfig задает сетку дня в минутах от полуночи
// EndMinutes - время начала ПОСЛЕДНЕГО слота, а не конец рабочего дня
type GridConfig struct {
	StartMinutes int
	EndMinutes   int
	StepMinutes  int
}

// DefaultGridConfig сетка 08:00-21:30 с шагом 30 минут (28 слотов)
func DefaultGridConfig() GridConfig {
	return GridConfig{
		StartMinutes: domain.DefaultGridStartMinutes,
		EndMinutes:   domain.DefaultGridEndMinutes,
		StepMinutes:  domain.SlotStepMinutes,
	}
}

// NewGridConfig собирает конфигурацию из строк HH:MM
func NewGridConfig(start, end types.TimeString, stepMinutes int) (GridConfig, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return GridConfig{}, fmt.Errorf("%w: start: %v", ErrInvalidGrid, err)
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return GridConfig{}, fmt.Errorf("%w: end: %v", ErrInvalidGrid, err)
	}

	cfg := GridConfig{StartMinutes: startMinutes, EndMinutes: endMinutes, StepMinutes: stepMinutes}
	if err := cfg.Validate(); err != nil {
		return GridConfig{}, err
	}
	return cfg, nil
}

// Validate проверяет, что сетка помещается в сутки и делится на шаг без остатка
func (c GridConfig) Validate() error {
	if c.StepMinutes <= 0 {
		return fmt.Errorf("%w: step must be positive", ErrInvalidGrid)
	}
	if c.StartMinutes < 0 || c.EndMinutes < c.StartMinutes {
		return fmt.Errorf("%w: start must not be after end", ErrInvalidGrid)
	}
	if c.EndMinutes+c.StepMinutes > 24*60 {
		return fmt.Errorf("%w: last slot must end within the day", ErrInvalidGrid)
	}
	if (c.EndMinutes-c.StartMinutes)%c.StepMinutes != 0 {
		return fmt.Errorf("%w: range is not a multiple of step", ErrInvalidGrid)
	}
	return nil
}

// SlotCount количество слотов сетки: (end-start)/step + 1
func (c GridConfig) SlotCount() int {
	return (c.EndMinutes-c.StartMinutes)/c.StepMinutes + 1
}

// Generate генерирует упорядоченную сетку слотов на календарный день day
// Результат не зависит от бронирований и текущего времени
func Generate(day time.Time, cfg GridConfig) ([]domain.TimeSlot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	y, m, d := day.Date()
	step := time.Duration(cfg.StepMinutes) * time.Minute

	slots := make([]domain.TimeSlot, cfg.SlotCount())
	for i := range slots {
		// time.Date нормализует переполнение минут, сохраняя выравнивание по часам стены
		start := time.Date(y, m, d, 0, cfg.StartMinutes+i*cfg.StepMinutes, 0, 0, day.Location())
		slots[i] = domain.TimeSlot{Start: start, End: start.Add(step)}
	}

	return slots, nil
}

// GenerateDefault генерирует сетку по умолчанию
func GenerateDefault(day time.Time) []domain.TimeSlot {
	slots, _ := Generate(day, DefaultGridConfig())
	return slots
}
