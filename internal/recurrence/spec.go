// Package recurrence validates recurring event templates and turns them into
// the payload the booking API expects.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// ErrInvalidTemplate возвращается ToRequest для шаблона, не прошедшего Validate
var ErrInvalidTemplate = errors.New("recurrence: invalid template")

// Validate проверяет шаблон повторяющегося события
// Каждое нарушенное правило дает отдельную ошибку поля, все ошибки возвращаются вместе
// maxDescriptionLength <= 0 означает ограничение по умолчанию
func Validate(t domain.RecurringEventTemplate, maxDescriptionLength int) domain.ValidationErrors {
	if maxDescriptionLength <= 0 {
		maxDescriptionLength = domain.DefaultMaxDescriptionLength
	}

	var errs domain.ValidationErrors

	if t.ResourceID <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   domain.FieldResource,
			Code:    domain.CodeRequired,
			Message: "court is required",
		})
	}

	if err, ok := checkWeekdays(t); !ok {
		errs = append(errs, err)
	}
	if err, ok := checkDailyTime(t); !ok {
		errs = append(errs, err)
	}
	if err, ok := checkDateRange(t); !ok {
		errs = append(errs, err)
	}
	if err, ok := checkDescription(t, maxDescriptionLength); !ok {
		errs = append(errs, err)
	}

	return errs
}

// ToRequest собирает payload для API
// Номера дней берутся из единой таблицы domain, сортируются и не повторяются
func ToRequest(t domain.RecurringEventTemplate, maxDescriptionLength int) (Request, error) {
	if errs := Validate(t, maxDescriptionLength); len(errs) > 0 {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, errs)
	}

	return Request{
		ResourceID:     t.ResourceID,
		DailyStartTime: t.DailyStart.String(),
		DailyEndTime:   t.DailyEnd.String(),
		Recurrence:     Pattern{Days: domain.WeekdayNumbers(t.Weekdays)},
		Description:    strings.TrimSpace(t.Description),
		DateRangeStart: t.DateRangeStart.Format(domain.DateFormat),
		DateRangeEnd:   t.DateRangeEnd.Format(domain.DateFormat),
	}, nil
}

func checkWeekdays(t domain.RecurringEventTemplate) (domain.FieldError, bool) {
	if len(t.Weekdays) == 0 {
		return domain.FieldError{
			Field:   domain.FieldWeekdays,
			Code:    domain.CodeEmpty,
			Message: "select at least one weekday",
		}, false
	}
	for _, day := range t.Weekdays {
		if !domain.IsValidWeekday(day) {
			return domain.FieldError{
				Field:   domain.FieldWeekdays,
				Code:    domain.CodeInvalid,
				Message: fmt.Sprintf("weekday %d is out of range 0..6", int(day)),
			}, false
		}
	}
	return domain.FieldError{}, true
}

func checkDailyTime(t domain.RecurringEventTemplate) (domain.FieldError, bool) {
	if t.DailyStart.IsZero() || t.DailyEnd.IsZero() {
		return domain.FieldError{
			Field:   domain.FieldDailyTime,
			Code:    domain.CodeRequired,
			Message: "daily start and end times are required",
		}, false
	}
	if t.DailyStart.Validate() != nil || t.DailyEnd.Validate() != nil {
		return domain.FieldError{
			Field:   domain.FieldDailyTime,
			Code:    domain.CodeInvalid,
			Message: "daily times must be in HH:mm format",
		}, false
	}
	if !t.DailyStart.IsBefore(t.DailyEnd) {
		return domain.FieldError{
			Field:   domain.FieldDailyTime,
			Code:    domain.CodeRange,
			Message: "daily start time must be before end time",
		}, false
	}
	return domain.FieldError{}, true
}

func checkDateRange(t domain.RecurringEventTemplate) (domain.FieldError, bool) {
	if t.DateRangeStart.IsZero() || t.DateRangeEnd.IsZero() {
		return domain.FieldError{
			Field:   domain.FieldDateRange,
			Code:    domain.CodeRequired,
			Message: "date range start and end are required",
		}, false
	}
	// сравниваются календарные даты, время суток игнорируется
	if !domain.DateOnly(t.DateRangeStart).Before(domain.DateOnly(t.DateRangeEnd)) {
		return domain.FieldError{
			Field:   domain.FieldDateRange,
			Code:    domain.CodeRange,
			Message: "date range start must be before end",
		}, false
	}
	return domain.FieldError{}, true
}

func checkDescription(t domain.RecurringEventTemplate, maxLength int) (domain.FieldError, bool) {
	description := strings.TrimSpace(t.Description)
	if description == "" {
		return domain.FieldError{
			Field:   domain.FieldDescription,
			Code:    domain.CodeRequired,
			Message: "description is required",
		}, false
	}
	if utf8.RuneCountInString(description) > maxLength {
		return domain.FieldError{
			Field:   domain.FieldDescription,
			Code:    domain.CodeTooLong,
			Message: fmt.Sprintf("description must be at most %d characters", maxLength),
		}, false
	}
	return domain.FieldError{}, true
}
