package domain

import (
	"errors"
	"strings"
)

// ErrValidation matches every FieldError and ValidationErrors via errors.Is
var ErrValidation = errors.New("validation failed")

// Field names reported to the client
const (
	FieldResource     = "resourceId"
	FieldStart        = "start"
	FieldDuration     = "durationMinutes"
	FieldParticipants = "participantIds"
	FieldWeekdays     = "weekdays"
	FieldDailyTime    = "dailyTime"
	FieldDateRange    = "dateRange"
	FieldDescription  = "description"
)

// Error codes
const (
	CodeRequired  = "required"
	CodeInvalid   = "invalid"
	CodeInPast    = "in_past"
	CodeRange     = "range"
	CodeEmpty     = "empty"
	CodeTooLong   = "too_long"
	CodeCapacity  = "capacity"
	CodeDuplicate = "duplicate"
)

// FieldError is a local, user-facing validation failure of one field
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e FieldError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors holds at most one error per violated field
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Has returns true if the field has an error
func (v ValidationErrors) Has(field string) bool {
	_, ok := v.Get(field)
	return ok
}

// Get returns the error of the field
func (v ValidationErrors) Get(field string) (FieldError, bool) {
	for _, e := range v {
		if e.Field == field {
			return e, true
		}
	}
	return FieldError{}, false
}

// Fields lists the violated fields in report order
func (v ValidationErrors) Fields() []string {
	fields := make([]string, len(v))
	for i, e := range v {
		fields[i] = e.Field
	}
	return fields
}
