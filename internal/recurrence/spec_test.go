package recurrence

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validTemplate() domain.RecurringEventTemplate {
	return domain.RecurringEventTemplate{
		ResourceID:     3,
		DailyStart:     types.TimeString("09:00"),
		DailyEnd:       types.TimeString("10:00"),
		Weekdays:       []time.Weekday{time.Monday, time.Wednesday},
		DateRangeStart: date(2024, 6, 1),
		DateRangeEnd:   date(2024, 6, 30),
		Description:    "Junior training",
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(validTemplate(), 0))
}

func TestValidate_EmptyWeekdaysIsTheOnlyError(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Weekdays = nil

	errs := Validate(tmpl, 0)

	require.Len(t, errs, 1)
	assert.Equal(t, domain.FieldWeekdays, errs[0].Field)
	assert.Equal(t, domain.CodeEmpty, errs[0].Code)
}

func TestValidate_ReportsAllViolationsTogether(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Weekdays = []time.Weekday{}
	tmpl.DailyStart = types.TimeString("18:00")
	tmpl.DailyEnd = types.TimeString("18:00")
	tmpl.DateRangeStart = date(2024, 7, 1)
	tmpl.DateRangeEnd = date(2024, 6, 1)
	tmpl.Description = strings.Repeat("x", 11)

	errs := Validate(tmpl, 10)

	assert.Equal(t, []string{
		domain.FieldWeekdays,
		domain.FieldDailyTime,
		domain.FieldDateRange,
		domain.FieldDescription,
	}, errs.Fields())
	assert.ErrorIs(t, errs, domain.ErrValidation)
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(tmpl *domain.RecurringEventTemplate)
		field  string
		code   string
	}{
		{
			name:   "same day range",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.DateRangeEnd = date(2024, 6, 1).Add(20 * time.Hour) },
			field:  domain.FieldDateRange,
			code:   domain.CodeRange,
		},
		{
			name:   "missing range end",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.DateRangeEnd = time.Time{} },
			field:  domain.FieldDateRange,
			code:   domain.CodeRequired,
		},
		{
			name:   "end before start time",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.DailyEnd = types.TimeString("08:30") },
			field:  domain.FieldDailyTime,
			code:   domain.CodeRange,
		},
		{
			name:   "malformed time",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.DailyStart = types.TimeString("9:00") },
			field:  domain.FieldDailyTime,
			code:   domain.CodeInvalid,
		},
		{
			name:   "weekday out of range",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.Weekdays = []time.Weekday{7} },
			field:  domain.FieldWeekdays,
			code:   domain.CodeInvalid,
		},
		{
			name:   "blank description",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.Description = "   " },
			field:  domain.FieldDescription,
			code:   domain.CodeRequired,
		},
		{
			name:   "description over default bound",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.Description = strings.Repeat("я", 201) },
			field:  domain.FieldDescription,
			code:   domain.CodeTooLong,
		},
		{
			name:   "missing court",
			mutate: func(tmpl *domain.RecurringEventTemplate) { tmpl.ResourceID = 0 },
			field:  domain.FieldResource,
			code:   domain.CodeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := validTemplate()
			tt.mutate(&tmpl)

			errs := Validate(tmpl, 0)

			require.Len(t, errs, 1, "fields: %v", errs.Fields())
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}
}

func TestValidate_DescriptionBoundCountsRunes(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Description = strings.Repeat("я", 200)

	assert.Empty(t, Validate(tmpl, 200))
}

func TestToRequest_Payload(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Weekdays = []time.Weekday{time.Saturday, time.Sunday, time.Monday, time.Saturday}
	tmpl.Description = "  Junior training "

	req, err := ToRequest(tmpl, 0)
	require.NoError(t, err)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"resourceId": 3,
		"dailyStartTime": "09:00",
		"dailyEndTime": "10:00",
		"recurrence": {"days": [0, 1, 6]},
		"description": "Junior training",
		"dateRangeStart": "2024-06-01",
		"dateRangeEnd": "2024-06-30"
	}`, string(body))
}

func TestToRequest_LabelsShareTheCanonicalTable(t *testing.T) {
	days, err := domain.ParseWeekdays([]string{"Sun", "wednesday", "SAT"})
	require.NoError(t, err)

	tmpl := validTemplate()
	tmpl.Weekdays = days

	req, err := ToRequest(tmpl, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6}, req.Recurrence.Days)
}

func TestToRequest_RejectsInvalidTemplate(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Weekdays = nil

	_, err := ToRequest(tmpl, 0)

	assert.ErrorIs(t, err, ErrInvalidTemplate)
}
