package create_recurring_event

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/recurrence"
	"github.com/m04kA/SMC-CourtScheduler/pkg/types"
)

// TemplateRequest HTTP модель шаблона повторяющегося события
// Пустые поля допустимы: их отсутствие сообщает валидация
type TemplateRequest struct {
	ResourceID     int64    `json:"resourceId"`
	DailyStartTime string   `json:"dailyStartTime"` // "18:00"
	DailyEndTime   string   `json:"dailyEndTime"`   // "20:00"
	Weekdays       []string `json:"weekdays"`       // "mon", "tuesday", ...
	DateRangeStart string   `json:"dateRangeStart"` // "2024-06-01"
	DateRangeEnd   string   `json:"dateRangeEnd"`
	Description    string   `json:"description"`
}

// ToDomain конвертирует запрос в шаблон
// Ошибка возвращается только для нераспознаваемых дней недели и дат
func (r *TemplateRequest) ToDomain(loc *time.Location) (domain.RecurringEventTemplate, error) {
	if loc == nil {
		loc = time.Local
	}

	weekdays, err := domain.ParseWeekdays(r.Weekdays)
	if err != nil {
		return domain.RecurringEventTemplate{}, err
	}
	start, err := parseOptionalDate(r.DateRangeStart, loc)
	if err != nil {
		return domain.RecurringEventTemplate{}, fmt.Errorf("dateRangeStart: %w", err)
	}
	end, err := parseOptionalDate(r.DateRangeEnd, loc)
	if err != nil {
		return domain.RecurringEventTemplate{}, fmt.Errorf("dateRangeEnd: %w", err)
	}

	return domain.RecurringEventTemplate{
		ResourceID:     r.ResourceID,
		DailyStart:     types.TimeString(r.DailyStartTime),
		DailyEnd:       types.TimeString(r.DailyEndTime),
		Weekdays:       weekdays,
		DateRangeStart: start,
		DateRangeEnd:   end,
		Description:    r.Description,
	}, nil
}

func parseOptionalDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(domain.DateFormat, value, loc)
}

// RecurringEventResponse отправленный в API payload
type RecurringEventResponse struct {
	Request recurrence.Request `json:"request"`
}
