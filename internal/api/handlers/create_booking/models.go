package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	submitBooking "github.com/m04kA/SMC-CourtScheduler/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-CourtScheduler/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID      int64   `json:"resourceId"`
	Date            string  `json:"date"`      // "2024-06-03"
	StartTime       string  `json:"startTime"` // "18:00"
	DurationMinutes int     `json:"durationMinutes"`
	ParticipantIDs  []int64 `json:"participantIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время интерпретируются в часовом поясе клуба
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor, loc *time.Location) (*submitBooking.Request, error) {
	start, err := ParseStart(r.Date, r.StartTime, loc)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		Actor: actor,
		Intent: domain.BookingIntent{
			ResourceID:      r.ResourceID,
			Start:           start,
			DurationMinutes: r.DurationMinutes,
			ParticipantIDs:  r.ParticipantIDs,
		},
	}, nil
}

// ParseStart собирает момент начала из даты и времени
func ParseStart(date, startTime string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	ts, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start time: %w", err)
	}
	start, err := ts.On(day)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start time: %w", err)
	}
	return start, nil
}
