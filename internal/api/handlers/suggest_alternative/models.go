package suggest_alternative

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	submitBooking "github.com/m04kA/SMC-CourtScheduler/internal/usecase/submit_booking"
)

// SuggestionResponse HTTP response model
// Alternative == nil, если свободных кортов нет
type SuggestionResponse struct {
	Found       bool                          `json:"found"`
	Alternative *handlers.AlternativeResponse `json:"alternative,omitempty"`
}

// ToUseCaseRequest создает запрос из query параметров
// date, startTime и durationMinutes обязательны, ignoreBookingId - нет
func ToUseCaseRequest(actor domain.Actor, courtID int64, query url.Values, loc *time.Location) (*submitBooking.SuggestRequest, error) {
	start, err := createBooking.ParseStart(query.Get("date"), query.Get("startTime"), loc)
	if err != nil {
		return nil, err
	}
	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		return nil, err
	}

	req := &submitBooking.SuggestRequest{
		Actor:           actor,
		ResourceID:      courtID,
		Start:           start,
		DurationMinutes: duration,
	}
	if raw := query.Get("ignoreBookingId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.IgnoreBookingID = &id
	}
	return req, nil
}
