package suggest_alternative

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-CourtScheduler/internal/usecase/submit_booking"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidParams  = "ожидаются параметры date (YYYY-MM-DD), startTime (HH:MM) и durationMinutes"
	msgUnauthorized   = "требуется авторизация"
)

type Handler struct {
	useCase  AlternativeSuggester
	location *time.Location
	logger   Logger
}

func NewHandler(useCase AlternativeSuggester, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/alternatives
// Query params: date, startTime, durationMinutes, ignoreBookingId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /courts/{id}/alternatives - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(actor, courtID, r.URL.Query(), h.location)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/alternatives - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	alt, err := h.useCase.Suggest(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/alternatives - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			if handlers.RespondBookingAPIError(w, err) {
				h.logger.Warn("GET /courts/{id}/alternatives - Booking API error: court_id=%d, error=%v", courtID, err)
				return
			}
			h.logger.Error("GET /courts/{id}/alternatives - Failed to search: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/alternatives - Search done: court_id=%d, found=%t", courtID, alt != nil)
	handlers.RespondJSON(w, http.StatusOK, SuggestionResponse{
		Found:       alt != nil,
		Alternative: handlers.NewAlternativeResponse(alt),
	})
}
