package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	getDaySchedule "github.com/m04kA/SMC-CourtScheduler/internal/usecase/get_day_schedule"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized   = "требуется авторизация"
)

type Handler struct {
	useCase  GetDayScheduleUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetDayScheduleUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{id}/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		Actor:      actor,
		ResourceID: courtID,
		Date:       date,
	})
	if err != nil {
		if errors.Is(err, getDaySchedule.ErrInvalidInput) {
			h.logger.Warn("GET /courts/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		if handlers.RespondBookingAPIError(w, err) {
			h.logger.Warn("GET /courts/{id}/schedule - Booking API error: court_id=%d, date=%s, error=%v", courtID, dateStr, err)
			return
		}
		h.logger.Error("GET /courts/{id}/schedule - Failed to get schedule: court_id=%d, date=%s, error=%v", courtID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts/{id}/schedule - Schedule retrieved: court_id=%d, date=%s, slots=%d, stale=%t",
		courtID, dateStr, len(result.Slots), result.Stale)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, actor))
}
