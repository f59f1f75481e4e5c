package list_courts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/courts"
)

const (
	msgInvalidClubID = "некорректный ID клуба"
	msgUnauthorized  = "требуется авторизация"
)

type Handler struct {
	service CourtsService
	logger  Logger
}

func NewHandler(service CourtsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clubs/{clubId}/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	clubID, err := handlers.PathInt64(r, "clubId")
	if err != nil {
		h.logger.Warn("GET /clubs/{id}/courts - Invalid club ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClubID)
		return
	}

	result, err := h.service.ListCourts(r.Context(), actor, clubID)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidClubID)

		default:
			if handlers.RespondBookingAPIError(w, err) {
				h.logger.Warn("GET /clubs/{id}/courts - Booking API error: club_id=%d, error=%v", clubID, err)
				return
			}
			h.logger.Error("GET /clubs/{id}/courts - Failed to list courts: club_id=%d, error=%v", clubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clubs/{id}/courts - Courts retrieved: club_id=%d, count=%d", clubID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCourts(result))
}
