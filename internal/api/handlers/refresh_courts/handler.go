package refresh_courts

import (
	"net/http"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
)

const (
	msgInvalidClubID = "некорректный ID клуба"
	msgForbidden     = "сбросить кеш кортов может только администратор клуба"
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

// Handle POST /api/v1/clubs/{clubId}/courts/refresh
// Сбрасывает кешированный список кортов, следующий запрос пойдет в API
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	clubID, err := handlers.PathInt64(r, "clubId")
	if err != nil {
		h.logger.Warn("POST /clubs/{id}/courts/refresh - Invalid club ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClubID)
		return
	}

	if !actor.IsAdminOf(clubID) {
		h.logger.Warn("POST /clubs/{id}/courts/refresh - Access denied: club_id=%d, user_id=%d", clubID, actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.Refresh(r.Context(), clubID); err != nil {
		h.logger.Error("POST /clubs/{id}/courts/refresh - Failed to refresh: club_id=%d, error=%v", clubID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /clubs/{id}/courts/refresh - Courts cache dropped: club_id=%d, user_id=%d", clubID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
