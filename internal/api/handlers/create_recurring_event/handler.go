package create_recurring_event

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	createRecurringEvent "github.com/m04kA/SMC-CourtScheduler/internal/usecase/create_recurring_event"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTemplate    = "некорректные дни недели или даты, ожидается mon..sun и YYYY-MM-DD"
	msgForbidden          = "создавать повторяющиеся события может только администратор клуба"
	msgCourtNotFound      = "корт не найден в клубе"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase  CreateRecurringEventUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateRecurringEventUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/recurring-events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req TemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recurring-events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	template, err := req.ToDomain(h.location)
	if err != nil {
		h.logger.Warn("POST /recurring-events - Failed to parse template: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createRecurringEvent.Request{Actor: actor, Template: template})
	if err != nil {
		switch {
		case errors.Is(err, createRecurringEvent.ErrAccessDenied):
			h.logger.Warn("POST /recurring-events - Access denied: user_id=%d, club_id=%d", actor.UserID, actor.ClubID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createRecurringEvent.ErrCourtNotFound):
			h.logger.Warn("POST /recurring-events - Court not found: court_id=%d, club_id=%d", req.ResourceID, actor.ClubID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			if errs, ok := handlers.AsValidation(err); ok {
				h.logger.Warn("POST /recurring-events - Validation failed: fields=%v", errs.Fields())
				handlers.RespondValidation(w, errs)
				return
			}
			if handlers.RespondBookingAPIError(w, err) {
				h.logger.Warn("POST /recurring-events - Booking API error: court_id=%d, error=%v", req.ResourceID, err)
				return
			}
			h.logger.Error("POST /recurring-events - Failed to create event: court_id=%d, error=%v", req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recurring-events - Recurring event created: court_id=%d, user_id=%d", req.ResourceID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, RecurringEventResponse{Request: result.Payload})
}
