package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/bookings/models"
	submitBooking "github.com/m04kA/SMC-CourtScheduler/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStart       = "некорректные дата или время начала, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase  SubmitBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase SubmitBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *submitBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Conflict: user_id=%d, court_id=%d, alternative=%t",
				actor.UserID, req.ResourceID, conflict.Alternative != nil)
			handlers.RespondConflict(w, conflict.Alternative)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			if errs, ok := handlers.AsValidation(err); ok {
				h.logger.Warn("POST /bookings - Validation failed: user_id=%d, fields=%v", actor.UserID, errs.Fields())
				handlers.RespondValidation(w, errs)
				return
			}
			if handlers.RespondBookingAPIError(w, err) {
				h.logger.Warn("POST /bookings - Booking API error: user_id=%d, court_id=%d, error=%v",
					actor.UserID, req.ResourceID, err)
				return
			}
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				actor.UserID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.Booking.ID, actor.UserID, result.Booking.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking, actor))
}
