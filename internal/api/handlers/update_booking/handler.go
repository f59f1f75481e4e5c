package update_booking

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
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStart       = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "изменять бронирование может только его автор или администратор клуба"
	msgCannotEdit         = "отмененное бронирование нельзя изменить"
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

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, bookingID, h.location)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *submitBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /bookings/{id} - Conflict: booking_id=%d, alternative=%t", bookingID, conflict.Alternative != nil)
			handlers.RespondConflict(w, conflict.Alternative)

		case errors.Is(err, submitBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitBooking.ErrCannotEdit):
			h.logger.Warn("PUT /bookings/{id} - Cannot edit: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotEdit)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			if errs, ok := handlers.AsValidation(err); ok {
				h.logger.Warn("PUT /bookings/{id} - Validation failed: booking_id=%d, fields=%v", bookingID, errs.Fields())
				handlers.RespondValidation(w, errs)
				return
			}
			if handlers.RespondBookingAPIError(w, err) {
				h.logger.Warn("PUT /bookings/{id} - Booking API error: booking_id=%d, error=%v", bookingID, err)
				return
			}
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, user_id=%d", bookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking, actor))
}
