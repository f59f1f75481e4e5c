package get_court_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/bookings"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidParams  = "некорректные параметры запроса"
	msgUnauthorized   = "требуется авторизация"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/bookings
// Query params: date (required), includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /courts/{id}/bookings - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	serviceReq, err := ToServiceRequest(actor, courtID,
		r.URL.Query().Get("date"), r.URL.Query().Get("includeInactive"), h.location)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetDayBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/bookings - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			if handlers.RespondBookingAPIError(w, err) {
				h.logger.Warn("GET /courts/{id}/bookings - Booking API error: court_id=%d, error=%v", courtID, err)
				return
			}
			h.logger.Error("GET /courts/{id}/bookings - Failed to get bookings: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/bookings - Bookings retrieved successfully: court_id=%d, count=%d",
		courtID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
