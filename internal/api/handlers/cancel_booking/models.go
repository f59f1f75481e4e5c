package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
// Корт и день нужны, чтобы найти бронирование и проверить права
type CancelBookingRequest struct {
	ResourceID int64  `json:"resourceId"`
	Date       string `json:"date"` // "2024-06-03"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(actor domain.Actor, bookingID int64, loc *time.Location) (*models.CancelBookingRequest, error) {
	if loc == nil {
		loc = time.Local
	}
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}

	return &models.CancelBookingRequest{
		Actor:      actor,
		BookingID:  bookingID,
		ResourceID: r.ResourceID,
		Date:       date,
	}, nil
}
