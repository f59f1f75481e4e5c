package update_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	submitBooking "github.com/m04kA/SMC-CourtScheduler/internal/usecase/submit_booking"
)

// UpdateBookingRequest HTTP request model
// OriginalResourceID и OriginalDate - где бронирование находится сейчас,
// если его переносят на другой корт или день
type UpdateBookingRequest struct {
	createBooking.CreateBookingRequest
	OriginalResourceID int64  `json:"originalResourceId,omitempty"`
	OriginalDate       string `json:"originalDate,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64, loc *time.Location) (*submitBooking.Request, error) {
	req, err := r.CreateBookingRequest.ToUseCaseRequest(actor, loc)
	if err != nil {
		return nil, err
	}
	req.Intent.EditingBookingID = &bookingID
	req.OriginalResourceID = r.OriginalResourceID

	if r.OriginalDate != "" {
		if loc == nil {
			loc = time.Local
		}
		date, err := time.ParseInLocation(domain.DateFormat, r.OriginalDate, loc)
		if err != nil {
			return nil, err
		}
		req.OriginalDate = date
	}
	return req, nil
}
