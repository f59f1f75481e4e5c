package get_court_bookings

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
func ToServiceRequest(actor domain.Actor, courtID int64, dateStr, includeInactiveStr string, loc *time.Location) (*models.GetDayBookingsRequest, error) {
	if loc == nil {
		loc = time.Local
	}
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}

	var includeInactive bool
	if includeInactiveStr != "" {
		includeInactive, err = strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
	}

	return &models.GetDayBookingsRequest{
		Actor:           actor,
		ResourceID:      courtID,
		Date:            date,
		IncludeInactive: includeInactive,
	}, nil
}
