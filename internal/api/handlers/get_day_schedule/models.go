package get_day_schedule

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/bookings/models"
	getDaySchedule "github.com/m04kA/SMC-CourtScheduler/internal/usecase/get_day_schedule"
	"github.com/m04kA/SMC-CourtScheduler/pkg/types"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	ResourceID int64                    `json:"resourceId"`
	Date       string                   `json:"date"`
	Generation int64                    `json:"generation"`
	FetchedAt  string                   `json:"fetchedAt"`
	Stale      bool                     `json:"stale"`
	Slots      []SlotResponse           `json:"slots"`
	Bookings   []models.BookingResponse `json:"bookings"`
}

// SlotResponse модель слота сетки
type SlotResponse struct {
	StartTime   string `json:"startTime"` // "08:00"
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	Actionable  bool   `json:"actionable"`
	BookingID   int64  `json:"bookingId,omitempty"`
	BookedByID  int64  `json:"bookedById,omitempty"`
	Description string `json:"description,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response, actor domain.Actor) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:   types.NewTimeString(slot.Slot.Start).String(),
			EndTime:     types.NewTimeString(slot.Slot.End).String(),
			Status:      string(slot.Status),
			Actionable:  slot.Actionable(),
			BookingID:   slot.BookingID,
			BookedByID:  slot.BookedByID,
			Description: slot.Description,
		}
	}

	return &DayScheduleResponse{
		ResourceID: resp.ResourceID,
		Date:       resp.Date.Format(domain.DateFormat),
		Generation: resp.Generation,
		FetchedAt:  resp.FetchedAt.Format(time.RFC3339),
		Stale:      resp.Stale,
		Slots:      slots,
		Bookings:   models.FromDomainBookingList(resp.Bookings, actor).Bookings,
	}
}
