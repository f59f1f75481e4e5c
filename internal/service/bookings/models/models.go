package models

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
// ResourceID и Date указывают, где искать бронирование для проверки прав
type CancelBookingRequest struct {
	Actor      domain.Actor
	BookingID  int64
	ResourceID int64
	Date       time.Time
}

// GetDayBookingsRequest запрос бронирований корта на день
type GetDayBookingsRequest struct {
	Actor           domain.Actor
	ResourceID      int64
	Date            time.Time
	IncludeInactive bool
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	ResourceID      int64   `json:"resourceId"`
	ClubID          int64   `json:"clubId,omitempty"`
	Start           string  `json:"start"` // ISO 8601
	End             string  `json:"end"`   // ISO 8601
	DurationMinutes int     `json:"durationMinutes"`
	ParticipantIDs  []int64 `json:"participantIds"`
	BookedByID      int64   `json:"bookedById"`
	Status          string  `json:"status"`
	Kind            string  `json:"kind"`
	Description     *string `json:"description,omitempty"`
	Editable        bool    `json:"editable"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Editable вычисляется для actor: владелец или администратор клуба
func FromDomainBooking(b *domain.Booking, actor domain.Actor) *BookingResponse {
	if b == nil {
		return nil
	}

	participants := b.ParticipantIDs
	if participants == nil {
		participants = []int64{}
	}

	return &BookingResponse{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		ClubID:          b.ClubID,
		Start:           b.Start.Format(time.RFC3339),
		End:             b.End.Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes(),
		ParticipantIDs:  participants,
		BookedByID:      b.BookedByID,
		Status:          string(b.Status),
		Kind:            string(b.Kind),
		Description:     b.Description,
		Editable:        b.CanBeEditedBy(actor),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, actor domain.Actor) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, actor); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}
