package bookingapi

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// Court модель корта из API бронирований
type Court struct {
	ID     int64  `json:"id"`
	ClubID int64  `json:"clubId"`
	Name   string `json:"name"`
}

// Booking модель бронирования из API; start/end - ISO-8601
type Booking struct {
	ID             int64   `json:"id"`
	ResourceID     int64   `json:"resourceId"`
	ClubID         int64   `json:"clubId"`
	Start          string  `json:"start"`
	End            string  `json:"end"`
	ParticipantIDs []int64 `json:"participantIds"`
	BookedByID     int64   `json:"bookedById"`
	Status         string  `json:"status"`
	Kind           string  `json:"kind"`
	Description    *string `json:"description,omitempty"`
}

// BookingRequest тело createBooking и updateBooking
type BookingRequest struct {
	ResourceID      int64   `json:"resourceId"`
	Start           string  `json:"start"`
	DurationMinutes int     `json:"durationMinutes"`
	ParticipantIDs  []int64 `json:"participantIds"`
}

// ErrorResponse модель ошибки от API бронирований
// Code заполняется не всеми версиями бэкенда
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newBookingRequest(intent domain.BookingIntent) BookingRequest {
	participants := intent.ParticipantIDs
	if participants == nil {
		participants = []int64{}
	}
	return BookingRequest{
		ResourceID:      intent.ResourceID,
		Start:           intent.Start.Format(time.RFC3339),
		DurationMinutes: intent.DurationMinutes,
		ParticipantIDs:  participants,
	}
}

func (c Court) toDomain() domain.Court {
	return domain.Court{ID: c.ID, ClubID: c.ClubID, Name: c.Name}
}

func (b Booking) toDomain() (*domain.Booking, error) {
	start, err := time.Parse(time.RFC3339, b.Start)
	if err != nil {
		return nil, fmt.Errorf("booking id=%d: start: %v", b.ID, err)
	}
	end, err := time.Parse(time.RFC3339, b.End)
	if err != nil {
		return nil, fmt.Errorf("booking id=%d: end: %v", b.ID, err)
	}

	status := domain.BookingStatus(b.Status)
	if !domain.IsValidStatus(status) {
		return nil, fmt.Errorf("booking id=%d: unknown status %q", b.ID, b.Status)
	}
	kind := domain.BookingKind(b.Kind)
	if kind == "" {
		kind = domain.KindRegular
	}
	if !domain.IsValidKind(kind) {
		return nil, fmt.Errorf("booking id=%d: unknown kind %q", b.ID, b.Kind)
	}

	return &domain.Booking{
		ID:             b.ID,
		ResourceID:     b.ResourceID,
		ClubID:         b.ClubID,
		Start:          start,
		End:            end,
		ParticipantIDs: b.ParticipantIDs,
		BookedByID:     b.BookedByID,
		Status:         status,
		Kind:           kind,
		Description:    b.Description,
	}, nil
}
