package snapshot

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// bookingRecord бронирование в JSON-колонке payload
type bookingRecord struct {
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

func toRecords(bookings []*domain.Booking) []bookingRecord {
	records := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		if b == nil {
			continue
		}
		records = append(records, bookingRecord{
			ID:             b.ID,
			ResourceID:     b.ResourceID,
			ClubID:         b.ClubID,
			Start:          b.Start.Format(time.RFC3339Nano),
			End:            b.End.Format(time.RFC3339Nano),
			ParticipantIDs: b.ParticipantIDs,
			BookedByID:     b.BookedByID,
			Status:         string(b.Status),
			Kind:           string(b.Kind),
			Description:    b.Description,
		})
	}
	return records
}

func fromRecords(records []bookingRecord, loc *time.Location) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(records))
	for _, r := range records {
		start, err := time.Parse(time.RFC3339Nano, r.Start)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse(time.RFC3339Nano, r.End)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, &domain.Booking{
			ID:             r.ID,
			ResourceID:     r.ResourceID,
			ClubID:         r.ClubID,
			Start:          start.In(loc),
			End:            end.In(loc),
			ParticipantIDs: r.ParticipantIDs,
			BookedByID:     r.BookedByID,
			Status:         domain.BookingStatus(r.Status),
			Kind:           domain.BookingKind(r.Kind),
			Description:    r.Description,
		})
	}
	return bookings, nil
}
