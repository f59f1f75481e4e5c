package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/pkg/ptr"
)

func tm(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, time.UTC)
}

func slotAt(hour, minute int) domain.TimeSlot {
	start := tm(hour, minute)
	return domain.TimeSlot{Start: start, End: start.Add(30 * time.Minute)}
}

func TestClassify_RegularBooking(t *testing.T) {
	now := tm(7, 0)
	bookings := []*domain.Booking{
		{ID: 1, ResourceID: 1, Start: tm(10, 0), End: tm(11, 0), BookedByID: 42, Status: domain.StatusConfirmed, Kind: domain.KindRegular},
	}

	tests := []struct {
		slot domain.TimeSlot
		want Status
	}{
		{slot: slotAt(9, 30), want: StatusAvailable},
		{slot: slotAt(10, 0), want: StatusBookedRegular},
		{slot: slotAt(10, 30), want: StatusBookedRegular},
		{slot: slotAt(11, 0), want: StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.slot.Start.Format("15:04"), func(t *testing.T) {
			got := Classify(tt.slot, now, bookings)
			assert.Equal(t, tt.want, got.Status)
			if tt.want == StatusBookedRegular {
				assert.Equal(t, int64(42), got.BookedByID)
				assert.Equal(t, int64(1), got.BookingID)
				assert.False(t, got.Actionable())
			}
		})
	}
}

func TestClassify_EventBooking(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 2, Start: tm(18, 0), End: tm(20, 0), Status: domain.StatusConfirmed, Kind: domain.KindEvent, Description: ptr.Ptr("Club league")},
	}

	got := Classify(slotAt(19, 0), tm(7, 0), bookings)

	assert.Equal(t, StatusBookedEvent, got.Status)
	assert.Equal(t, "Club league", got.Description)
}

func TestClassify_PastWinsOverBooked(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Start: tm(10, 0), End: tm(11, 0), Status: domain.StatusConfirmed, Kind: domain.KindRegular},
	}

	assert.Equal(t, StatusPast, Classify(slotAt(10, 0), tm(10, 0), bookings).Status, "start == now is past")
	assert.Equal(t, StatusPast, Classify(slotAt(9, 0), tm(10, 15), nil).Status)
	assert.Equal(t, StatusBookedRegular, Classify(slotAt(10, 30), tm(10, 15), bookings).Status)
}

func TestClassify_IgnoresCancelled(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Start: tm(10, 0), End: tm(11, 0), Status: domain.StatusCancelled, Kind: domain.KindRegular},
	}

	assert.Equal(t, StatusAvailable, Classify(slotAt(10, 0), tm(7, 0), bookings).Status)
}

func TestClassifyDay_TotalAndIdempotent(t *testing.T) {
	now := tm(12, 10)
	bookings := []*domain.Booking{
		{ID: 1, Start: tm(13, 0), End: tm(14, 30), Status: domain.StatusConfirmed, Kind: domain.KindRegular},
		{ID: 2, Start: tm(18, 0), End: tm(19, 0), Status: domain.StatusConfirmed, Kind: domain.KindEvent},
		{ID: 3, Start: tm(20, 0), End: tm(21, 0), Status: domain.StatusCancelled, Kind: domain.KindRegular},
	}
	slots := GenerateDefault(now)

	first := ClassifyDay(slots, now, bookings)
	second := ClassifyDay(slots, now, bookings)

	assert.Equal(t, first, second)
	assert.Len(t, first, len(slots))

	counts := map[Status]int{}
	for _, a := range first {
		counts[a.Status]++
	}
	// 08:00..12:00 прошли (9 слотов), 13:00-14:30 занято (3), 18:00-19:00 событие (2)
	assert.Equal(t, 9, counts[StatusPast])
	assert.Equal(t, 3, counts[StatusBookedRegular])
	assert.Equal(t, 2, counts[StatusBookedEvent])
	assert.Equal(t, len(slots)-14, counts[StatusAvailable])
}
