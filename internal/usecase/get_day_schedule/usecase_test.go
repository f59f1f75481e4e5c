package get_day_schedule

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	snapshotRepo "github.com/m04kA/SMC-CourtScheduler/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
	"github.com/m04kA/SMC-CourtScheduler/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAPI struct {
	responses [][]*domain.Booking
	err       error
	calls     int
	// beforeReturn вызывается внутри запроса, имитируя параллельную выборку
	beforeReturn func(call int)
}

func (f *fakeAPI) ListBookings(_ context.Context, _ domain.Actor, _ int64, _ time.Time) ([]*domain.Booking, error) {
	call := f.calls
	f.calls++
	if f.beforeReturn != nil {
		f.beforeReturn(call)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.responses[call], nil
}

type memoryRepo struct {
	mu   sync.Mutex
	rows map[string]*domain.BookingSnapshot
}

func key(resourceID int64, day time.Time) string {
	return fmt.Sprintf("%d/%s", resourceID, day.Format(domain.DateFormat))
}

func (r *memoryRepo) Save(_ context.Context, s *domain.BookingSnapshot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rows == nil {
		r.rows = map[string]*domain.BookingSnapshot{}
	}
	k := key(s.ResourceID, s.Day)
	if old, ok := r.rows[k]; ok && old.Generation >= s.Generation {
		return false, nil
	}
	r.rows[k] = s
	return true, nil
}

func (r *memoryRepo) Get(_ context.Context, resourceID int64, day time.Time) (*domain.BookingSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[key(resourceID, day)]
	if !ok {
		return nil, snapshotRepo.ErrSnapshotNotFound
	}
	return s, nil
}

type fakeMetrics struct{ superseded int }

func (f *fakeMetrics) IncSupersededSnapshot() { f.superseded++ }

var (
	day   = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	actor = domain.Actor{UserID: 7, ClubID: 1, Token: "t"}
)

func booking(id int64, startHour, endHour int) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		ResourceID: 4,
		Start:      day.Add(time.Duration(startHour) * time.Hour),
		End:        day.Add(time.Duration(endHour) * time.Hour),
		BookedByID: 42,
		Status:     domain.StatusConfirmed,
		Kind:       domain.KindRegular,
	}
}

func newTestUseCase(api BookingAPIClient, repo SnapshotRepository, m Metrics) *UseCase {
	uc := NewUseCase(api, repo, m, schedule.DefaultGridConfig(), time.UTC, logger.Nop())
	uc.timeProvider = fixedTime{now: day.Add(7 * time.Hour)}
	return uc
}

func statusAt(t *testing.T, resp *Response, hour, minute int) schedule.Status {
	t.Helper()
	for _, a := range resp.Slots {
		if a.Slot.Start.Hour() == hour && a.Slot.Start.Minute() == minute {
			return a.Status
		}
	}
	t.Fatalf("no slot at %02d:%02d", hour, minute)
	return ""
}

func TestExecute_ClassifiesFetchedBookings(t *testing.T) {
	api := &fakeAPI{responses: [][]*domain.Booking{{booking(1, 10, 11)}}}
	uc := newTestUseCase(api, &memoryRepo{}, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{Actor: actor, ResourceID: 4, Date: day.Add(13 * time.Hour)})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 28)
	assert.Equal(t, day, resp.Date)
	assert.False(t, resp.Stale)
	assert.Equal(t, schedule.StatusAvailable, statusAt(t, resp, 9, 30))
	assert.Equal(t, schedule.StatusBookedRegular, statusAt(t, resp, 10, 0))
	assert.Equal(t, schedule.StatusBookedRegular, statusAt(t, resp, 10, 30))
	assert.Equal(t, schedule.StatusAvailable, statusAt(t, resp, 11, 0))
}

func TestExecute_SupersededFetchDoesNotOverwriteNewerState(t *testing.T) {
	repo := &memoryRepo{}
	m := &fakeMetrics{}
	api := &fakeAPI{responses: [][]*domain.Booking{
		{},                   // медленная первая выборка: еще без бронирования
		{booking(1, 10, 11)}, // вторая выборка, начатая позже, но завершенная раньше
	}}
	uc := newTestUseCase(api, repo, m)

	var newer *Response
	api.beforeReturn = func(call int) {
		if call != 0 {
			return
		}
		var err error
		newer, err = uc.Execute(context.Background(), &Request{Actor: actor, ResourceID: 4, Date: day})
		require.NoError(t, err)
	}

	older, err := uc.Execute(context.Background(), &Request{Actor: actor, ResourceID: 4, Date: day})
	require.NoError(t, err)

	require.NotNil(t, newer)
	assert.Greater(t, newer.Generation, int64(0))
	assert.Equal(t, newer.Generation, older.Generation, "older fetch serves the newer snapshot")
	assert.Equal(t, schedule.StatusBookedRegular, statusAt(t, older, 10, 0))
	assert.Equal(t, 1, m.superseded)

	stored, err := repo.Get(context.Background(), 4, day)
	require.NoError(t, err)
	assert.Len(t, stored.Bookings, 1)
}

func TestExecute_TransportErrorFallsBackToStoredSnapshot(t *testing.T) {
	repo := &memoryRepo{}
	api := &fakeAPI{responses: [][]*domain.Booking{{booking(1, 18, 19)}}}
	uc := newTestUseCase(api, repo, nil)

	_, err := uc.Execute(context.Background(), &Request{Actor: actor, ResourceID: 4, Date: day})
	require.NoError(t, err)

	api.err = domain.ErrTransport
	resp, err := uc.Execute(context.Background(), &Request{Actor: actor, ResourceID: 4, Date: day})

	require.NoError(t, err)
	assert.True(t, resp.Stale)
	assert.Equal(t, schedule.StatusBookedRegular, statusAt(t, resp, 18, 30))
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(&fakeAPI{err: domain.ErrTransport}, &memoryRepo{}, nil)
	_, err := uc.Execute(context.Background(), &Request{Actor: actor, ResourceID: 4, Date: day})
	assert.ErrorIs(t, err, domain.ErrTransport, "nothing stored to fall back to")

	uc = newTestUseCase(&fakeAPI{err: domain.ErrSession}, &memoryRepo{}, nil)
	_, err = uc.Execute(context.Background(), &Request{Actor: actor, ResourceID: 4, Date: day})
	assert.ErrorIs(t, err, domain.ErrSession)

	_, err = uc.Execute(context.Background(), &Request{Actor: actor, Date: day})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerationCounter_StrictlyIncreasing(t *testing.T) {
	var g generationCounter
	now := time.Unix(100, 0)

	first := g.next(now)
	second := g.next(now)
	third := g.next(now.Add(-time.Hour))

	assert.Equal(t, now.UnixNano(), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}
