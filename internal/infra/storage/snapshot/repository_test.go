package snapshot

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/pkg/ptr"
	"github.com/m04kA/SMC-CourtScheduler/pkg/sqlbuilder"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := sql.Open(sqlbuilder.DriverSQLite, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db, sqlbuilder.DriverSQLite)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

var day = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func snapshotOf(generation int64, bookings ...*domain.Booking) *domain.BookingSnapshot {
	return &domain.BookingSnapshot{
		ResourceID: 4,
		Day:        day,
		Generation: generation,
		FetchedAt:  day.Add(time.Duration(generation) * time.Minute),
		Bookings:   bookings,
	}
}

func booking(id int64, hour int) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		ResourceID:     4,
		ClubID:         1,
		Start:          day.Add(time.Duration(hour) * time.Hour),
		End:            day.Add(time.Duration(hour+1) * time.Hour),
		ParticipantIDs: []int64{2, 3},
		BookedByID:     7,
		Status:         domain.StatusConfirmed,
		Kind:           domain.KindRegular,
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	event := booking(2, 18)
	event.Kind = domain.KindEvent
	event.Description = ptr.Ptr("League")

	stored, err := repo.Save(ctx, snapshotOf(1, booking(1, 10), event))
	require.NoError(t, err)
	assert.True(t, stored)

	got, err := repo.Get(ctx, 4, day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Generation)
	assert.Equal(t, day, got.Day)
	require.Len(t, got.Bookings, 2)
	assert.Equal(t, booking(1, 10), got.Bookings[0])
	assert.Equal(t, "League", *got.Bookings[1].Description)
	assert.True(t, got.FetchedAt.Equal(day.Add(time.Minute)))
}

func TestRepository_OlderGenerationDoesNotOverwrite(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	stored, err := repo.Save(ctx, snapshotOf(5, booking(1, 10), booking(2, 12)))
	require.NoError(t, err)
	require.True(t, stored)

	stored, err = repo.Save(ctx, snapshotOf(3))
	require.NoError(t, err)
	assert.False(t, stored)

	stored, err = repo.Save(ctx, snapshotOf(5))
	require.NoError(t, err)
	assert.False(t, stored, "same generation is not newer")

	got, err := repo.Get(ctx, 4, day)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Generation)
	assert.Len(t, got.Bookings, 2)

	stored, err = repo.Save(ctx, snapshotOf(6, booking(1, 10)))
	require.NoError(t, err)
	assert.True(t, stored)

	got, err = repo.Get(ctx, 4, day)
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 1)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), 4, day)

	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestRepository_DeleteFetchedBefore(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	old := snapshotOf(1)
	old.Day = day.AddDate(0, 0, -1)
	_, err := repo.Save(ctx, old)
	require.NoError(t, err)
	_, err = repo.Save(ctx, snapshotOf(30))
	require.NoError(t, err)

	deleted, err := repo.DeleteFetchedBefore(ctx, day.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.Get(ctx, 4, day)
	assert.NoError(t, err)
}
