package courts

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, ttl), mr
}

func TestCache_SaveGet(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()
	courts := []domain.Court{{ID: 3, ClubID: 1, Name: "C"}, {ID: 1, ClubID: 1, Name: "A"}}

	_, found, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Save(ctx, 1, courts))

	got, found, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, courts, got, "order is preserved")
}

func TestCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, 1, []domain.Court{{ID: 1}}))
	mr.FastForward(2 * time.Minute)

	_, found, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, 1, []domain.Court{{ID: 1}}))
	require.NoError(t, cache.Invalidate(ctx, 1))

	_, found, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_BrokenValueAndDownRedis(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, mr.Set(key(1), "not json"))
	_, _, err := cache.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrPayload)

	mr.Close()
	_, _, err = cache.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrCache)
}
