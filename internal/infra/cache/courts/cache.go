package courts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

const keyPrefix = "cache:courts:club:"

// Cache кеш списка кортов клуба в Redis
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кеш; ttl == 0 означает хранение без срока
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

type courtRecord struct {
	ID     int64  `json:"id"`
	ClubID int64  `json:"clubId"`
	Name   string `json:"name"`
}

// Get возвращает корты клуба; found == false, если ключа нет
func (c *Cache) Get(ctx context.Context, clubID int64) ([]domain.Court, bool, error) {
	val, err := c.client.Get(ctx, key(clubID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - club=%d: %v", ErrCache, clubID, err)
	}

	var records []courtRecord
	if err := json.Unmarshal(val, &records); err != nil {
		return nil, false, fmt.Errorf("%w: Get - club=%d: %v", ErrPayload, clubID, err)
	}

	courts := make([]domain.Court, len(records))
	for i, r := range records {
		courts[i] = domain.Court{ID: r.ID, ClubID: r.ClubID, Name: r.Name}
	}
	return courts, true, nil
}

// Save сохраняет корты клуба с TTL кеша; порядок кортов сохраняется
func (c *Cache) Save(ctx context.Context, clubID int64, courts []domain.Court) error {
	records := make([]courtRecord, len(courts))
	for i, court := range courts {
		records[i] = courtRecord{ID: court.ID, ClubID: court.ClubID, Name: court.Name}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: Save - club=%d: %v", ErrPayload, clubID, err)
	}
	if err := c.client.Set(ctx, key(clubID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - club=%d: %v", ErrCache, clubID, err)
	}
	return nil
}

// Invalidate удаляет корты клуба из кеша
func (c *Cache) Invalidate(ctx context.Context, clubID int64) error {
	if err := c.client.Del(ctx, key(clubID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - club=%d: %v", ErrCache, clubID, err)
	}
	return nil
}

func key(clubID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, clubID)
}
