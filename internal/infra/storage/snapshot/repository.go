package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/pkg/sqlbuilder"
)

const table = "booking_snapshots"

const createTable = `CREATE TABLE IF NOT EXISTS booking_snapshots (
	resource_id BIGINT NOT NULL,
	day         TEXT   NOT NULL,
	generation  BIGINT NOT NULL,
	fetched_at  BIGINT NOT NULL,
	payload     TEXT   NOT NULL,
	PRIMARY KEY (resource_id, day)
)`

// upsertSuffix перезаписывает строку только более новым поколением
const upsertSuffix = `ON CONFLICT (resource_id, day) DO UPDATE SET
	generation = EXCLUDED.generation,
	fetched_at = EXCLUDED.fetched_at,
	payload = EXCLUDED.payload
WHERE booking_snapshots.generation < EXCLUDED.generation`

// Repository хранит последний снимок бронирований корта на день
// Работает с PostgreSQL (lib/pq) и SQLite (modernc.org/sqlite)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория снимков
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{db: db, builder: sqlbuilder.For(driver)}
}

// Migrate создает таблицу снимков, если ее нет
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("%w: Migrate - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Save сохраняет снимок, если его поколение больше сохраненного
// Возвращает false, когда в хранилище уже лежит снимок того же или более нового поколения
func (r *Repository) Save(ctx context.Context, snapshot *domain.BookingSnapshot) (bool, error) {
	payload, err := json.Marshal(toRecords(snapshot.Bookings))
	if err != nil {
		return false, fmt.Errorf("%w: Save - marshal bookings: %v", ErrPayload, err)
	}

	query, args, err := r.builder.Insert(table).
		Columns("resource_id", "day", "generation", "fetched_at", "payload").
		Values(
			snapshot.ResourceID,
			snapshot.Day.Format(domain.DateFormat),
			snapshot.Generation,
			snapshot.FetchedAt.UnixNano(),
			string(payload),
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Save - rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

// Get получает снимок корта на день; время бронирований приводится к локации day
func (r *Repository) Get(ctx context.Context, resourceID int64, day time.Time) (*domain.BookingSnapshot, error) {
	query, args, err := r.builder.Select("generation", "fetched_at", "payload").
		From(table).
		Where(squirrel.Eq{
			"resource_id": resourceID,
			"day":         day.Format(domain.DateFormat),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		generation int64
		fetchedAt  int64
		payload    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&generation, &fetchedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan snapshot: %v", ErrScanRow, err)
	}

	var records []bookingRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal bookings: %v", ErrPayload, err)
	}
	bookings, err := fromRecords(records, day.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: Get - parse bookings: %v", ErrPayload, err)
	}

	return &domain.BookingSnapshot{
		ResourceID: resourceID,
		Day:        domain.DateOnly(day),
		Generation: generation,
		FetchedAt:  time.Unix(0, fetchedAt).In(day.Location()),
		Bookings:   bookings,
	}, nil
}

// DeleteFetchedBefore удаляет снимки, полученные раньше before
func (r *Repository) DeleteFetchedBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := r.builder.Delete(table).
		Where(squirrel.Lt{"fetched_at": before.UnixNano()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteFetchedBefore - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteFetchedBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteFetchedBefore - rows affected: %v", ErrExecQuery, err)
	}
	return deleted, nil
}
