package get_day_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	snapshotRepo "github.com/m04kA/SMC-CourtScheduler/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
)

// UseCase use case получения расписания корта на день
// Каждая выборка из API получает поколение до запроса; снимок сохраняется,
// только если он новее сохраненного. Медленный ответ старой выборки
// не перезаписывает более новые данные.
type UseCase struct {
	api          BookingAPIClient
	snapshots    SnapshotRepository
	metrics      Metrics
	grid         schedule.GridConfig
	location     *time.Location
	generations  generationCounter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	api BookingAPIClient,
	snapshots SnapshotRepository,
	metrics Metrics,
	grid schedule.GridConfig,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		api:          api,
		snapshots:    snapshots,
		metrics:      metrics,
		grid:         grid,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.ResourceID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: resource id and date are required", ErrInvalidInput)
	}

	y, m, d := req.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	uc.logger.Info("GetDaySchedule: user=%d, resource=%d, date=%s",
		req.Actor.UserID, req.ResourceID, day.Format(domain.DateFormat))

	// 2. Генерируем сетку дня
	slots, err := schedule.Generate(day, uc.grid)
	if err != nil {
		uc.logger.Error("GetDaySchedule: invalid grid config: %v", err)
		return nil, fmt.Errorf("%w: generate grid: %v", ErrInternal, err)
	}

	// 3. Получаем актуальный снимок бронирований
	snapshot, stale, err := uc.loadSnapshot(ctx, req.Actor, req.ResourceID, day)
	if err != nil {
		return nil, err
	}

	// 4. Классифицируем слоты относительно текущего времени
	now := uc.timeProvider.Now().In(uc.location)

	return &Response{
		ResourceID: req.ResourceID,
		Date:       day,
		Generation: snapshot.Generation,
		FetchedAt:  snapshot.FetchedAt,
		Stale:      stale,
		Slots:      schedule.ClassifyDay(slots, now, snapshot.Bookings),
		Bookings:   snapshot.Bookings,
	}, nil
}

// loadSnapshot выбирает бронирования из API и согласует их с сохраненным снимком
func (uc *UseCase) loadSnapshot(ctx context.Context, actor domain.Actor, resourceID int64, day time.Time) (*domain.BookingSnapshot, bool, error) {
	generation := uc.generations.next(uc.timeProvider.Now())

	bookings, err := uc.api.ListBookings(ctx, actor, resourceID, day)
	if err != nil {
		if !errors.Is(err, domain.ErrTransport) {
			uc.logger.Warn("GetDaySchedule: api rejected listing resource=%d: %v", resourceID, err)
			return nil, false, fmt.Errorf("GetDaySchedule - list bookings: %w", err)
		}

		stored, getErr := uc.snapshots.Get(ctx, resourceID, day)
		if getErr != nil {
			if !errors.Is(getErr, snapshotRepo.ErrSnapshotNotFound) {
				uc.logger.Error("GetDaySchedule: failed to load stored snapshot resource=%d: %v", resourceID, getErr)
			}
			uc.logger.Error("GetDaySchedule: api unavailable for resource=%d and no stored snapshot: %v", resourceID, err)
			return nil, false, fmt.Errorf("GetDaySchedule - list bookings: %w", err)
		}

		uc.logger.Warn("GetDaySchedule: api unavailable, serving stored snapshot resource=%d generation=%d: %v",
			resourceID, stored.Generation, err)
		return stored, true, nil
	}

	fetched := &domain.BookingSnapshot{
		ResourceID: resourceID,
		Day:        day,
		Generation: generation,
		FetchedAt:  uc.timeProvider.Now(),
		Bookings:   localize(bookings, uc.location),
	}

	saved, err := uc.snapshots.Save(ctx, fetched)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to store snapshot resource=%d generation=%d: %v", resourceID, generation, err)
		return fetched, false, nil
	}
	if saved {
		return fetched, false, nil
	}

	// Пока шел запрос, сохранили более новую выборку: отдаем ее
	if uc.metrics != nil {
		uc.metrics.IncSupersededSnapshot()
	}
	newer, err := uc.snapshots.Get(ctx, resourceID, day)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to load newer snapshot resource=%d: %v", resourceID, err)
		return fetched, false, nil
	}

	uc.logger.Info("GetDaySchedule: fetch generation=%d superseded by generation=%d for resource=%d",
		generation, newer.Generation, resourceID)
	return newer, false, nil
}

func localize(bookings []*domain.Booking, loc *time.Location) []*domain.Booking {
	for _, b := range bookings {
		if b == nil {
			continue
		}
		b.Start = b.Start.In(loc)
		b.End = b.End.In(loc)
	}
	return bookings
}
