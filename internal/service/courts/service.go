package courts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// Service сервис списка кортов клуба
// Кеш необязателен: при nil или ошибке Redis данные берутся из API
type Service struct {
	api    BookingAPIClient
	cache  CourtsCache
	logger Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(api BookingAPIClient, cache CourtsCache, logger Logger) *Service {
	return &Service{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

// ListCourts возвращает корты клуба в порядке API
func (s *Service) ListCourts(ctx context.Context, actor domain.Actor, clubID int64) ([]domain.Court, error) {
	if clubID <= 0 {
		return nil, fmt.Errorf("%w: club id must be positive", ErrInvalidInput)
	}

	// 1. Пробуем кеш
	if s.cache != nil {
		courts, found, err := s.cache.Get(ctx, clubID)
		switch {
		case err != nil:
			s.logger.Warn("ListCourts: cache unavailable for club=%d, falling back to api: %v", clubID, err)
		case found:
			return courts, nil
		}
	}

	// 2. Запрашиваем API
	courts, err := s.api.ListCourts(ctx, actor, clubID)
	if err != nil {
		s.logger.Error("ListCourts: api error for club=%d: %v", clubID, err)
		return nil, fmt.Errorf("ListCourts - api: %w", err)
	}

	// 3. Сохраняем в кеш
	if s.cache != nil {
		if err := s.cache.Save(ctx, clubID, courts); err != nil {
			s.logger.Warn("ListCourts: failed to cache courts for club=%d: %v", clubID, err)
		}
	}

	s.logger.Info("ListCourts: fetched %d courts for club=%d", len(courts), clubID)
	return courts, nil
}

// GetCourt возвращает корт клуба по ID
func (s *Service) GetCourt(ctx context.Context, actor domain.Actor, clubID, courtID int64) (domain.Court, error) {
	courts, err := s.ListCourts(ctx, actor, clubID)
	if err != nil {
		return domain.Court{}, err
	}
	for _, court := range courts {
		if court.ID == courtID {
			return court, nil
		}
	}
	return domain.Court{}, fmt.Errorf("%w: court=%d club=%d", ErrCourtNotFound, courtID, clubID)
}

// Refresh сбрасывает кеш клуба
func (s *Service) Refresh(ctx context.Context, clubID int64) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx, clubID); err != nil {
		s.logger.Warn("Refresh: failed to invalidate courts of club=%d: %v", clubID, err)
		return err
	}
	return nil
}
