package create_recurring_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/recurrence"
)

// UseCase use case создания повторяющегося события клуба
// Бронирования по шаблону создает API, здесь шаблон только проверяется и отправляется
type UseCase struct {
	api                  BookingAPIClient
	courts               CourtsService
	publisher            EventPublisher
	maxDescriptionLength int
	timeProvider         TimeProvider
	logger               Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	api BookingAPIClient,
	courts CourtsService,
	publisher EventPublisher,
	maxDescriptionLength int,
	logger Logger,
) *UseCase {
	return &UseCase{
		api:                  api,
		courts:               courts,
		publisher:            publisher,
		maxDescriptionLength: maxDescriptionLength,
		timeProvider:         &RealTimeProvider{},
		logger:               logger,
	}
}

// Execute выполняет use case
// Ошибки: ErrAccessDenied, domain.ValidationErrors, ErrCourtNotFound и обернутые ошибки API
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	t := req.Template
	uc.logger.Info("CreateRecurringEvent: user=%d, club=%d, resource=%d, days=%v, time=%s-%s",
		req.Actor.UserID, req.Actor.ClubID, t.ResourceID, domain.WeekdayNumbers(t.Weekdays), t.DailyStart, t.DailyEnd)

	// 1. Только администратор клуба
	if !req.Actor.IsAuthenticated() {
		return nil, fmt.Errorf("CreateRecurringEvent: %w", domain.ErrSession)
	}
	if !req.Actor.IsAdminOf(req.Actor.ClubID) || req.Actor.ClubID <= 0 {
		uc.logger.Warn("CreateRecurringEvent: user=%d is not an admin of club=%d", req.Actor.UserID, req.Actor.ClubID)
		return nil, ErrAccessDenied
	}

	// 2. Валидация шаблона: все ошибки полей сразу
	if errs := recurrence.Validate(t, uc.maxDescriptionLength); len(errs) > 0 {
		uc.logger.Warn("CreateRecurringEvent: validation failed: %v", errs)
		return nil, errs
	}

	// 3. Корт должен принадлежать клубу
	if _, err := uc.courts.GetCourt(ctx, req.Actor, req.Actor.ClubID, t.ResourceID); err != nil {
		if errors.Is(err, domain.ErrTransport) || errors.Is(err, domain.ErrSession) {
			return nil, fmt.Errorf("CreateRecurringEvent - courts: %w", err)
		}
		uc.logger.Warn("CreateRecurringEvent: resource=%d is not available in club=%d: %v", t.ResourceID, req.Actor.ClubID, err)
		return nil, fmt.Errorf("%w: %w", ErrCourtNotFound, err)
	}

	// 4. Формируем payload и отправляем
	payload, err := recurrence.ToRequest(t, uc.maxDescriptionLength)
	if err != nil {
		return nil, err
	}
	if err := uc.api.CreateRecurringEvent(ctx, req.Actor, payload); err != nil {
		uc.logger.Error("CreateRecurringEvent: api error for resource=%d: %v", t.ResourceID, err)
		return nil, fmt.Errorf("CreateRecurringEvent - api: %w", err)
	}

	// 5. Публикуем событие
	event := domain.BookingEvent{
		Type:       domain.EventRecurringCreated,
		ResourceID: t.ResourceID,
		ClubID:     req.Actor.ClubID,
		ActorID:    req.Actor.UserID,
		OccurredAt: uc.timeProvider.Now(),
	}
	if err := uc.publisher.PublishJSON(ctx, event.Type, event); err != nil {
		uc.logger.Warn("CreateRecurringEvent: failed to publish %s: %v", event.Type, err)
	}

	uc.logger.Info("CreateRecurringEvent: created for resource=%d, days=%v", t.ResourceID, payload.Recurrence.Days)
	return &Response{Payload: payload}, nil
}
