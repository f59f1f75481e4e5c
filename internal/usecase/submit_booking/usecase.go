package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
)

// UseCase use case отправки бронирования в API
// Источник истины о занятости - API; при конфликте ищется свободный корт клуба
type UseCase struct {
	api          BookingAPIClient
	courts       CourtsService
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	api BookingAPIClient,
	courts CourtsService,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		api:          api,
		courts:       courts,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки бронирования
// Ошибки: domain.ValidationErrors, *ConflictError, ErrBookingNotFound, ErrAccessDenied,
// ErrCannotEdit и обернутые domain.ErrSession / domain.ErrTransport / domain.ErrRejected
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	intent := req.Intent
	uc.logger.Info("SubmitBooking: user=%d, resource=%d, start=%s, duration=%d, participants=%d, editing=%v",
		req.Actor.UserID, intent.ResourceID, intent.Start.Format("2006-01-02 15:04"),
		intent.DurationMinutes, len(intent.ParticipantIDs), intent.IsEditing())

	if !req.Actor.IsAuthenticated() {
		return nil, fmt.Errorf("SubmitBooking: %w", domain.ErrSession)
	}

	// 1. Локальная валидация намерения
	now := uc.timeProvider.Now()
	if ok, errs := schedule.CanSubmit(intent, now); !ok {
		uc.logger.Warn("SubmitBooking: validation failed: %v", errs)
		return nil, errs
	}

	// 2. Создание или изменение
	var (
		booking *domain.Booking
		err     error
	)
	if intent.IsEditing() {
		if err := uc.checkEditable(ctx, req); err != nil {
			return nil, err
		}
		booking, err = uc.api.UpdateBooking(ctx, req.Actor, *intent.EditingBookingID, intent)
	} else {
		booking, err = uc.api.CreateBooking(ctx, req.Actor, intent)
	}

	// 3. Конфликт: ищем альтернативный корт
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, uc.handleConflict(ctx, req, err)
		}
		uc.logger.Error("SubmitBooking: api error for user=%d, resource=%d: %v", req.Actor.UserID, intent.ResourceID, err)
		return nil, fmt.Errorf("SubmitBooking - api: %w", err)
	}

	// 4. Публикуем событие
	eventType := domain.EventBookingCreated
	if intent.IsEditing() {
		eventType = domain.EventBookingUpdated
	}
	uc.publish(ctx, domain.BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID,
		ResourceID:      booking.ResourceID,
		ClubID:          booking.ClubID,
		ActorID:         req.Actor.UserID,
		Start:           booking.Start,
		DurationMinutes: booking.DurationMinutes(),
		OccurredAt:      now,
	})

	uc.logger.Info("SubmitBooking: saved booking id=%d, resource=%d", booking.ID, booking.ResourceID)
	return &Response{Booking: booking, Created: !intent.IsEditing()}, nil
}

// Suggest ищет первый свободный корт клуба на интервал, кроме ResourceID
// Возвращает nil без ошибки, если свободных кортов нет
func (uc *UseCase) Suggest(ctx context.Context, req *SuggestRequest) (*schedule.Alternative, error) {
	if req.ResourceID <= 0 || req.Start.IsZero() || !domain.IsValidDuration(req.DurationMinutes) {
		return nil, fmt.Errorf("%w: resource, start and a duration in %d-minute steps up to %d minutes are required",
			ErrInvalidInput, domain.SlotStepMinutes, domain.MaxDurationMinutes)
	}

	alternative, found, err := uc.findAlternative(ctx, req)
	if err != nil {
		return nil, err
	}
	uc.observeAlternative(found)
	if !found {
		return nil, nil
	}
	return &alternative, nil
}

// checkEditable проверяет, что бронирование существует, активно и принадлежит actor или его клубу
func (uc *UseCase) checkEditable(ctx context.Context, req *Request) error {
	bookingID := *req.Intent.EditingBookingID
	resourceID := req.OriginalResourceID
	if resourceID <= 0 {
		resourceID = req.Intent.ResourceID
	}
	date := req.OriginalDate
	if date.IsZero() {
		date = req.Intent.Start
	}

	bookings, err := uc.api.ListBookings(ctx, req.Actor, resourceID, date)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to load booking id=%d: %v", bookingID, err)
		return fmt.Errorf("SubmitBooking - list bookings: %w", err)
	}

	var existing *domain.Booking
	for _, b := range bookings {
		if b != nil && b.ID == bookingID {
			existing = b
			break
		}
	}
	if existing == nil {
		uc.logger.Warn("SubmitBooking: booking id=%d not found on resource=%d", bookingID, resourceID)
		return ErrBookingNotFound
	}
	if existing.IsCancelled() {
		return ErrCannotEdit
	}

	if existing.ClubID == 0 && uc.courtInClub(ctx, req.Actor, existing.ResourceID) {
		existing.ClubID = req.Actor.ClubID
	}
	if !existing.CanBeEditedBy(req.Actor) {
		uc.logger.Warn("SubmitBooking: access denied for user=%d to booking id=%d", req.Actor.UserID, bookingID)
		return ErrAccessDenied
	}
	return nil
}

// handleConflict строит ConflictError с подсказкой
// Ошибки поиска подсказки не скрывают сам конфликт
func (uc *UseCase) handleConflict(ctx context.Context, req *Request, cause error) error {
	if uc.metrics != nil {
		uc.metrics.IncConflict()
	}
	uc.logger.Warn("SubmitBooking: conflict for user=%d, resource=%d: %v", req.Actor.UserID, req.Intent.ResourceID, cause)

	conflict := &ConflictError{Cause: cause}

	alternative, found, err := uc.findAlternative(ctx, &SuggestRequest{
		Actor:           req.Actor,
		ResourceID:      req.Intent.ResourceID,
		Start:           req.Intent.Start,
		DurationMinutes: req.Intent.DurationMinutes,
		IgnoreBookingID: req.Intent.EditingBookingID,
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: alternative search failed: %v", err)
	} else {
		uc.observeAlternative(found)
		if found {
			conflict.Alternative = &alternative
		}
	}

	event := domain.BookingEvent{
		Type:            domain.EventBookingConflict,
		ResourceID:      req.Intent.ResourceID,
		ClubID:          req.Actor.ClubID,
		ActorID:         req.Actor.UserID,
		Start:           req.Intent.Start,
		DurationMinutes: req.Intent.DurationMinutes,
		OccurredAt:      uc.timeProvider.Now(),
	}
	if conflict.Alternative != nil {
		event.AlternativeID = &conflict.Alternative.ResourceID
	}
	uc.publish(ctx, event)

	return conflict
}

// findAlternative загружает корты клуба и их бронирования на день и выбирает первый свободный
// Корт, бронирования которого не удалось получить, не предлагается
func (uc *UseCase) findAlternative(ctx context.Context, req *SuggestRequest) (schedule.Alternative, bool, error) {
	courts, err := uc.courts.ListCourts(ctx, req.Actor, req.Actor.ClubID)
	if err != nil {
		return schedule.Alternative{}, false, fmt.Errorf("findAlternative - list courts: %w", err)
	}

	candidates := make([]domain.Court, 0, len(courts))
	bookingsByResource := make(map[int64][]*domain.Booking, len(courts))
	for _, court := range courts {
		if court.ID == req.ResourceID {
			continue
		}
		bookings, err := uc.api.ListBookings(ctx, req.Actor, court.ID, req.Start)
		if err != nil {
			if errors.Is(err, domain.ErrSession) {
				return schedule.Alternative{}, false, fmt.Errorf("findAlternative - list bookings: %w", err)
			}
			uc.logger.Warn("findAlternative: skipping court=%d, bookings unavailable: %v", court.ID, err)
			continue
		}
		candidates = append(candidates, court)
		bookingsByResource[court.ID] = withoutBooking(bookings, req.IgnoreBookingID)
	}

	alternative, found := schedule.FindAlternative(
		schedule.PreferredInterval{Start: req.Start, DurationMinutes: req.DurationMinutes},
		req.ResourceID,
		candidates,
		bookingsByResource,
	)
	return alternative, found, nil
}

func (uc *UseCase) courtInClub(ctx context.Context, actor domain.Actor, resourceID int64) bool {
	if actor.ClubID == 0 {
		return false
	}
	courts, err := uc.courts.ListCourts(ctx, actor, actor.ClubID)
	if err != nil {
		uc.logger.Warn("SubmitBooking: failed to list courts of club=%d: %v", actor.ClubID, err)
		return false
	}
	for _, court := range courts {
		if court.ID == resourceID {
			return true
		}
	}
	return false
}

func (uc *UseCase) observeAlternative(found bool) {
	if uc.metrics != nil {
		uc.metrics.ObserveAlternative(found)
	}
}

func (uc *UseCase) publish(ctx context.Context, event domain.BookingEvent) {
	if err := uc.publisher.PublishJSON(ctx, event.Type, event); err != nil {
		uc.logger.Warn("SubmitBooking: failed to publish %s: %v", event.Type, err)
	}
}

func withoutBooking(bookings []*domain.Booking, id *int64) []*domain.Booking {
	if id == nil {
		return bookings
	}
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil && b.ID == *id {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}
