package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/service/bookings/models"
)

// Service сервис операций над существующими бронированиями
// Ошибки API возвращаются обернутыми, с сохранением sentinel из domain
type Service struct {
	api          BookingAPIClient
	courts       CourtsService
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(api BookingAPIClient, courts CourtsService, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		api:          api,
		courts:       courts,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetDayBookings получает бронирования корта на день
// Отмененные бронирования возвращаются только при IncludeInactive
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDayBookings: resource=%d, date=%s, user=%d",
		req.ResourceID, req.Date.Format(domain.DateFormat), req.Actor.UserID)

	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resource id must be positive", ErrInvalidInput)
	}

	bookings, err := s.api.ListBookings(ctx, req.Actor, req.ResourceID, req.Date)
	if err != nil {
		s.logger.Error("GetDayBookings: api error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("GetDayBookings - api: %w", err)
	}

	if !req.IncludeInactive {
		active := make([]*domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.IsActive() {
				active = append(active, b)
			}
		}
		bookings = active
	}

	return models.FromDomainBookingList(bookings, req.Actor), nil
}

// Cancel отменяет бронирование
// Отменить может владелец бронирования или администратор клуба, которому принадлежит корт
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", req.BookingID, req.Actor.UserID)

	if req.BookingID <= 0 || req.ResourceID <= 0 || req.Date.IsZero() {
		return fmt.Errorf("%w: booking id, resource id and date are required", ErrInvalidInput)
	}

	// 1. Находим бронирование в расписании корта
	bookings, err := s.api.ListBookings(ctx, req.Actor, req.ResourceID, req.Date)
	if err != nil {
		s.logger.Error("Cancel: failed to list bookings of resource=%d: %v", req.ResourceID, err)
		return fmt.Errorf("Cancel - list bookings: %w", err)
	}

	booking := findByID(bookings, req.BookingID)
	if booking == nil {
		s.logger.Warn("Cancel: booking id=%d not found on resource=%d", req.BookingID, req.ResourceID)
		return ErrBookingNotFound
	}

	// 2. Проверяем статус и права
	s.resolveClub(ctx, req.Actor, booking)
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", booking.ID, booking.Status)
		return ErrCannotCancel
	}
	if !booking.CanBeEditedBy(req.Actor) {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.Actor.UserID, booking.ID)
		return ErrAccessDenied
	}

	// 3. Отменяем
	if err := s.api.CancelBooking(ctx, req.Actor, booking.ID); err != nil {
		s.logger.Error("Cancel: api error for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("Cancel - api: %w", err)
	}

	// 4. Публикуем событие
	event := domain.BookingEvent{
		Type:            domain.EventBookingCancelled,
		BookingID:       booking.ID,
		ResourceID:      booking.ResourceID,
		ClubID:          booking.ClubID,
		ActorID:         req.Actor.UserID,
		Start:           booking.Start,
		DurationMinutes: booking.DurationMinutes(),
		OccurredAt:      s.timeProvider.Now(),
	}
	if err := s.publisher.PublishJSON(ctx, event.Type, event); err != nil {
		s.logger.Warn("Cancel: failed to publish %s for booking id=%d: %v", event.Type, booking.ID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", booking.ID)
	return nil
}

// resolveClub заполняет клуб бронирования, если API его не вернул
// Клуб берется только когда корт действительно принадлежит клубу actor
func (s *Service) resolveClub(ctx context.Context, actor domain.Actor, booking *domain.Booking) {
	if booking.ClubID != 0 || actor.ClubID == 0 {
		return
	}
	if _, err := s.courts.GetCourt(ctx, actor, actor.ClubID, booking.ResourceID); err != nil {
		s.logger.Warn("resolveClub: resource=%d is not a court of club=%d: %v", booking.ResourceID, actor.ClubID, err)
		return
	}
	booking.ClubID = actor.ClubID
}

func findByID(bookings []*domain.Booking, id int64) *domain.Booking {
	for _, b := range bookings {
		if b != nil && b.ID == id {
			return b
		}
	}
	return nil
}
