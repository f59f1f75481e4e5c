package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/recurrence"
)

// Операции API (метка в метриках и логах)
const (
	opListCourts           = "list_courts"
	opListBookings         = "list_bookings"
	opCreateBooking        = "create_booking"
	opUpdateBooking        = "update_booking"
	opCancelBooking        = "cancel_booking"
	opCreateRecurringEvent = "create_recurring_event"
)

// maxErrorBody ограничение на чтение тела ошибки
const maxErrorBody = 64 << 10

// Client клиент внешнего API бронирований
// Повторов нет: ошибка сети возвращается вызывающему как domain.ErrTransport
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента API бронирований
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// ListCourts получает корты клуба
func (c *Client) ListCourts(ctx context.Context, actor domain.Actor, clubID int64) ([]domain.Court, error) {
	var courts []Court
	path := fmt.Sprintf("/clubs/%d/courts", clubID)
	if err := c.do(ctx, opListCourts, http.MethodGet, path, actor, nil, &courts); err != nil {
		return nil, err
	}

	result := make([]domain.Court, len(courts))
	for i, court := range courts {
		result[i] = court.toDomain()
		if result[i].ClubID == 0 {
			result[i].ClubID = clubID
		}
	}
	return result, nil
}

// ListBookings получает бронирования корта на календарный день date
func (c *Client) ListBookings(ctx context.Context, actor domain.Actor, resourceID int64, date time.Time) ([]*domain.Booking, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	path := fmt.Sprintf("/courts/%d/bookings?%s", resourceID, query.Encode())

	var bookings []Booking
	if err := c.do(ctx, opListBookings, http.MethodGet, path, actor, nil, &bookings); err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		booking, err := b.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %s - %v", domain.ErrTransport, ErrInvalidResponse, opListBookings, err)
		}
		if booking.ResourceID == 0 {
			booking.ResourceID = resourceID
		}
		result = append(result, booking)
	}
	return result, nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, actor domain.Actor, intent domain.BookingIntent) (*domain.Booking, error) {
	return c.writeBooking(ctx, opCreateBooking, http.MethodPost, "/bookings", actor, intent)
}

// UpdateBooking изменяет бронирование bookingID
func (c *Client) UpdateBooking(ctx context.Context, actor domain.Actor, bookingID int64, intent domain.BookingIntent) (*domain.Booking, error) {
	path := fmt.Sprintf("/bookings/%d", bookingID)
	return c.writeBooking(ctx, opUpdateBooking, http.MethodPut, path, actor, intent)
}

// CancelBooking отменяет бронирование
func (c *Client) CancelBooking(ctx context.Context, actor domain.Actor, bookingID int64) error {
	path := fmt.Sprintf("/bookings/%d/cancel", bookingID)
	return c.do(ctx, opCancelBooking, http.MethodPost, path, actor, nil, nil)
}

// CreateRecurringEvent отправляет шаблон повторяющегося события
// Бронирования по шаблону создает сам API
func (c *Client) CreateRecurringEvent(ctx context.Context, actor domain.Actor, req recurrence.Request) error {
	return c.do(ctx, opCreateRecurringEvent, http.MethodPost, "/recurring-events", actor, req, nil)
}

func (c *Client) writeBooking(
	ctx context.Context,
	operation, method, path string,
	actor domain.Actor,
	intent domain.BookingIntent,
) (*domain.Booking, error) {
	var created Booking
	if err := c.do(ctx, operation, method, path, actor, newBookingRequest(intent), &created); err != nil {
		return nil, err
	}

	booking, err := created.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s - %v", domain.ErrTransport, ErrInvalidResponse, operation, err)
	}
	return booking, nil
}

// do выполняет запрос и классифицирует ответ
// out == nil означает, что тело успешного ответа не читается
func (c *Client) do(ctx context.Context, operation, method, path string, actor domain.Actor, body, out any) (err error) {
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveBookingAPICall(operation, err, time.Since(started))
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("%w: %s - failed to marshal request: %v", ErrInternal, operation, marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %s - failed to create request: %v", ErrInternal, operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor.Token != "" {
		req.Header.Set("Authorization", "Bearer "+actor.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("BookingAPI: %s %s failed: %v", method, path, err)
		return classifyTransport(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		classified := classifyResponse(operation, resp.StatusCode, errBody)
		c.log.Warn("BookingAPI: %s %s status=%d: %v", method, path, resp.StatusCode, classified)
		return classified
	}

	c.log.Debug("BookingAPI: %s %s status=%d", method, path, resp.StatusCode)

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w: %s - failed to decode response: %v", domain.ErrTransport, ErrInvalidResponse, operation, err)
	}

	return nil
}
