package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrPublish возвращается, когда брокер не принял сообщение
var ErrPublish = errors.New("mq: publish failed")

const contentTypeJSON = "application/json"

// Channel часть *amqp.Channel, которой пользуется Publisher
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует JSON-события в topic exchange RabbitMQ
// Каждое сообщение получает MessageId, Timestamp, Type (ключ маршрутизации) и AppId отправителя
type Publisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
	appID    string
	now      func() time.Time
	newID    func() string
}

// NewPublisher подключается к RabbitMQ и объявляет durable topic exchange
func NewPublisher(url, exchange, appID string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := NewChannelPublisher(ch, exchange, appID)
	p.conn = conn
	return p, nil
}

// NewChannelPublisher создает публикатор поверх уже открытого канала
func NewChannelPublisher(ch Channel, exchange, appID string) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		appID:    appID,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// PublishJSON сериализует v и публикует его с ключом маршрутизации key
func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", key, err)
	}

	msg := amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    p.newID(),
		Timestamp:    p.now().UTC(),
		Type:         key,
		AppId:        p.appID,
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, key, false, false, msg); err != nil {
		return fmt.Errorf("%w: %s to %s: %v", ErrPublish, key, p.exchange, err)
	}
	return nil
}

// Close закрывает канал и соединение; ошибка канала возвращается, если соединения нет
func (p *Publisher) Close() error {
	var chErr error
	if p.ch != nil {
		chErr = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return chErr
}

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

func (NopPublisher) PublishJSON(context.Context, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
