package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	published []published
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(ch *fakeChannel) *Publisher {
	p := NewChannelPublisher(ch, "court.bookings", "court-scheduler")
	p.now = func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600)) }
	p.newID = func() string { return "msg-1" }
	return p
}

func TestPublisher_PublishJSON(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	err := p.PublishJSON(context.Background(), "booking.created", map[string]any{"bookingId": 7})
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "court.bookings", got.exchange)
	assert.Equal(t, "booking.created", got.key)
	assert.Equal(t, "booking.created", got.msg.Type)
	assert.Equal(t, "msg-1", got.msg.MessageId)
	assert.Equal(t, "court-scheduler", got.msg.AppId)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), got.msg.Timestamp)

	var body map[string]int
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, 7, body["bookingId"])
}

func TestPublisher_Errors(t *testing.T) {
	t.Run("broker rejects", func(t *testing.T) {
		p := newTestPublisher(&fakeChannel{err: errors.New("channel closed")})

		err := p.PublishJSON(context.Background(), "booking.cancelled", struct{}{})

		assert.ErrorIs(t, err, ErrPublish)
		assert.Contains(t, err.Error(), "booking.cancelled")
	})

	t.Run("payload cannot be encoded", func(t *testing.T) {
		ch := &fakeChannel{}
		p := newTestPublisher(ch)

		err := p.PublishJSON(context.Background(), "booking.created", make(chan int))

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPublish)
		assert.Empty(t, ch.published)
	})
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}

	require.NoError(t, newTestPublisher(ch).Close())
	assert.True(t, ch.closed)

	var nop NopPublisher
	assert.NoError(t, nop.PublishJSON(context.Background(), "booking.created", nil))
	assert.NoError(t, nop.Close())
}
