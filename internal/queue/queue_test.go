// internal/queue/queue_test.go
package queue

import (
	"context"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comicden/comics-backend/internal/apperrors"
)

type ackCall struct {
	kind    string
	requeue bool
}

type recordingAcknowledger struct {
	calls []ackCall
}

func (a *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	a.calls = append(a.calls, ackCall{kind: "ack"})
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.calls = append(a.calls, ackCall{kind: "nack", requeue: requeue})
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	a.calls = append(a.calls, ackCall{kind: "reject", requeue: requeue})
	return nil
}

func TestConsumeLoopAcksAfterHandlerSucceeds(t *testing.T) {
	acknowledger := &recordingAcknowledger{}
	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Acknowledger: acknowledger, Body: []byte(`{"client_email":"reader@example.com"}`)}

	ctx, cancel := context.WithCancel(context.Background())
	var handled [][]byte
	handler := func(ctx context.Context, body []byte) error {
		handled = append(handled, body)
		cancel()
		return nil
	}

	err := consumeLoop(ctx, "comics", deliveries, handler)
	require.ErrorIs(t, err, context.Canceled)

	require.Len(t, handled, 1)
	require.Len(t, acknowledger.calls, 1)
	assert.Equal(t, "ack", acknowledger.calls[0].kind)
}

func TestConsumeLoopNacksWithRequeueOnHandlerError(t *testing.T) {
	acknowledger := &recordingAcknowledger{}
	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Acknowledger: acknowledger, Body: []byte("broken")}

	ctx, cancel := context.WithCancel(context.Background())
	handler := func(ctx context.Context, body []byte) error {
		cancel()
		return errors.New("store unavailable")
	}

	err := consumeLoop(ctx, "comics", deliveries, handler)
	require.ErrorIs(t, err, context.Canceled)

	require.Len(t, acknowledger.calls, 1)
	assert.Equal(t, "nack", acknowledger.calls[0].kind)
	assert.True(t, acknowledger.calls[0].requeue, "failed deliveries must go back on the queue")
}

func TestConsumeLoopProcessesInDeliveryOrder(t *testing.T) {
	acknowledger := &recordingAcknowledger{}
	deliveries := make(chan amqp.Delivery, 2)
	deliveries <- amqp.Delivery{Acknowledger: acknowledger, Body: []byte("first")}
	deliveries <- amqp.Delivery{Acknowledger: acknowledger, Body: []byte("second")}

	ctx, cancel := context.WithCancel(context.Background())
	var handled []string
	handler := func(ctx context.Context, body []byte) error {
		handled = append(handled, string(body))
		if len(handled) == 2 {
			cancel()
		}
		return nil
	}

	err := consumeLoop(ctx, "comics", deliveries, handler)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, []string{"first", "second"}, handled)
	require.Len(t, acknowledger.calls, 2)
	assert.Equal(t, "ack", acknowledger.calls[0].kind)
	assert.Equal(t, "ack", acknowledger.calls[1].kind)
}

func TestConsumeLoopClosedChannelIsTransient(t *testing.T) {
	deliveries := make(chan amqp.Delivery)
	close(deliveries)

	err := consumeLoop(context.Background(), "comics", deliveries, func(ctx context.Context, body []byte) error {
		t.Fatal("handler must not run on a closed delivery channel")
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransient)
}
