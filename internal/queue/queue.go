// internal/queue/queue.go
package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/comicden/comics-backend/internal/apperrors"
	"github.com/comicden/comics-backend/internal/config"
)

// HandlerFunc processes one delivered message. Returning nil acks the
// message; returning an error nacks it and the broker requeues it, so a
// message may be delivered more than once and handlers must tolerate
// duplicates.
type HandlerFunc func(ctx context.Context, body []byte) error

// Bridge is a durable, named channel between the checkout producer and
// the order consumer. It holds one broker connection; each operation
// opens a scoped channel that is closed on every exit path.
type Bridge struct {
	conn *amqp.Connection
}

func Connect(cfg config.AMQPConfig) (*Bridge, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: connect to broker: %v", apperrors.ErrTransient, err)
	}

	logrus.WithField("url", cfg.URL).Info("Broker connection established")
	return &Bridge{conn: conn}, nil
}

func (b *Bridge) Close() {
	if err := b.conn.Close(); err != nil {
		logrus.WithError(err).Error("Error closing broker connection")
	}
}

// Declare creates the queue if absent, otherwise it is a no-op. Both
// producer and consumer call it at startup so their ordering does not
// matter.
func (b *Bridge) Declare(queueName string) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", apperrors.ErrTransient, err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: declare queue %q: %v", apperrors.ErrTransient, queueName, err)
	}

	return nil
}

// Publish enqueues an opaque payload. It returns once the broker has
// accepted the message; it never blocks on consumer availability.
func (b *Bridge) Publish(ctx context.Context, queueName string, body []byte) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", apperrors.ErrTransient, err)
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: publish to %q: %v", apperrors.ErrTransient, queueName, err)
	}

	return nil
}

// Consume blocks the calling goroutine, invoking handler once per
// delivered message in delivery order. A message is acked only after the
// handler returns nil; on error it is nacked and requeued.
func (b *Bridge) Consume(ctx context.Context, queueName string, handler HandlerFunc) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", apperrors.ErrTransient, err)
	}
	defer ch.Close()

	deliveries, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: consume from %q: %v", apperrors.ErrTransient, queueName, err)
	}

	logrus.WithField("queue", queueName).Info("Consumer attached")

	return consumeLoop(ctx, queueName, deliveries, handler)
}

// consumeLoop dispatches deliveries until the context is done or the
// delivery channel closes. Acks and nacks go through the delivery's own
// acknowledger, so the loop never touches the channel directly.
func consumeLoop(ctx context.Context, queueName string, deliveries <-chan amqp.Delivery, handler HandlerFunc) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("%w: delivery channel closed", apperrors.ErrTransient)
			}

			if err := handler(ctx, delivery.Body); err != nil {
				logrus.WithFields(logrus.Fields{
					"queue":      queueName,
					"message_id": delivery.MessageId,
				}).WithError(err).Warn("Message handling failed, requeueing")

				if err := delivery.Nack(false, true); err != nil {
					logrus.WithError(err).Error("Failed to nack message")
				}
				continue
			}

			if err := delivery.Ack(false); err != nil {
				logrus.WithError(err).Error("Failed to ack message")
			}
		}
	}
}
