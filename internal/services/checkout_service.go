// internal/services/checkout_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/comicden/comics-backend/internal/apperrors"
	"github.com/comicden/comics-backend/internal/utils"
)

// QueuePublisher is the producer half of the order queue bridge.
type QueuePublisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

// PurchaseDescriptor is the payload carried on the comics queue between
// checkout and order materialization. Items is the comma-joined list of
// purchased titles, stored verbatim on the order row.
type PurchaseDescriptor struct {
	ClientEmail string `json:"client_email" validate:"required,email"`
	Items       string `json:"items" validate:"required"`
	Price       int    `json:"price" validate:"min=0"`
}

// CheckoutService publishes purchase notifications and returns as soon
// as the broker accepts them. It never waits for order materialization
// and never returns a created order to the caller.
type CheckoutService struct {
	publisher QueuePublisher
	queueName string
}

func NewCheckoutService(publisher QueuePublisher, queueName string) *CheckoutService {
	return &CheckoutService{
		publisher: publisher,
		queueName: queueName,
	}
}

// Buy validates only the descriptor's shape and hands it to the queue.
// A publish failure is surfaced to the caller as a failed checkout,
// never silently dropped.
func (s *CheckoutService) Buy(ctx context.Context, descriptor *PurchaseDescriptor) error {
	if err := utils.ValidateStruct(descriptor); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBadInput, err)
	}

	body, err := json.Marshal(descriptor)
	if err != nil {
		return fmt.Errorf("%w: encode descriptor: %v", apperrors.ErrBadInput, err)
	}

	if err := s.publisher.Publish(ctx, s.queueName, body); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"queue":        s.queueName,
		"client_email": descriptor.ClientEmail,
		"price":        descriptor.Price,
	}).Info("Purchase submitted")

	return nil
}
