// internal/services/checkout_service_test.go
package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comicden/comics-backend/internal/apperrors"
)

type fakePublisher struct {
	queueName string
	bodies    [][]byte
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.queueName = queueName
	f.bodies = append(f.bodies, body)
	return nil
}

func TestBuyPublishesDescriptor(t *testing.T) {
	publisher := &fakePublisher{}
	checkout := NewCheckoutService(publisher, "comics")

	err := checkout.Buy(context.Background(), &PurchaseDescriptor{
		ClientEmail: "reader@example.com",
		Items:       "Watchmen",
		Price:       20,
	})
	require.NoError(t, err)

	require.Len(t, publisher.bodies, 1)
	assert.Equal(t, "comics", publisher.queueName)

	var decoded PurchaseDescriptor
	require.NoError(t, json.Unmarshal(publisher.bodies[0], &decoded))
	assert.Equal(t, "reader@example.com", decoded.ClientEmail)
	assert.Equal(t, "Watchmen", decoded.Items)
	assert.Equal(t, 20, decoded.Price)
}

func TestBuyRejectsMalformedDescriptor(t *testing.T) {
	publisher := &fakePublisher{}
	checkout := NewCheckoutService(publisher, "comics")

	err := checkout.Buy(context.Background(), &PurchaseDescriptor{
		ClientEmail: "not-an-email",
		Items:       "Watchmen",
		Price:       20,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadInput)
	assert.Empty(t, publisher.bodies)
}

func TestBuySurfacesPublishFailure(t *testing.T) {
	publisher := &fakePublisher{err: apperrors.ErrTransient}
	checkout := NewCheckoutService(publisher, "comics")

	err := checkout.Buy(context.Background(), &PurchaseDescriptor{
		ClientEmail: "reader@example.com",
		Items:       "Watchmen",
		Price:       20,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransient)
}
