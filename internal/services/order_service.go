// internal/services/order_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/comicden/comics-backend/internal/apperrors"
	"github.com/comicden/comics-backend/internal/models"
	"github.com/comicden/comics-backend/internal/utils"
)

// OrderService materializes queued purchase notifications into order
// rows. It is the only writer of the orders table.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// HandleMessage is the consumer handler for the comics queue. A nil
// return acks the delivery; an error nacks it for redelivery. The order
// insert must commit before the ack, so a crash in between redelivers
// the message and may materialize the same order twice; that duplicate
// is accepted under the at-least-once model.
//
// Malformed payloads are acked after logging: nacking them would
// redeliver the same unparseable message forever.
func (s *OrderService) HandleMessage(ctx context.Context, body []byte) error {
	var descriptor PurchaseDescriptor
	if err := json.Unmarshal(body, &descriptor); err != nil {
		logrus.WithError(err).WithField("body", string(body)).Warn("Dropping malformed purchase message")
		return nil
	}

	order, err := s.CreateOrder(&descriptor)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"client_email": order.ClientEmail,
		"price":        order.Price,
	}).Info("Order materialized")

	return nil
}

func (s *OrderService) CreateOrder(descriptor *PurchaseDescriptor) (*models.Order, error) {
	order := &models.Order{
		ClientEmail: descriptor.ClientEmail,
		Price:       descriptor.Price,
		Items:       descriptor.Items,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("%w: persist order: %v", apperrors.ErrTransient, err)
	}

	return order, nil
}

func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	if params.Search != "" {
		query = query.Where("client_email = ?", params.Search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: count orders: %v", apperrors.ErrTransient, err)
	}

	allowedSortFields := []string{"created_at", "price", "client_email"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: fetch orders: %v", apperrors.ErrTransient, err)
	}

	return orders, total, nil
}
