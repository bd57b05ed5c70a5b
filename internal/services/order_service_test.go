// internal/services/order_service_test.go
package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/comicden/comics-backend/internal/models"
	"github.com/comicden/comics-backend/internal/utils"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db     *gorm.DB
	orders *OrderService
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.orders = NewOrderService(suite.db)
}

func (suite *OrderServiceTestSuite) TestHandleMessagePersistsOrder() {
	body, err := json.Marshal(&PurchaseDescriptor{
		ClientEmail: "reader@example.com",
		Items:       "Watchmen,The Sandman",
		Price:       35,
	})
	suite.Require().NoError(err)

	err = suite.orders.HandleMessage(context.Background(), body)
	suite.Require().NoError(err)

	var order models.Order
	suite.Require().NoError(suite.db.First(&order).Error)
	assert.Equal(suite.T(), "reader@example.com", order.ClientEmail)
	assert.Equal(suite.T(), "Watchmen,The Sandman", order.Items)
	assert.Equal(suite.T(), 35, order.Price)
}

func (suite *OrderServiceTestSuite) TestHandleMessageMalformedPayloadIsDropped() {
	// Nacking an unparseable message would redeliver it forever; the
	// handler acks it instead by returning nil.
	err := suite.orders.HandleMessage(context.Background(), []byte("order-42"))
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(0), countRows(suite.T(), suite.db, &models.Order{}))
}

func (suite *OrderServiceTestSuite) TestHandleMessageDuplicateDeliveryMaterializesTwice() {
	body, err := json.Marshal(&PurchaseDescriptor{
		ClientEmail: "reader@example.com",
		Items:       "Watchmen",
		Price:       20,
	})
	suite.Require().NoError(err)

	// At-least-once: a redelivered message is an accepted duplicate.
	suite.Require().NoError(suite.orders.HandleMessage(context.Background(), body))
	suite.Require().NoError(suite.orders.HandleMessage(context.Background(), body))
	assert.Equal(suite.T(), int64(2), countRows(suite.T(), suite.db, &models.Order{}))
}

func (suite *OrderServiceTestSuite) TestListOrdersFiltersByEmail() {
	_, err := suite.orders.CreateOrder(&PurchaseDescriptor{ClientEmail: "a@example.com", Items: "Watchmen", Price: 20})
	suite.Require().NoError(err)
	_, err = suite.orders.CreateOrder(&PurchaseDescriptor{ClientEmail: "b@example.com", Items: "The Sandman", Price: 15})
	suite.Require().NoError(err)

	orders, total, err := suite.orders.ListOrders(utils.PaginationParams{Page: 1, Limit: 10, Sort: "created_at", Order: "desc", Search: "a@example.com"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(orders, 1)
	assert.Equal(suite.T(), "a@example.com", orders[0].ClientEmail)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
