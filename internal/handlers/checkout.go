// internal/handlers/checkout.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/comicden/comics-backend/internal/services"
	"github.com/comicden/comics-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

type buyRequest struct {
	Items string `json:"items" binding:"required"`
	Price int    `json:"price"`
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// POST /buy
//
// Accepts the purchase for asynchronous processing and returns as soon
// as the broker takes the message. The caller learns the purchase was
// submitted, not that it is fulfilled; the order row appears once the
// consumer materializes it.
func (h *CheckoutHandler) Buy(c *gin.Context) {
	email, exists := utils.GetEmailFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	descriptor := &services.PurchaseDescriptor{
		ClientEmail: email,
		Items:       req.Items,
		Price:       req.Price,
	}

	if err := h.checkoutService.Buy(c.Request.Context(), descriptor); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.AcceptedResponse(c, gin.H{"msg": "Purchase submitted"})
}
