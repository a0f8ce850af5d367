// internal/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierluna/jewelry-backend/internal/services"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// POST /api/checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid checkout data")
		return
	}

	confirmation, err := h.checkoutService.PlaceOrder(&req)
	if err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, "Invalid checkout data", validationErrors)
			return
		}
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.BadRequestResponse(c, "Cart is empty")
		case errors.Is(err, services.ErrNoIdentity):
			utils.BadRequestResponse(c, "A sessionId or userId is required")
		default:
			utils.InternalErrorResponse(c, "Failed to place order")
		}
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}
