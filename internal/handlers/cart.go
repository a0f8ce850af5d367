// internal/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelierluna/jewelry-backend/internal/models"
	"github.com/atelierluna/jewelry-backend/internal/services"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /api/cart?sessionId=
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		utils.BadRequestResponse(c, "Session ID is required")
		return
	}

	snapshot, err := h.cartService.Snapshot(models.SessionIdentity(sessionID))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// POST /api/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid cart data")
		return
	}

	update, err := h.cartService.Add(&req)
	if err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, "Invalid cart data", validationErrors)
			return
		}
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product not found")
		case errors.Is(err, services.ErrOutOfStock):
			utils.BadRequestResponse(c, "Product is out of stock")
		case errors.Is(err, services.ErrNoIdentity):
			utils.BadRequestResponse(c, "A sessionId or userId is required")
		default:
			utils.InternalErrorResponse(c, "Failed to add to cart")
		}
		return
	}

	c.JSON(http.StatusCreated, update)
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// PUT /api/cart/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item id")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil || *req.Quantity < 0 {
		utils.BadRequestResponse(c, "Invalid quantity")
		return
	}

	snapshot, err := h.cartService.UpdateQuantity(id, *req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			utils.NotFoundResponse(c, "Cart item not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// DELETE /api/cart/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item id")
		return
	}

	snapshot, err := h.cartService.Remove(id)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			utils.NotFoundResponse(c, "Cart item not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to remove from cart")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// DELETE /api/cart?sessionId=
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		utils.BadRequestResponse(c, "Session ID is required")
		return
	}

	snapshot, err := h.cartService.Clear(models.SessionIdentity(sessionID))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
