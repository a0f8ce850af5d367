// internal/services/checkout_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/atelierluna/jewelry-backend/internal/models"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a cart into a simulated order confirmation. No
// payment provider is involved: the order is acknowledged, the cart is
// cleared, and nothing is persisted.
type CheckoutService struct {
	cart *CartService
}

func NewCheckoutService(cart *CartService) *CheckoutService {
	return &CheckoutService{cart: cart}
}

type CheckoutRequest struct {
	UserID    *int   `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`

	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Address   string `json:"address" validate:"required,min=5"`
	City      string `json:"city" validate:"required,min=2"`
	State     string `json:"state" validate:"required,min=2"`
	ZipCode   string `json:"zipCode" validate:"required,min=5"`
	Country   string `json:"country" validate:"required,min=2"`
}

type OrderConfirmation struct {
	OrderNumber string                       `json:"orderNumber"`
	Email       string                       `json:"email"`
	Items       []models.CartItemWithProduct `json:"items"`
	Total       float64                      `json:"total"`
	PlacedAt    time.Time                    `json:"placedAt"`
}

func (s *CheckoutService) PlaceOrder(req *CheckoutRequest) (OrderConfirmation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return OrderConfirmation{}, err
	}

	identity := models.NewCartIdentity(req.UserID, req.SessionID)
	if identity.IsZero() {
		return OrderConfirmation{}, ErrNoIdentity
	}

	snapshot, err := s.cart.Snapshot(identity)
	if err != nil {
		return OrderConfirmation{}, err
	}
	if len(snapshot.Items) == 0 {
		return OrderConfirmation{}, ErrEmptyCart
	}

	confirmation := OrderConfirmation{
		OrderNumber: uuid.NewString(),
		Email:       req.Email,
		Items:       snapshot.Items,
		Total:       snapshot.Total,
		PlacedAt:    time.Now(),
	}

	if _, err := s.cart.Clear(identity); err != nil {
		return OrderConfirmation{}, err
	}
	return confirmation, nil
}
