// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/atelierluna/jewelry-backend/internal/models"
	"github.com/atelierluna/jewelry-backend/internal/store"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("product is out of stock")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrNoIdentity       = errors.New("cart identity is required")
	ErrInvalidQuantity  = errors.New("invalid quantity")
)

type CartService struct {
	store store.Store
}

func NewCartService(store store.Store) *CartService {
	return &CartService{store: store}
}

// CartSnapshot is the full state of one identity's cart. Every cart
// operation returns a fresh snapshot; clients replace their local state
// with it wholesale instead of patching.
type CartSnapshot struct {
	Items     []models.CartItemWithProduct `json:"items"`
	Total     float64                      `json:"total"`
	ItemCount int                          `json:"itemCount"`
}

// CartUpdate is the snapshot plus the line the mutation touched.
type CartUpdate struct {
	CartSnapshot
	AddedItem models.CartItem `json:"addedItem"`
}

type AddToCartRequest struct {
	ProductID int    `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
	UserID    *int   `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

func (r *AddToCartRequest) Identity() models.CartIdentity {
	return models.NewCartIdentity(r.UserID, r.SessionID)
}

func (s *CartService) Snapshot(identity models.CartIdentity) (CartSnapshot, error) {
	items, err := s.store.GetCartItems(identity)
	if err != nil {
		return CartSnapshot{}, fmt.Errorf("read cart: %w", err)
	}
	snapshot := CartSnapshot{Items: items}
	for i := range items {
		snapshot.Total += items[i].Product.EffectivePrice() * float64(items[i].Quantity)
		snapshot.ItemCount += items[i].Quantity
	}
	return snapshot, nil
}

// Add puts a product in the cart, merging into an existing line when the
// identity already has that product. The product must exist and be in
// stock.
func (s *CartService) Add(req *AddToCartRequest) (CartUpdate, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return CartUpdate{}, err
	}

	identity := req.Identity()
	if identity.IsZero() {
		return CartUpdate{}, ErrNoIdentity
	}

	product, ok := s.store.GetProductByID(req.ProductID)
	if !ok {
		return CartUpdate{}, ErrProductNotFound
	}
	if !product.InStock {
		return CartUpdate{}, ErrOutOfStock
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item, err := s.store.AddToCart(identity, req.ProductID, quantity)
	if err != nil {
		return CartUpdate{}, err
	}

	snapshot, err := s.Snapshot(identity)
	if err != nil {
		return CartUpdate{}, err
	}
	return CartUpdate{CartSnapshot: snapshot, AddedItem: item}, nil
}

// UpdateQuantity overwrites a line's quantity; zero removes the line. The
// returned snapshot belongs to the identity owning the line.
func (s *CartService) UpdateQuantity(id, quantity int) (CartSnapshot, error) {
	if quantity < 0 {
		return CartSnapshot{}, ErrInvalidQuantity
	}

	item, ok := s.store.GetCartItemByID(id)
	if !ok {
		return CartSnapshot{}, ErrCartItemNotFound
	}
	identity := models.NewCartIdentity(item.UserID, item.SessionID)

	if quantity == 0 {
		s.store.RemoveFromCart(id)
	} else {
		s.store.UpdateCartItemQuantity(id, quantity)
	}
	return s.Snapshot(identity)
}

// Remove deletes a line and returns the owner's remaining cart.
func (s *CartService) Remove(id int) (CartSnapshot, error) {
	item, ok := s.store.GetCartItemByID(id)
	if !ok {
		return CartSnapshot{}, ErrCartItemNotFound
	}
	identity := models.NewCartIdentity(item.UserID, item.SessionID)

	s.store.RemoveFromCart(id)
	return s.Snapshot(identity)
}

// Clear empties the identity's cart and returns the (empty) snapshot.
func (s *CartService) Clear(identity models.CartIdentity) (CartSnapshot, error) {
	if identity.IsZero() {
		return CartSnapshot{}, ErrNoIdentity
	}
	s.store.ClearCart(identity)
	return CartSnapshot{Items: []models.CartItemWithProduct{}}, nil
}
