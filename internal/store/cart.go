// internal/store/cart.go
package store

import (
	"fmt"

	"github.com/atelierluna/jewelry-backend/internal/models"
)

// GetCartItems returns every cart line belonging to the identity, each
// joined with its product. A line whose product cannot be resolved fails
// the whole read: the catalog never deletes, so a dangling reference means
// the store is corrupt.
func (s *MemoryStore) GetCartItems(identity models.CartIdentity) ([]models.CartItemWithProduct, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := []models.CartItemWithProduct{}
	for _, id := range s.cartItemOrder {
		item := s.cartItems[id]
		if !identity.Owns(&item) {
			continue
		}
		product, ok := s.products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("cart item %d: %w (product %d)", item.ID, ErrDanglingCartProduct, item.ProductID)
		}
		out = append(out, models.CartItemWithProduct{CartItem: item, Product: product})
	}
	return out, nil
}

func (s *MemoryStore) GetCartItemByID(id int) (models.CartItem, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	item, ok := s.cartItems[id]
	return item, ok
}

// AddToCart adds quantity of a product to the identity's cart. Adding a
// product that is already in the cart increments the existing line instead
// of creating a second one; the line id stays stable. The find-then-increment
// sequence runs under the write lock so concurrent adds cannot produce
// duplicate lines or lost increments.
func (s *MemoryStore) AddToCart(identity models.CartIdentity, productID, quantity int) (models.CartItem, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.products[productID]; !ok {
		return models.CartItem{}, fmt.Errorf("%w: id %d", ErrUnknownProduct, productID)
	}
	if quantity < 1 {
		quantity = 1
	}

	for _, id := range s.cartItemOrder {
		item := s.cartItems[id]
		if item.ProductID == productID && identity.Owns(&item) {
			item.Quantity += quantity
			s.cartItems[id] = item
			return item, nil
		}
	}

	item := models.CartItem{
		ID:        s.cartItemSeq(),
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: s.now(),
	}
	identity.Stamp(&item)
	s.cartItems[item.ID] = item
	s.cartItemOrder = append(s.cartItemOrder, item.ID)
	return item, nil
}

// UpdateCartItemQuantity overwrites a line's quantity. A quantity of zero or
// less deletes the line, reported as not found just like an unknown id.
func (s *MemoryStore) UpdateCartItemQuantity(id, quantity int) (models.CartItem, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return models.CartItem{}, false
	}
	if quantity <= 0 {
		s.deleteCartItem(id)
		return models.CartItem{}, false
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return item, true
}

func (s *MemoryStore) RemoveFromCart(id int) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return false
	}
	s.deleteCartItem(id)
	return true
}

// ClearCart deletes every line owned by the identity. A zero identity is a
// no-op reported as false rather than an error.
func (s *MemoryStore) ClearCart(identity models.CartIdentity) bool {
	if identity.IsZero() {
		return false
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	remaining := s.cartItemOrder[:0]
	for _, id := range s.cartItemOrder {
		item := s.cartItems[id]
		if identity.Owns(&item) {
			delete(s.cartItems, id)
		} else {
			remaining = append(remaining, id)
		}
	}
	s.cartItemOrder = remaining
	return true
}

// CartTotal sums effective price times quantity over the identity's lines.
func (s *MemoryStore) CartTotal(identity models.CartIdentity) (float64, error) {
	items, err := s.GetCartItems(identity)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for i := range items {
		total += items[i].Product.EffectivePrice() * float64(items[i].Quantity)
	}
	return total, nil
}

// deleteCartItem removes a line from the table and the order index. Caller
// must hold the write lock.
func (s *MemoryStore) deleteCartItem(id int) {
	delete(s.cartItems, id)
	for i, existing := range s.cartItemOrder {
		if existing == id {
			s.cartItemOrder = append(s.cartItemOrder[:i], s.cartItemOrder[i+1:]...)
			return
		}
	}
}
