// internal/models/cart.go
package models

import "time"

type CartItem struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"userId,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartItemWithProduct is a CartItem joined with its product at read time.
// It is never stored; the cart record keeps only the product id.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

// CartIdentity names the owner of a set of cart lines: either a registered
// user or an anonymous browser session, never both. When a request carries
// both a user id and a session id, the user id wins.
type CartIdentity struct {
	userID    int
	sessionID string
}

func UserIdentity(userID int) CartIdentity {
	return CartIdentity{userID: userID}
}

func SessionIdentity(sessionID string) CartIdentity {
	return CartIdentity{sessionID: sessionID}
}

// NewCartIdentity resolves the user-id-wins policy for callers that accept
// both forms. The returned identity is zero when neither is supplied.
func NewCartIdentity(userID *int, sessionID string) CartIdentity {
	if userID != nil && *userID != 0 {
		return UserIdentity(*userID)
	}
	if sessionID != "" {
		return SessionIdentity(sessionID)
	}
	return CartIdentity{}
}

func (id CartIdentity) IsZero() bool {
	return id.userID == 0 && id.sessionID == ""
}

// Owns reports whether the given cart item belongs to this identity.
func (id CartIdentity) Owns(item *CartItem) bool {
	switch {
	case id.userID != 0:
		return item.UserID != nil && *item.UserID == id.userID
	case id.sessionID != "":
		return item.SessionID == id.sessionID
	default:
		return false
	}
}

// Stamp writes the identity onto a new cart item.
func (id CartIdentity) Stamp(item *CartItem) {
	if id.userID != 0 {
		uid := id.userID
		item.UserID = &uid
		return
	}
	item.SessionID = id.sessionID
}
