// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierluna/jewelry-backend/internal/models"
	"github.com/atelierluna/jewelry-backend/internal/store"
)

// cartFixture builds a two-product catalog: product 1 at 100.00 and
// product 2 at 500.00 discounted to 450.00, plus one out-of-stock product.
func cartFixture(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	s.CreateCategory(models.Category{Name: "Rings", Slug: "rings"})

	discounted := 450.00
	s.CreateProduct(models.Product{Name: "Plain Band", Slug: "plain-band", Price: 100, CategoryID: 1, InStock: true})
	s.CreateProduct(models.Product{Name: "Diamond Ring", Slug: "diamond-ring", Price: 500, DiscountPrice: &discounted, CategoryID: 1, InStock: true})
	s.CreateProduct(models.Product{Name: "Sold Out Ring", Slug: "sold-out-ring", Price: 300, CategoryID: 1, InStock: false})
	return s
}

func TestAddUpdateRemoveScenario(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	// Add product 1 (price 100) once.
	update, err := svc.Add(&AddToCartRequest{ProductID: 1, Quantity: 1, SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, update.Total)
	assert.Equal(t, 1, update.ItemCount)
	require.Len(t, update.Items, 1)

	// Add the same product twice more: still one line, quantity 3.
	update, err = svc.Add(&AddToCartRequest{ProductID: 1, Quantity: 2, SessionID: "sess-1"})
	require.NoError(t, err)
	require.Len(t, update.Items, 1)
	assert.Equal(t, 3, update.Items[0].Quantity)
	assert.Equal(t, 300.0, update.Total)
	assert.Equal(t, 3, update.ItemCount)

	// Remove the line: empty cart, zero total.
	snapshot, err := svc.Remove(update.AddedItem.ID)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
	assert.Equal(t, 0.0, snapshot.Total)
	assert.Equal(t, 0, snapshot.ItemCount)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	update, err := svc.Add(&AddToCartRequest{ProductID: 1, SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, update.AddedItem.Quantity)
}

func TestAddUsesDiscountPriceInTotal(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	update, err := svc.Add(&AddToCartRequest{ProductID: 2, Quantity: 2, SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, 900.0, update.Total)
}

func TestAddRejectsMissingProduct(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	_, err := svc.Add(&AddToCartRequest{ProductID: 999, SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddRejectsOutOfStock(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	_, err := svc.Add(&AddToCartRequest{ProductID: 3, SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestAddRequiresIdentity(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	_, err := svc.Add(&AddToCartRequest{ProductID: 1})
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestUserIDWinsOverSessionID(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	userID := 9
	_, err := svc.Add(&AddToCartRequest{ProductID: 1, UserID: &userID, SessionID: "sess-1"})
	require.NoError(t, err)

	// The line landed in the user's cart, not the session's.
	userCart, err := svc.Snapshot(models.UserIdentity(9))
	require.NoError(t, err)
	assert.Len(t, userCart.Items, 1)

	sessionCart, err := svc.Snapshot(models.SessionIdentity("sess-1"))
	require.NoError(t, err)
	assert.Empty(t, sessionCart.Items)
}

func TestUpdateQuantity(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	update, err := svc.Add(&AddToCartRequest{ProductID: 1, Quantity: 5, SessionID: "sess-1"})
	require.NoError(t, err)

	snapshot, err := svc.UpdateQuantity(update.AddedItem.ID, 2)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, 200.0, snapshot.Total)

	// Quantity zero removes the line and still returns the snapshot.
	snapshot, err = svc.UpdateQuantity(update.AddedItem.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)

	_, err = svc.UpdateQuantity(update.AddedItem.ID, 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	_, err = svc.UpdateQuantity(1, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestRemoveMissingItem(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	_, err := svc.Remove(999)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestClear(t *testing.T) {
	svc := NewCartService(cartFixture(t))

	_, err := svc.Add(&AddToCartRequest{ProductID: 1, SessionID: "sess-1"})
	require.NoError(t, err)

	snapshot, err := svc.Clear(models.SessionIdentity("sess-1"))
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
	assert.Equal(t, 0.0, snapshot.Total)

	_, err = svc.Clear(models.CartIdentity{})
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	cartSvc := NewCartService(cartFixture(t))
	svc := NewCheckoutService(cartSvc)

	_, err := cartSvc.Add(&AddToCartRequest{ProductID: 2, Quantity: 2, SessionID: "sess-1"})
	require.NoError(t, err)

	confirmation, err := svc.PlaceOrder(&CheckoutRequest{
		SessionID: "sess-1",
		Email:     "shopper@example.com",
		Phone:     "5551234567",
		FirstName: "Grace",
		LastName:  "Hopper",
		Address:   "1 Harbor Lane",
		City:      "Arlington",
		State:     "VA",
		ZipCode:   "22201",
		Country:   "United States",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.OrderNumber)
	assert.Equal(t, 900.0, confirmation.Total)
	require.Len(t, confirmation.Items, 1)

	snapshot, err := cartSvc.Snapshot(models.SessionIdentity("sess-1"))
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc := NewCheckoutService(NewCartService(cartFixture(t)))

	_, err := svc.PlaceOrder(&CheckoutRequest{
		SessionID: "sess-1",
		Email:     "shopper@example.com",
		Phone:     "5551234567",
		FirstName: "Grace",
		LastName:  "Hopper",
		Address:   "1 Harbor Lane",
		City:      "Arlington",
		State:     "VA",
		ZipCode:   "22201",
		Country:   "United States",
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := NewUserService(cartFixture(t))

	_, err := svc.Register(&CreateUserRequest{Username: "ada", Password: "longenough", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = svc.Register(&CreateUserRequest{Username: "ADA", Password: "longenough", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(&CreateUserRequest{Username: "grace", Password: "longenough", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
