// internal/store/store.go
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/atelierluna/jewelry-backend/internal/models"
)

var (
	// ErrUnknownProduct is returned when a cart mutation names a product id
	// that does not exist in the catalog.
	ErrUnknownProduct = errors.New("product does not exist")

	// ErrDanglingCartProduct means a stored cart line references a product
	// that is gone. The catalog never deletes, so hitting this indicates a
	// corrupted store rather than a recoverable request error.
	ErrDanglingCartProduct = errors.New("cart item references a missing product")
)

// Store is the full storage surface of the storefront. Point lookups report
// absence with a bool, never an error; only invariant violations error.
type Store interface {
	// Users
	GetUser(id int) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	GetUserByEmail(email string) (models.User, bool)
	CreateUser(user models.User) (models.User, error)

	// Categories
	GetAllCategories() []models.Category
	GetCategoryByID(id int) (models.Category, bool)
	GetCategoryBySlug(slug string) (models.Category, bool)
	CreateCategory(category models.Category) models.Category

	// Subcategories
	GetAllSubcategories() []models.Subcategory
	GetSubcategoriesByCategoryID(categoryID int) []models.Subcategory
	GetSubcategoryByID(id int) (models.Subcategory, bool)
	GetSubcategoryBySlug(slug string) (models.Subcategory, bool)
	CreateSubcategory(subcategory models.Subcategory) models.Subcategory

	// Products
	GetAllProducts() []models.Product
	GetProductByID(id int) (models.Product, bool)
	GetProductBySlug(slug string) (models.Product, bool)
	GetProductsByCategoryID(categoryID int) []models.Product
	GetProductsBySubcategoryID(subcategoryID int) []models.Product
	SearchProducts(query string) []models.Product
	GetFeaturedProducts() []models.Product
	GetNewArrivals() []models.Product
	GetBestsellers() []models.Product
	GetOnSaleProducts() []models.Product
	CreateProduct(product models.Product) models.Product

	// Cart
	GetCartItems(identity models.CartIdentity) ([]models.CartItemWithProduct, error)
	GetCartItemByID(id int) (models.CartItem, bool)
	AddToCart(identity models.CartIdentity, productID, quantity int) (models.CartItem, error)
	UpdateCartItemQuantity(id, quantity int) (models.CartItem, bool)
	RemoveFromCart(id int) bool
	ClearCart(identity models.CartIdentity) bool
	CartTotal(identity models.CartIdentity) (float64, error)
}

// Sequence hands out monotonically increasing ids. Ids are never reused,
// even after a row is deleted.
type Sequence func() int

func NewSequence(start int) Sequence {
	next := start
	return func() int {
		id := next
		next++
		return id
	}
}

// MemoryStore is the single in-process owner of all catalog, user and cart
// state. A single RWMutex guards every table: the add-to-cart path is a
// check-then-increment sequence and must not interleave with itself, and
// cart reads join against the product table.
type MemoryStore struct {
	mtx sync.RWMutex

	users         map[int]models.User
	categories    map[int]models.Category
	subcategories map[int]models.Subcategory
	products      map[int]models.Product
	cartItems     map[int]models.CartItem

	// Insertion order of each table. Go maps do not iterate in order, and
	// the catalog's unsorted listing contract is insertion order.
	userOrder        []int
	categoryOrder    []int
	subcategoryOrder []int
	productOrder     []int
	cartItemOrder    []int

	userSeq        Sequence
	categorySeq    Sequence
	subcategorySeq Sequence
	productSeq     Sequence
	cartItemSeq    Sequence

	now func() time.Time
}

type Option func(*MemoryStore)

// WithClock overrides the timestamp source, mainly for tests that need
// deterministic createdAt ordering.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		users:         make(map[int]models.User),
		categories:    make(map[int]models.Category),
		subcategories: make(map[int]models.Subcategory),
		products:      make(map[int]models.Product),
		cartItems:     make(map[int]models.CartItem),

		userSeq:        NewSequence(1),
		categorySeq:    NewSequence(1),
		subcategorySeq: NewSequence(1),
		productSeq:     NewSequence(1),
		cartItemSeq:    NewSequence(1),

		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Store = (*MemoryStore)(nil)
