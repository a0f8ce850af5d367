// internal/handlers/api_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/atelierluna/jewelry-backend/internal/config"
	"github.com/atelierluna/jewelry-backend/internal/models"
	"github.com/atelierluna/jewelry-backend/internal/router"
	"github.com/atelierluna/jewelry-backend/internal/store"
)

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *store.MemoryStore
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = store.NewMemoryStore()
	store.Seed(suite.store)

	// Product 51: the one thing in the shop nobody can buy.
	suite.store.CreateProduct(models.Product{
		Name:       "Sold Out Tiara",
		Slug:       "sold-out-tiara",
		Price:      5000,
		CategoryID: 5,
		InStock:    false,
	})

	cfg := &config.Config{
		Environment: "test",
		CORS:        config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit:   config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
	suite.router = router.Initialize(suite.store, cfg)
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *APITestSuite) TestGetCategories() {
	w := suite.request(http.MethodGet, "/api/categories", nil)
	suite.Equal(http.StatusOK, w.Code)

	var categories []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &categories))
	suite.Len(categories, 5)
	suite.Equal("rings", categories[0]["slug"])
}

func (suite *APITestSuite) TestGetCategoryBySlug() {
	w := suite.request(http.MethodGet, "/api/categories/earrings", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Earrings", suite.decode(w)["name"])

	w = suite.request(http.MethodGet, "/api/categories/socks", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Category not found", suite.decode(w)["message"])
}

func (suite *APITestSuite) TestGetSubcategories() {
	w := suite.request(http.MethodGet, "/api/subcategories", nil)
	suite.Equal(http.StatusOK, w.Code)

	var all []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &all))
	suite.Len(all, 17)

	w = suite.request(http.MethodGet, "/api/subcategories?categoryId=1", nil)
	var rings []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rings))
	suite.Len(rings, 4)
}

func (suite *APITestSuite) TestGetProductsDefaultPagination() {
	w := suite.request(http.MethodGet, "/api/products", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	products := body["products"].([]interface{})
	pagination := body["pagination"].(map[string]interface{})

	suite.Len(products, 12)
	suite.Equal(float64(51), pagination["total"])
	suite.Equal(float64(1), pagination["page"])
	suite.Equal(float64(12), pagination["limit"])
	suite.Equal(float64(5), pagination["totalPages"])
}

func (suite *APITestSuite) TestGetProductsSearch() {
	w := suite.request(http.MethodGet, "/api/products?search=golden+hoop", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	products := body["products"].([]interface{})
	suite.Require().NotEmpty(products)
	first := products[0].(map[string]interface{})
	suite.Equal("golden-hoop-earrings", first["slug"])
}

func (suite *APITestSuite) TestGetProductsSortedByPrice() {
	w := suite.request(http.MethodGet, "/api/products?sort=price-asc&limit=100", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	products := body["products"].([]interface{})
	prev := 0.0
	for _, raw := range products {
		p := raw.(map[string]interface{})
		price := p["price"].(float64)
		if dp, ok := p["discountPrice"].(float64); ok {
			price = dp
		}
		suite.GreaterOrEqual(price, prev)
		prev = price
	}
}

func (suite *APITestSuite) TestGetProductsPageBeyondEnd() {
	w := suite.request(http.MethodGet, "/api/products?page=99", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	suite.Empty(body["products"])
}

func (suite *APITestSuite) TestGetProductBySlug() {
	w := suite.request(http.MethodGet, "/api/products/diamond-engagement-ring", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Diamond Engagement Ring", suite.decode(w)["name"])

	w = suite.request(http.MethodGet, "/api/products/ghost-ring", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Product not found", suite.decode(w)["message"])
}

func (suite *APITestSuite) TestGetCartRequiresSessionID() {
	w := suite.request(http.MethodGet, "/api/cart", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Session ID is required", suite.decode(w)["message"])
}

func (suite *APITestSuite) TestCartLifecycle() {
	// Add product 1, quantity 1.
	w := suite.request(http.MethodPost, "/api/cart", gin.H{
		"productId": 1,
		"quantity":  1,
		"sessionId": "sess-test",
	})
	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal(float64(1), body["itemCount"])
	suite.Equal(1299.00, body["total"])
	addedItem := body["addedItem"].(map[string]interface{})
	itemID := int(addedItem["id"].(float64))

	// Add the same product again: merged line, not a duplicate.
	w = suite.request(http.MethodPost, "/api/cart", gin.H{
		"productId": 1,
		"quantity":  2,
		"sessionId": "sess-test",
	})
	suite.Equal(http.StatusCreated, w.Code)
	body = suite.decode(w)
	suite.Len(body["items"].([]interface{}), 1)
	suite.Equal(float64(3), body["itemCount"])
	suite.Equal(3*1299.00, body["total"])

	// Overwrite quantity.
	w = suite.request(http.MethodPut, fmt.Sprintf("/api/cart/%d", itemID), gin.H{"quantity": 1})
	suite.Equal(http.StatusOK, w.Code)
	body = suite.decode(w)
	suite.Equal(float64(1), body["itemCount"])

	// Quantity zero removes the line.
	w = suite.request(http.MethodPut, fmt.Sprintf("/api/cart/%d", itemID), gin.H{"quantity": 0})
	suite.Equal(http.StatusOK, w.Code)
	body = suite.decode(w)
	suite.Empty(body["items"])
	suite.Equal(float64(0), body["total"])
}

func (suite *APITestSuite) TestAddToCartErrors() {
	w := suite.request(http.MethodPost, "/api/cart", gin.H{
		"productId": 9999,
		"sessionId": "sess-test",
	})
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Product not found", suite.decode(w)["message"])

	w = suite.request(http.MethodPost, "/api/cart", gin.H{
		"productId": 51,
		"sessionId": "sess-test",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Product is out of stock", suite.decode(w)["message"])

	// Missing productId fails schema validation with field details.
	w = suite.request(http.MethodPost, "/api/cart", gin.H{"sessionId": "sess-test"})
	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("Invalid cart data", body["message"])
	suite.NotEmpty(body["errors"])
}

func (suite *APITestSuite) TestUpdateCartItemErrors() {
	w := suite.request(http.MethodPut, "/api/cart/1", gin.H{"quantity": -2})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid quantity", suite.decode(w)["message"])

	w = suite.request(http.MethodPut, "/api/cart/999", gin.H{"quantity": 1})
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Cart item not found", suite.decode(w)["message"])
}

func (suite *APITestSuite) TestRemoveCartItem() {
	w := suite.request(http.MethodPost, "/api/cart", gin.H{
		"productId": 2,
		"sessionId": "sess-test",
	})
	suite.Equal(http.StatusCreated, w.Code)
	itemID := int(suite.decode(w)["addedItem"].(map[string]interface{})["id"].(float64))

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/cart/%d", itemID), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(suite.decode(w)["items"])

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/cart/%d", itemID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestClearCart() {
	w := suite.request(http.MethodDelete, "/api/cart", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.request(http.MethodPost, "/api/cart", gin.H{"productId": 1, "sessionId": "sess-test"})
	suite.request(http.MethodPost, "/api/cart", gin.H{"productId": 2, "sessionId": "sess-test"})

	w = suite.request(http.MethodDelete, "/api/cart?sessionId=sess-test", nil)
	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Empty(body["items"])
	suite.Equal(float64(0), body["total"])
	suite.Equal(float64(0), body["itemCount"])

	w = suite.request(http.MethodGet, "/api/cart?sessionId=sess-test", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(suite.decode(w)["items"])
}

func (suite *APITestSuite) TestCheckout() {
	suite.request(http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": 2, "sessionId": "sess-test"})

	w := suite.request(http.MethodPost, "/api/checkout", gin.H{
		"sessionId": "sess-test",
		"email":     "shopper@example.com",
		"phone":     "5551234567",
		"firstName": "Grace",
		"lastName":  "Hopper",
		"address":   "1 Harbor Lane",
		"city":      "Arlington",
		"state":     "VA",
		"zipCode":   "22201",
		"country":   "United States",
	})
	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.NotEmpty(body["orderNumber"])
	suite.Equal(2*1299.00, body["total"])

	// Cart is emptied by a successful checkout.
	w = suite.request(http.MethodGet, "/api/cart?sessionId=sess-test", nil)
	suite.Empty(suite.decode(w)["items"])
}

func (suite *APITestSuite) TestCheckoutValidation() {
	suite.request(http.MethodPost, "/api/cart", gin.H{"productId": 1, "sessionId": "sess-test"})

	w := suite.request(http.MethodPost, "/api/checkout", gin.H{
		"sessionId": "sess-test",
		"email":     "not-an-email",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("Invalid checkout data", body["message"])
	suite.NotEmpty(body["errors"])
}

func (suite *APITestSuite) TestCheckoutEmptyCart() {
	w := suite.request(http.MethodPost, "/api/checkout", gin.H{
		"sessionId": "sess-empty",
		"email":     "shopper@example.com",
		"phone":     "5551234567",
		"firstName": "Grace",
		"lastName":  "Hopper",
		"address":   "1 Harbor Lane",
		"city":      "Arlington",
		"state":     "VA",
		"zipCode":   "22201",
		"country":   "United States",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Cart is empty", suite.decode(w)["message"])
}

func (suite *APITestSuite) TestUserRegistration() {
	w := suite.request(http.MethodPost, "/api/users", gin.H{
		"username": "ada",
		"password": "longenough",
		"email":    "ada@example.com",
		"fullName": "Ada Lovelace",
	})
	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("ada", body["username"])
	// The password hash never leaves the server.
	_, leaked := body["password"]
	assert.False(suite.T(), leaked)

	w = suite.request(http.MethodPost, "/api/users", gin.H{
		"username": "ada",
		"password": "longenough",
		"email":    "other@example.com",
	})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.request(http.MethodGet, "/api/users/1", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/users/99", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
