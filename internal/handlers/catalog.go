// internal/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelierluna/jewelry-backend/internal/services"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Categories())
}

// GET /api/categories/:slug
func (h *CatalogHandler) GetCategoryBySlug(c *gin.Context) {
	category, ok := h.catalogService.CategoryBySlug(c.Param("slug"))
	if !ok {
		utils.NotFoundResponse(c, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

// GET /api/subcategories?categoryId=
func (h *CatalogHandler) GetSubcategories(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("categoryId"))
	c.JSON(http.StatusOK, h.catalogService.Subcategories(categoryID))
}

// GET /api/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := services.ProductListParams{
		Search:           c.Query("search"),
		Featured:         c.Query("featured") == "true",
		New:              c.Query("new") == "true",
		Bestsellers:      c.Query("bestsellers") == "true",
		OnSale:           c.Query("sale") == "true",
		Metal:            c.Query("metal"),
		Gemstone:         c.Query("gemstone"),
		Sort:             c.Query("sort"),
		PaginationParams: utils.GetPaginationParams(c),
	}

	if idStr := c.Query("categoryId"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil {
			params.CategoryID = id
		}
	}
	if idStr := c.Query("subcategoryId"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil {
			params.SubcategoryID = id
		}
	}
	if minStr := c.Query("minPrice"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			params.MinPrice = &min
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			params.MaxPrice = &max
		}
	}

	c.JSON(http.StatusOK, h.catalogService.ListProducts(params))
}

// GET /api/products/:slug
func (h *CatalogHandler) GetProductBySlug(c *gin.Context) {
	product, ok := h.catalogService.ProductBySlug(c.Param("slug"))
	if !ok {
		utils.NotFoundResponse(c, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}
