// internal/services/catalog_service.go
package services

import (
	"sort"
	"strings"

	"github.com/atelierluna/jewelry-backend/internal/models"
	"github.com/atelierluna/jewelry-backend/internal/store"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

// Sort orders accepted by the product listing. An empty sort keeps the
// store's insertion order, which the storefront treats as "featured".
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

type CatalogService struct {
	store store.Store
}

func NewCatalogService(store store.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ProductListParams is one product listing request. The primary selectors
// are mutually exclusive; when several are set the first of search,
// category, subcategory, featured, new, bestsellers, sale wins.
type ProductListParams struct {
	Search        string
	CategoryID    int
	SubcategoryID int
	Featured      bool
	New           bool
	Bestsellers   bool
	OnSale        bool

	Metal    string
	Gemstone string
	MinPrice *float64
	MaxPrice *float64

	Sort string

	utils.PaginationParams
}

type ProductListing struct {
	Products   []models.Product `json:"products"`
	Pagination utils.Pagination `json:"pagination"`
}

// ListProducts runs the listing pipeline in its fixed order: primary
// selector, attribute filters, sort, pagination.
func (s *CatalogService) ListProducts(params ProductListParams) ProductListing {
	products := s.selectProducts(params)
	products = filterProducts(products, params)
	sortProducts(products, params.Sort)

	pagination := utils.NewPagination(len(products), params.PaginationParams)
	start, end := params.PaginationParams.Bounds(len(products))
	return ProductListing{
		Products:   products[start:end],
		Pagination: pagination,
	}
}

func (s *CatalogService) selectProducts(params ProductListParams) []models.Product {
	switch {
	case params.Search != "":
		return s.store.SearchProducts(params.Search)
	case params.CategoryID != 0:
		return s.store.GetProductsByCategoryID(params.CategoryID)
	case params.SubcategoryID != 0:
		return s.store.GetProductsBySubcategoryID(params.SubcategoryID)
	case params.Featured:
		return s.store.GetFeaturedProducts()
	case params.New:
		return s.store.GetNewArrivals()
	case params.Bestsellers:
		return s.store.GetBestsellers()
	case params.OnSale:
		return s.store.GetOnSaleProducts()
	default:
		return s.store.GetAllProducts()
	}
}

// filterProducts applies the optional attribute filters, all ANDed. Price
// bounds compare against the effective (discounted) price.
func filterProducts(products []models.Product, params ProductListParams) []models.Product {
	out := products[:0]
	for _, p := range products {
		if params.Metal != "" && !strings.EqualFold(p.Metal, params.Metal) {
			continue
		}
		if params.Gemstone != "" && !strings.EqualFold(p.Gemstone, params.Gemstone) {
			continue
		}
		if params.MinPrice != nil && p.EffectivePrice() < *params.MinPrice {
			continue
		}
		if params.MaxPrice != nil && p.EffectivePrice() > *params.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortProducts sorts in place. Sorts are stable so tied elements keep their
// pre-sort order. Unknown sort keys are ignored.
func sortProducts(products []models.Product, sortKey string) {
	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

// Catalog pass-throughs for the simple read endpoints.

func (s *CatalogService) Categories() []models.Category {
	return s.store.GetAllCategories()
}

func (s *CatalogService) CategoryBySlug(slug string) (models.Category, bool) {
	return s.store.GetCategoryBySlug(slug)
}

func (s *CatalogService) Subcategories(categoryID int) []models.Subcategory {
	if categoryID != 0 {
		return s.store.GetSubcategoriesByCategoryID(categoryID)
	}
	return s.store.GetAllSubcategories()
}

func (s *CatalogService) ProductBySlug(slug string) (models.Product, bool) {
	return s.store.GetProductBySlug(slug)
}
