// internal/store/catalog.go
package store

import (
	"strings"

	"github.com/atelierluna/jewelry-backend/internal/models"
)

// Category operations

func (s *MemoryStore) GetAllCategories() []models.Category {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		out = append(out, s.categories[id])
	}
	return out
}

func (s *MemoryStore) GetCategoryByID(id int) (models.Category, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	category, ok := s.categories[id]
	return category, ok
}

func (s *MemoryStore) GetCategoryBySlug(slug string) (models.Category, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.categoryOrder {
		if s.categories[id].Slug == slug {
			return s.categories[id], true
		}
	}
	return models.Category{}, false
}

func (s *MemoryStore) CreateCategory(category models.Category) models.Category {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	category.ID = s.categorySeq()
	s.categories[category.ID] = category
	s.categoryOrder = append(s.categoryOrder, category.ID)
	return category
}

// Subcategory operations

func (s *MemoryStore) GetAllSubcategories() []models.Subcategory {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Subcategory, 0, len(s.subcategoryOrder))
	for _, id := range s.subcategoryOrder {
		out = append(out, s.subcategories[id])
	}
	return out
}

func (s *MemoryStore) GetSubcategoriesByCategoryID(categoryID int) []models.Subcategory {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := []models.Subcategory{}
	for _, id := range s.subcategoryOrder {
		if s.subcategories[id].CategoryID == categoryID {
			out = append(out, s.subcategories[id])
		}
	}
	return out
}

func (s *MemoryStore) GetSubcategoryByID(id int) (models.Subcategory, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	subcategory, ok := s.subcategories[id]
	return subcategory, ok
}

func (s *MemoryStore) GetSubcategoryBySlug(slug string) (models.Subcategory, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.subcategoryOrder {
		if s.subcategories[id].Slug == slug {
			return s.subcategories[id], true
		}
	}
	return models.Subcategory{}, false
}

func (s *MemoryStore) CreateSubcategory(subcategory models.Subcategory) models.Subcategory {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	subcategory.ID = s.subcategorySeq()
	s.subcategories[subcategory.ID] = subcategory
	s.subcategoryOrder = append(s.subcategoryOrder, subcategory.ID)
	return subcategory
}

// Product operations

func (s *MemoryStore) GetAllProducts() []models.Product {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out
}

func (s *MemoryStore) GetProductByID(id int) (models.Product, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	product, ok := s.products[id]
	return product, ok
}

func (s *MemoryStore) GetProductBySlug(slug string) (models.Product, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.productOrder {
		if s.products[id].Slug == slug {
			return s.products[id], true
		}
	}
	return models.Product{}, false
}

func (s *MemoryStore) GetProductsByCategoryID(categoryID int) []models.Product {
	return s.filterProducts(func(p *models.Product) bool {
		return p.CategoryID == categoryID
	})
}

func (s *MemoryStore) GetProductsBySubcategoryID(subcategoryID int) []models.Product {
	return s.filterProducts(func(p *models.Product) bool {
		return p.SubcategoryID != nil && *p.SubcategoryID == subcategoryID
	})
}

// SearchProducts matches the query as a case-insensitive substring of the
// product name, description, metal or gemstone.
func (s *MemoryStore) SearchProducts(query string) []models.Product {
	query = strings.ToLower(query)
	return s.filterProducts(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			(p.Metal != "" && strings.Contains(strings.ToLower(p.Metal), query)) ||
			(p.Gemstone != "" && strings.Contains(strings.ToLower(p.Gemstone), query))
	})
}

func (s *MemoryStore) GetFeaturedProducts() []models.Product {
	return s.filterProducts(func(p *models.Product) bool { return p.IsFeatured })
}

func (s *MemoryStore) GetNewArrivals() []models.Product {
	return s.filterProducts(func(p *models.Product) bool { return p.IsNew })
}

func (s *MemoryStore) GetBestsellers() []models.Product {
	return s.filterProducts(func(p *models.Product) bool { return p.IsBestseller })
}

func (s *MemoryStore) GetOnSaleProducts() []models.Product {
	return s.filterProducts(func(p *models.Product) bool { return p.IsOnSale })
}

func (s *MemoryStore) CreateProduct(product models.Product) models.Product {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	product.ID = s.productSeq()
	product.CreatedAt = s.now()
	if product.AdditionalImages == nil {
		product.AdditionalImages = []string{}
	}
	s.products[product.ID] = product
	s.productOrder = append(s.productOrder, product.ID)
	return product
}

func (s *MemoryStore) filterProducts(keep func(*models.Product) bool) []models.Product {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := []models.Product{}
	for _, id := range s.productOrder {
		p := s.products[id]
		if keep(&p) {
			out = append(out, p)
		}
	}
	return out
}
