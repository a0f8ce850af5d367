// internal/models/catalog.go
package models

import "time"

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Subcategory struct {
	ID          int    `json:"id"`
	CategoryID  int    `json:"categoryId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	DiscountPrice    *float64  `json:"discountPrice,omitempty"`
	CategoryID       int       `json:"categoryId"`
	SubcategoryID    *int      `json:"subcategoryId,omitempty"`
	Image            string    `json:"image"`
	AdditionalImages []string  `json:"additionalImages"`
	Metal            string    `json:"metal,omitempty"`
	Gemstone         string    `json:"gemstone,omitempty"`
	IsNew            bool      `json:"isNew"`
	IsBestseller     bool      `json:"isBestseller"`
	IsFeatured       bool      `json:"isFeatured"`
	IsOnSale         bool      `json:"isOnSale"`
	InStock          bool      `json:"inStock"`
	Rating           float64   `json:"rating"`
	ReviewCount      int       `json:"reviewCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// EffectivePrice is the price a shopper actually pays: the discount price
// when one is set, the list price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
