// internal/store/seed.go
package store

import (
	"fmt"
	"strings"

	"github.com/atelierluna/jewelry-backend/internal/models"
)

// Seed loads the sample jewelry catalog: five categories, their
// subcategories, a set of curated products and a generated long tail.
func Seed(s Store) {
	categories := []models.Category{
		{Name: "Rings", Slug: "rings", Description: "Elegant rings for all occasions", Image: "https://images.unsplash.com/photo-1605100804763-247f67b3557e?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80"},
		{Name: "Earrings", Slug: "earrings", Description: "Beautiful earrings to complete your look", Image: "https://images.unsplash.com/photo-1589128777073-263566ae5e4d?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80"},
		{Name: "Necklaces", Slug: "necklaces", Description: "Stunning necklaces for any style", Image: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80"},
		{Name: "Bracelets", Slug: "bracelets", Description: "Charming bracelets for your wrist", Image: "https://images.unsplash.com/photo-1630018548696-e1900b010acc?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80"},
		{Name: "Gemstones", Slug: "gemstones", Description: "Precious gems for unique jewelry", Image: "https://images.unsplash.com/photo-1574010498544-4d73cfd939ed?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80"},
	}
	for _, category := range categories {
		s.CreateCategory(category)
	}

	subcategories := []models.Subcategory{
		{CategoryID: 1, Name: "Diamond Rings", Slug: "diamond-rings", Description: "Sparkling diamond rings"},
		{CategoryID: 1, Name: "Engagement Rings", Slug: "engagement-rings", Description: "Perfect for your special moment"},
		{CategoryID: 1, Name: "Wedding Bands", Slug: "wedding-bands", Description: "Elegant wedding bands"},
		{CategoryID: 1, Name: "Gemstone Rings", Slug: "gemstone-rings", Description: "Rings with beautiful gemstones"},
		{CategoryID: 2, Name: "Stud Earrings", Slug: "stud-earrings", Description: "Classic stud earrings"},
		{CategoryID: 2, Name: "Hoop Earrings", Slug: "hoop-earrings", Description: "Fashionable hoop earrings"},
		{CategoryID: 2, Name: "Drop Earrings", Slug: "drop-earrings", Description: "Elegant drop earrings"},
		{CategoryID: 3, Name: "Pendants", Slug: "pendants", Description: "Beautiful pendant necklaces"},
		{CategoryID: 3, Name: "Chokers", Slug: "chokers", Description: "Stylish choker necklaces"},
		{CategoryID: 3, Name: "Chains", Slug: "chains", Description: "Fine chain necklaces"},
		{CategoryID: 4, Name: "Tennis Bracelets", Slug: "tennis-bracelets", Description: "Elegant tennis bracelets"},
		{CategoryID: 4, Name: "Cuff Bracelets", Slug: "cuff-bracelets", Description: "Bold cuff bracelets"},
		{CategoryID: 4, Name: "Charm Bracelets", Slug: "charm-bracelets", Description: "Delightful charm bracelets"},
		{CategoryID: 5, Name: "Diamonds", Slug: "diamonds", Description: "Brilliant diamonds"},
		{CategoryID: 5, Name: "Sapphires", Slug: "sapphires", Description: "Rich sapphires"},
		{CategoryID: 5, Name: "Emeralds", Slug: "emeralds", Description: "Vibrant emeralds"},
		{CategoryID: 5, Name: "Rubies", Slug: "rubies", Description: "Passionate rubies"},
	}
	created := make([]models.Subcategory, 0, len(subcategories))
	for _, subcategory := range subcategories {
		created = append(created, s.CreateSubcategory(subcategory))
	}

	curated := curatedProducts()
	for _, product := range curated {
		s.CreateProduct(product)
	}

	// Generated long tail so filters and pagination have something to chew on.
	gemstones := []string{"Diamond", "Sapphire", "Emerald", "Ruby", "Pearl", "Amethyst", "Topaz", "Opal"}
	metals := []string{"White Gold", "Yellow Gold", "Rose Gold", "Platinum", "Silver"}

	for i := 1; i <= 40; i++ {
		categoryID := 1 + i%5
		var inCategory []models.Subcategory
		for _, sub := range created {
			if sub.CategoryID == categoryID {
				inCategory = append(inCategory, sub)
			}
		}
		subcategoryID := inCategory[i%len(inCategory)].ID

		gemstone := gemstones[i%len(gemstones)]
		metal := metals[i%len(metals)]
		price := float64(300 + i*150)

		kind := "Bracelet"
		switch categoryID {
		case 1:
			kind = "Ring"
		case 2:
			kind = "Earrings"
		case 3:
			kind = "Necklace"
		}

		product := models.Product{
			Name:             fmt.Sprintf("%s %s %s %d", metal, gemstone, kind, i),
			Slug:             fmt.Sprintf("%s-%s-%s-%d", slugify(metal), slugify(gemstone), slugify(kind), i),
			Description:      fmt.Sprintf("Beautiful %s jewelry piece crafted from %s.", strings.ToLower(gemstone), strings.ToLower(metal)),
			Price:            price,
			CategoryID:       categoryID,
			SubcategoryID:    &subcategoryID,
			Image:            curated[i%len(curated)].Image,
			AdditionalImages: []string{},
			Metal:            metal,
			Gemstone:         gemstone,
			IsNew:            i%7 == 0,
			IsBestseller:     i%8 == 0,
			IsFeatured:       i%5 == 0,
			IsOnSale:         i%4 == 0,
			InStock:          true,
			Rating:           3.5 + float64(i%3)*0.5,
			ReviewCount:      10 + i%30,
		}
		if i%4 == 0 {
			discounted := price * 0.85
			product.DiscountPrice = &discounted
		}
		s.CreateProduct(product)
	}
}

func curatedProducts() []models.Product {
	return []models.Product{
		{
			Name:             "Diamond Engagement Ring",
			Slug:             "diamond-engagement-ring",
			Description:      "A stunning diamond engagement ring set in 14k white gold, featuring a brilliant-cut diamond center stone surrounded by a halo of smaller diamonds.",
			Price:            1499.00,
			DiscountPrice:    priceOf(1299.00),
			CategoryID:       1,
			SubcategoryID:    subcategoryOf(2),
			Image:            "https://images.unsplash.com/photo-1603561591411-07134e71a2a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "White Gold",
			Gemstone:         "Diamond",
			IsNew:            true,
			IsFeatured:       true,
			IsOnSale:         true,
			InStock:          true,
			Rating:           4.5,
			ReviewCount:      42,
		},
		{
			Name:             "White Gold Diamond Ring",
			Slug:             "white-gold-diamond-ring",
			Description:      "Elegant white gold ring with a cluster of diamonds for a timeless look.",
			Price:            899.00,
			CategoryID:       1,
			SubcategoryID:    subcategoryOf(1),
			Image:            "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "White Gold",
			Gemstone:         "Diamond",
			InStock:          true,
			Rating:           4.0,
			ReviewCount:      36,
		},
		{
			Name:             "Emerald Statement Ring",
			Slug:             "emerald-statement-ring",
			Description:      "Bold emerald statement ring set in yellow gold with diamond accents.",
			Price:            1499.00,
			DiscountPrice:    priceOf(1199.00),
			CategoryID:       1,
			SubcategoryID:    subcategoryOf(4),
			Image:            "https://images.unsplash.com/photo-1574010498544-4d73cfd939ed?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "Yellow Gold",
			Gemstone:         "Emerald",
			IsOnSale:         true,
			InStock:          true,
			Rating:           4.5,
			ReviewCount:      41,
		},
		{
			Name:             "Pearl Stud Earrings",
			Slug:             "pearl-stud-earrings",
			Description:      "Classic pearl stud earrings set in 14k white gold, featuring lustrous freshwater pearls.",
			Price:            399.00,
			DiscountPrice:    priceOf(349.00),
			CategoryID:       2,
			SubcategoryID:    subcategoryOf(5),
			Image:            "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "White Gold",
			Gemstone:         "Pearl",
			IsBestseller:     true,
			IsFeatured:       true,
			IsOnSale:         true,
			InStock:          true,
			Rating:           5.0,
			ReviewCount:      87,
		},
		{
			Name:             "Golden Hoop Earrings",
			Slug:             "golden-hoop-earrings",
			Description:      "Elegant gold hoop earrings with a polished finish, perfect for everyday wear.",
			Price:            429.00,
			CategoryID:       2,
			SubcategoryID:    subcategoryOf(6),
			Image:            "https://images.unsplash.com/photo-1617038220319-276d3cfab638?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "Yellow Gold",
			InStock:          true,
			Rating:           4.5,
			ReviewCount:      52,
		},
		{
			Name:             "Pearl Drop Earrings",
			Slug:             "pearl-drop-earrings",
			Description:      "Elegant pearl drop earrings with white gold posts and settings.",
			Price:            399.00,
			CategoryID:       2,
			SubcategoryID:    subcategoryOf(7),
			Image:            "https://images.unsplash.com/photo-1602173574767-37ac01994b2a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "White Gold",
			Gemstone:         "Pearl",
			InStock:          true,
			Rating:           4.0,
			ReviewCount:      33,
		},
		{
			Name:             "Sapphire Pendant Necklace",
			Slug:             "sapphire-pendant-necklace",
			Description:      "Stunning sapphire pendant necklace set in 18k white gold with a delicate chain.",
			Price:            729.00,
			CategoryID:       3,
			SubcategoryID:    subcategoryOf(8),
			Image:            "https://images.unsplash.com/photo-1576022162933-67afca6d2783?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "White Gold",
			Gemstone:         "Sapphire",
			IsFeatured:       true,
			InStock:          true,
			Rating:           4.0,
			ReviewCount:      29,
		},
		{
			Name:             "Gold Chain Necklace",
			Slug:             "gold-chain-necklace",
			Description:      "Classic gold chain necklace with a durable link design.",
			Price:            599.00,
			CategoryID:       3,
			SubcategoryID:    subcategoryOf(10),
			Image:            "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "Yellow Gold",
			InStock:          true,
			Rating:           4.0,
			ReviewCount:      28,
		},
		{
			Name:             "Diamond Tennis Bracelet",
			Slug:             "diamond-tennis-bracelet",
			Description:      "Luxurious diamond tennis bracelet featuring 4 carats of round brilliant diamonds set in 18k white gold.",
			Price:            2499.00,
			DiscountPrice:    priceOf(1899.00),
			CategoryID:       4,
			SubcategoryID:    subcategoryOf(11),
			Image:            "https://images.unsplash.com/photo-1535632787350-4e68ef0ac584?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "White Gold",
			Gemstone:         "Diamond",
			IsFeatured:       true,
			IsOnSale:         true,
			InStock:          true,
			Rating:           4.5,
			ReviewCount:      54,
		},
		{
			Name:             "Gemstone Charm Bracelet",
			Slug:             "gemstone-charm-bracelet",
			Description:      "Colorful gemstone charm bracelet with mixed stones in gold settings.",
			Price:            549.00,
			CategoryID:       4,
			SubcategoryID:    subcategoryOf(13),
			Image:            "https://images.unsplash.com/photo-1630018548696-e1900b010acc?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			AdditionalImages: []string{},
			Metal:            "Yellow Gold",
			Gemstone:         "Mixed",
			IsNew:            true,
			InStock:          true,
			Rating:           5.0,
			ReviewCount:      19,
		},
	}
}

func priceOf(v float64) *float64 { return &v }

func subcategoryOf(id int) *int { return &id }

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
