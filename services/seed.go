package services

import (
	"time"

	"storefront-service/models"
)

// DefaultCatalog returns the sample products used by the admin seed endpoint
// when no catalog is supplied in the request body.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:               "1",
			Name:             "Classic Cotton T-Shirt",
			Price:            1299,
			OriginalPrice:    1599,
			Image:            "https://images.example.com/products/classic-cotton-tshirt.jpg",
			Images:           []string{"https://images.example.com/products/classic-cotton-tshirt.jpg"},
			Category:         "T-Shirts",
			Brand:            "AmarBrand",
			Rating:           4.5,
			Reviews:          128,
			Description:      "Premium quality cotton t-shirt perfect for everyday wear. Made with 100% organic cotton.",
			ShortDescription: "Premium quality cotton t-shirt perfect for everyday wear.",
			Sizes:            []string{"S", "M", "L", "XL", "XXL"},
			Colors:           []string{"Black", "White", "Navy", "Gray"},
			InStock:          true,
			Featured:         true,
			Trending:         true,
			NewArrival:       false,
			FlashSale: &models.FlashSale{
				Discount: 20,
				EndTime:  time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
			},
		},
		{
			ID:               "2",
			Name:             "Elegant Summer Dress",
			Price:            2499,
			OriginalPrice:    2999,
			Image:            "https://images.example.com/products/elegant-summer-dress.jpg",
			Images:           []string{"https://images.example.com/products/elegant-summer-dress.jpg"},
			Category:         "Dresses",
			Brand:            "ElegantWear",
			Rating:           4.8,
			Reviews:          89,
			Description:      "Beautiful summer dress perfect for casual outings and special occasions.",
			ShortDescription: "Beautiful summer dress perfect for casual outings.",
			Sizes:            []string{"XS", "S", "M", "L", "XL"},
			Colors:           []string{"Blue", "Pink", "White", "Yellow"},
			InStock:          true,
			Featured:         true,
			Trending:         false,
			NewArrival:       true,
		},
	}
}
