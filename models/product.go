package models

// FlashSale is an optional time-boxed discount attached to a product.
type FlashSale struct {
	Discount int    `json:"discount"`
	EndTime  string `json:"endTime"`
}

// Product is a catalog entry. Products are written only by the admin seed;
// the service otherwise treats the catalog as read-only.
type Product struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Price            float64    `json:"price"`
	OriginalPrice    float64    `json:"originalPrice,omitempty"`
	Image            string     `json:"image,omitempty"`
	Images           []string   `json:"images,omitempty"`
	Category         string     `json:"category"`
	Brand            string     `json:"brand"`
	Rating           float64    `json:"rating"`
	Reviews          int        `json:"reviews"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"shortDescription,omitempty"`
	Sizes            []string   `json:"sizes,omitempty"`
	Colors           []string   `json:"colors,omitempty"`
	InStock          bool       `json:"inStock"`
	Featured         bool       `json:"featured"`
	Trending         bool       `json:"trending"`
	NewArrival       bool       `json:"newArrival"`
	FlashSale        *FlashSale `json:"flashSale,omitempty"`
}

// ProductWithReviews is the GET /products/:id response payload.
type ProductWithReviews struct {
	Product
	ReviewList []Review `json:"reviews"`
}

// ProductFilter carries the catalog query parameters. String filters match by
// case-insensitive substring; boolean filters apply only when set true; price
// bounds are inclusive.
type ProductFilter struct {
	Category   string
	Brand      string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    bool
	Featured   bool
	Trending   bool
	NewArrival bool
	Search     string
}
