package brands

import (
	"time"
)

// Brand represents a manufacturer/label grouping products.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BrandWithCount is the list shape: a brand plus how many products reference it.
type BrandWithCount struct {
	Brand
	ProductCount int `json:"productCount"`
}

// BrandDetail is the single-brand shape with its products included.
type BrandDetail struct {
	Brand
	Products []BrandProduct `json:"products"`
}

// BrandProduct is the product row embedded in a brand detail. The catalog
// products package owns the full product shape; this view stays local to
// avoid tying the two packages together.
type BrandProduct struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	SKU       *string   `json:"sku,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
