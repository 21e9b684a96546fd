package products

import (
	"time"

	"github.com/selfinvoice/selfinvoice/internal/catalog/brands"
)

// Product represents a sellable catalog item.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Cost        *float64      `json:"cost,omitempty"`
	Stock       int           `json:"stock"`
	SKU         *string       `json:"sku,omitempty"`
	Barcode     *string       `json:"barcode,omitempty"`
	BrandID     *string       `json:"brandId,omitempty"`
	Brand       *brands.Brand `json:"brand,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
