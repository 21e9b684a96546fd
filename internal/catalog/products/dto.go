package products

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Cost        *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	SKU         *string  `json:"sku,omitempty" validate:"omitempty,max=100"`
	Barcode     *string  `json:"barcode,omitempty" validate:"omitempty,max=100"`
	BrandID     *string  `json:"brandId,omitempty"`
}

// UpdateProductRequest is a partial update: nil fields keep their stored
// value. An explicit empty string clears the nullable text columns and an
// empty brandId detaches the brand.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost        *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	SKU         *string  `json:"sku,omitempty" validate:"omitempty,max=100"`
	Barcode     *string  `json:"barcode,omitempty" validate:"omitempty,max=100"`
	BrandID     *string  `json:"brandId,omitempty"`
}
