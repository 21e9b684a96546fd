package brands

type CreateBrandRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// UpdateBrandRequest is a partial update: nil fields are left unchanged.
type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}
