package products

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all products newest-first with their brands joined.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := validateCreate(req); err != nil {
		return Product{}, err
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}

	product := Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: normalizeOptional(req.Description),
		Price:       *req.Price,
		Cost:        req.Cost,
		Stock:       stock,
		SKU:         normalizeOptional(req.SKU),
		Barcode:     normalizeOptional(req.Barcode),
		BrandID:     normalizeOptional(req.BrandID),
	}
	return s.repo.Create(ctx, product)
}

// Update applies a partial update: nil fields keep their stored value,
// empty-string text fields clear the column.
func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	if err := validateUpdate(req); err != nil {
		return Product{}, err
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	return s.repo.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
