package brands

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

// List returns all brands ordered by name with their product counts.
func (s *Service) List(ctx context.Context) ([]BrandWithCount, error) {
	return s.repo.List(ctx)
}

// Get returns one brand with its products.
func (s *Service) Get(ctx context.Context, id string) (BrandDetail, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateBrandRequest) (Brand, error) {
	if err := validateName(req.Name); err != nil {
		return Brand{}, err
	}
	brand := Brand{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: normalizeOptional(req.Description),
	}
	return s.repo.Create(ctx, brand)
}

// Update applies a partial update: nil fields keep their stored value, an
// empty string clears the nullable description.
func (s *Service) Update(ctx context.Context, id string, req UpdateBrandRequest) (Brand, error) {
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return Brand{}, err
		}
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		// empty string clears the column
		req.Description = &trimmed
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
