package products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

type mockRepo struct {
	created   []Product
	updatedID string
	updated   UpdateProductRequest
	deleted   []string
	err       error
}

func (m *mockRepo) List(ctx context.Context) ([]Product, error) { return nil, m.err }

func (m *mockRepo) Get(ctx context.Context, id string) (Product, error) {
	return Product{ID: id}, m.err
}

func (m *mockRepo) Create(ctx context.Context, product Product) (Product, error) {
	if m.err != nil {
		return Product{}, m.err
	}
	m.created = append(m.created, product)
	return product, nil
}

func (m *mockRepo) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	if m.err != nil {
		return Product{}, m.err
	}
	m.updatedID = id
	m.updated = req
	return Product{ID: id}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	product, err := svc.Create(context.Background(), CreateProductRequest{
		Name:  "  iPhone 15 Pro  ",
		Price: fptr(29990000),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "iPhone 15 Pro", product.Name)
	assert.Equal(t, 29990000.0, product.Price)
	assert.Equal(t, 0, product.Stock)
	assert.Nil(t, product.Description)
	assert.Nil(t, product.SKU)
	assert.Nil(t, product.BrandID)
}

func TestCreateTrimsOptionalFieldsToNil(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	product, err := svc.Create(context.Background(), CreateProductRequest{
		Name:    "Galaxy S24",
		Price:   fptr(27990000),
		SKU:     sptr("   "),
		Barcode: sptr(""),
		BrandID: sptr(" b-1 "),
		Stock:   iptr(12),
	})
	require.NoError(t, err)

	assert.Nil(t, product.SKU)
	assert.Nil(t, product.Barcode)
	require.NotNil(t, product.BrandID)
	assert.Equal(t, "b-1", *product.BrandID)
	assert.Equal(t, 12, product.Stock)
}

func TestCreateRequiresNameAndPrice(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Create(context.Background(), CreateProductRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
	assert.Equal(t, "Tên sản phẩm và giá bán là bắt buộc", err.Error())

	_, err = svc.Create(context.Background(), CreateProductRequest{Name: "Pixel 9"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
}

func TestCreateRejectsNegativeAmounts(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Create(context.Background(), CreateProductRequest{Name: "Pixel 9", Price: fptr(-1)})
	require.Error(t, err)
	assert.Equal(t, "Giá bán không được âm", err.Error())

	_, err = svc.Create(context.Background(), CreateProductRequest{Name: "Pixel 9", Price: fptr(100), Cost: fptr(-5)})
	require.Error(t, err)
	assert.Equal(t, "Giá vốn không được âm", err.Error())

	_, err = svc.Create(context.Background(), CreateProductRequest{Name: "Pixel 9", Price: fptr(100), Stock: iptr(-3)})
	require.Error(t, err)
	assert.Equal(t, "Tồn kho không được âm", err.Error())
}

func TestUpdateRejectsBlankName(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "p-1", UpdateProductRequest{Name: sptr("  ")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
	assert.Empty(t, repo.updatedID)
}

func TestUpdatePassesPartialRequestThrough(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "p-1", UpdateProductRequest{
		Name:    sptr("  iPhone 15  "),
		BrandID: sptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "p-1", repo.updatedID)
	require.NotNil(t, repo.updated.Name)
	assert.Equal(t, "iPhone 15", *repo.updated.Name)
	require.NotNil(t, repo.updated.BrandID)
	assert.Empty(t, *repo.updated.BrandID)
	assert.Nil(t, repo.updated.Price)
}

func TestDeletePropagatesConflict(t *testing.T) {
	repo := &mockRepo{err: httpx.Conflict("Sản phẩm đã được sử dụng trong hóa đơn")}
	svc := NewService(repo)

	err := svc.Delete(context.Background(), "p-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrConflict))
}
