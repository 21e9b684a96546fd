package brands

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selfinvoice/selfinvoice/internal/platform/db"
	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]BrandWithCount, error)
	Get(ctx context.Context, id string) (BrandDetail, error)
	Create(ctx context.Context, brand Brand) (Brand, error)
	Update(ctx context.Context, id string, req UpdateBrandRequest) (Brand, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]BrandWithCount, error) {
	query := `SELECT b.id, b.name, b.description, b.created_at, b.updated_at, COUNT(p.id)
		FROM brands b
		LEFT JOIN products p ON p.brand_id = b.id
		GROUP BY b.id
		ORDER BY b.name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []BrandWithCount
	for rows.Next() {
		var b BrandWithCount
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt, &b.ProductCount); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (BrandDetail, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM brands WHERE id = $1`
	var detail BrandDetail
	err := r.db.QueryRow(ctx, query, id).Scan(&detail.ID, &detail.Name, &detail.Description, &detail.CreatedAt, &detail.UpdatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return BrandDetail{}, httpx.NotFound("Không tìm thấy thương hiệu")
		}
		return BrandDetail{}, err
	}

	productQuery := `SELECT id, name, price, stock, sku, created_at FROM products WHERE brand_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, productQuery, id)
	if err != nil {
		return BrandDetail{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p BrandProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.SKU, &p.CreatedAt); err != nil {
			return BrandDetail{}, err
		}
		detail.Products = append(detail.Products, p)
	}
	return detail, rows.Err()
}

func (r *repository) Create(ctx context.Context, brand Brand) (Brand, error) {
	query := `INSERT INTO brands (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	now := time.Now()
	_, err := r.db.Exec(ctx, query, brand.ID, brand.Name, brand.Description, now, now)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return Brand{}, httpx.Duplicate("Tên thương hiệu đã tồn tại")
		}
		return Brand{}, err
	}
	brand.CreatedAt = now
	brand.UpdatedAt = now
	return brand, nil
}

func (r *repository) Update(ctx context.Context, id string, req UpdateBrandRequest) (Brand, error) {
	query := `UPDATE brands SET updated_at = $1`
	args := []interface{}{time.Now()}

	if req.Name != nil {
		args = append(args, *req.Name)
		query += `, name = $` + strconv.Itoa(len(args))
	}
	if req.Description != nil {
		args = append(args, textOrNull(*req.Description))
		query += `, description = $` + strconv.Itoa(len(args))
	}

	args = append(args, id)
	query += ` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING id, name, description, created_at, updated_at`

	var b Brand
	err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return Brand{}, httpx.NotFound("Không tìm thấy thương hiệu")
		}
		if db.IsUniqueViolation(err, "") {
			return Brand{}, httpx.Duplicate("Tên thương hiệu đã tồn tại")
		}
		return Brand{}, err
	}
	return b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.NotFound("Không tìm thấy thương hiệu")
	}
	return nil
}

// textOrNull maps a cleared text field to NULL.
func textOrNull(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
