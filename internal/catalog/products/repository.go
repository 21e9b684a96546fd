package products

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selfinvoice/selfinvoice/internal/catalog/brands"
	"github.com/selfinvoice/selfinvoice/internal/platform/db"
	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const selectWithBrand = `SELECT p.id, p.name, p.description, p.price, p.cost, p.stock, p.sku, p.barcode, p.brand_id, p.created_at, p.updated_at,
	b.id, b.name, b.description, b.created_at, b.updated_at
	FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id`

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, selectWithBrand+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Product, error) {
	rows, err := r.db.Query(ctx, selectWithBrand+` WHERE p.id = $1`, id)
	if err != nil {
		return Product{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Product{}, err
		}
		return Product{}, httpx.NotFound("Không tìm thấy sản phẩm")
	}
	return scanProduct(rows)
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	query := `INSERT INTO products (id, name, description, price, cost, stock, sku, barcode, brand_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now()
	_, err := r.db.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Cost,
		product.Stock, product.SKU, product.Barcode, product.BrandID, now, now)
	if err != nil {
		return Product{}, mapWriteError(err)
	}
	return r.Get(ctx, product.ID)
}

func (r *repository) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	query := `UPDATE products SET updated_at = $1`
	args := []interface{}{time.Now()}

	set := func(column string, value interface{}) {
		args = append(args, value)
		query += `, ` + column + ` = $` + strconv.Itoa(len(args))
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Description != nil {
		set("description", textOrNull(*req.Description))
	}
	if req.Price != nil {
		set("price", *req.Price)
	}
	if req.Cost != nil {
		set("cost", *req.Cost)
	}
	if req.Stock != nil {
		set("stock", *req.Stock)
	}
	if req.SKU != nil {
		set("sku", textOrNull(*req.SKU))
	}
	if req.Barcode != nil {
		set("barcode", textOrNull(*req.Barcode))
	}
	if req.BrandID != nil {
		set("brand_id", textOrNull(*req.BrandID))
	}

	args = append(args, id)
	query += ` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return Product{}, mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return Product{}, httpx.NotFound("Không tìm thấy sản phẩm")
	}
	return r.Get(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return httpx.Conflict("Sản phẩm đã được sử dụng trong hóa đơn")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.NotFound("Không tìm thấy sản phẩm")
	}
	return nil
}

func scanProduct(rows pgx.Rows) (Product, error) {
	var p Product
	var brandID, brandName, brandDescription *string
	var brandCreatedAt, brandUpdatedAt *time.Time
	err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Stock, &p.SKU, &p.Barcode, &p.BrandID, &p.CreatedAt, &p.UpdatedAt,
		&brandID, &brandName, &brandDescription, &brandCreatedAt, &brandUpdatedAt)
	if err != nil {
		return Product{}, err
	}
	if brandID != nil {
		p.Brand = &brands.Brand{
			ID:          *brandID,
			Name:        *brandName,
			Description: brandDescription,
			CreatedAt:   *brandCreatedAt,
			UpdatedAt:   *brandUpdatedAt,
		}
	}
	return p, nil
}

func mapWriteError(err error) error {
	if db.IsUniqueViolation(err, "") {
		return httpx.Duplicate("Mã SKU đã tồn tại")
	}
	if db.IsForeignKeyViolation(err) {
		return httpx.Validation("Thương hiệu không tồn tại")
	}
	return err
}

func textOrNull(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
