// Seeds the catalog with sample brands and products for local development.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/selfinvoice/selfinvoice/internal/app"
	"github.com/selfinvoice/selfinvoice/internal/platform/db"
)

type seedProduct struct {
	name        string
	description string
	price       float64
	cost        float64
	stock       int
	sku         string
	brand       string
}

func main() {
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	brands := map[string]string{
		"Apple":   "Thương hiệu công nghệ hàng đầu thế giới",
		"Samsung": "Thương hiệu điện tử Hàn Quốc",
		"Xiaomi":  "Thương hiệu công nghệ Trung Quốc",
	}

	brandIDs := map[string]string{}
	for name, description := range brands {
		id := uuid.NewString()
		_, err := pool.Exec(ctx, `INSERT INTO brands (id, name, description) VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`, id, name, description)
		if err != nil {
			logger.Error("seed brand", slog.Any("error", err), slog.String("name", name))
			os.Exit(1)
		}
		if err := pool.QueryRow(ctx, `SELECT id FROM brands WHERE name = $1`, name).Scan(&id); err != nil {
			logger.Error("lookup brand", slog.Any("error", err), slog.String("name", name))
			os.Exit(1)
		}
		brandIDs[name] = id
	}

	products := []seedProduct{
		{"iPhone 15 Pro", "Điện thoại thông minh cao cấp từ Apple", 29990000, 26000000, 25, "IP15P-128", "Apple"},
		{"iPhone 15", "Điện thoại thông minh từ Apple", 22990000, 20000000, 40, "IP15-128", "Apple"},
		{"Galaxy S24 Ultra", "Flagship Android từ Samsung", 27990000, 24000000, 30, "S24U-256", "Samsung"},
		{"Galaxy A55", "Điện thoại tầm trung từ Samsung", 9990000, 8200000, 60, "A55-128", "Samsung"},
		{"Xiaomi 14", "Flagship nhỏ gọn từ Xiaomi", 19990000, 17000000, 35, "MI14-256", "Xiaomi"},
		{"Redmi Note 13", "Điện thoại giá rẻ từ Xiaomi", 4990000, 4100000, 80, "RN13-128", "Xiaomi"},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `INSERT INTO products (id, name, description, price, cost, stock, sku, brand_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (sku) DO NOTHING`,
			uuid.NewString(), p.name, p.description, p.price, p.cost, p.stock, p.sku, brandIDs[p.brand])
		if err != nil {
			logger.Error("seed product", slog.Any("error", err), slog.String("name", p.name))
			os.Exit(1)
		}
	}

	logger.Info("seed complete", slog.Int("brands", len(brands)), slog.Int("products", len(products)))
}
