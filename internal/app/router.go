package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/selfinvoice/selfinvoice/internal/billing/invoices"
	"github.com/selfinvoice/selfinvoice/internal/catalog/brands"
	"github.com/selfinvoice/selfinvoice/internal/catalog/products"
	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	BrandHandler   *brands.Handler
	ProductHandler *products.Handler
	InvoiceHandler *invoices.Handler
}

// NewRouter constructs the chi.Router with the REST API mounted under /api.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			httpx.JSON(w, http.StatusOK, map[string]string{
				"status":    "OK",
				"message":   "Self Invoice API đang chạy",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		params.ProductHandler.MountRoutes(r)
		params.BrandHandler.MountRoutes(r)
		params.InvoiceHandler.MountRoutes(r)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusNotFound, httpx.ErrorBody{
			Error: "Không tìm thấy endpoint",
			Path:  r.URL.Path,
		})
	})

	return r
}
