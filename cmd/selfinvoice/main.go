package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/selfinvoice/selfinvoice/internal/app"
	"github.com/selfinvoice/selfinvoice/internal/billing/export"
	"github.com/selfinvoice/selfinvoice/internal/billing/invoices"
	"github.com/selfinvoice/selfinvoice/internal/catalog/brands"
	"github.com/selfinvoice/selfinvoice/internal/catalog/products"
	"github.com/selfinvoice/selfinvoice/internal/platform/cache"
	"github.com/selfinvoice/selfinvoice/internal/platform/db"
	"github.com/selfinvoice/selfinvoice/jobs"
	"github.com/selfinvoice/selfinvoice/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, pdf cache and background jobs disabled", slog.Any("error", err))
		redisClient = nil
	}
	defer func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}
	}()

	gotenberg := report.NewClient(cfg.GotenbergURL)
	if err := gotenberg.Ping(ctx); err != nil {
		logger.Warn("gotenberg ping", slog.Any("error", err))
	}

	invoicePDF, err := export.NewInvoicePDF(gotenberg)
	if err != nil {
		logger.Error("parse invoice template", slog.Any("error", err))
		os.Exit(1)
	}

	var enqueuer invoices.TaskEnqueuer
	if redisClient != nil {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := asynqClient.Close(); err != nil {
				logger.Warn("asynq client close", slog.Any("error", err))
			}
		}()
		enqueuer = jobs.NewEnqueuer(asynqClient)
	}

	brandRepo := brands.NewRepository(pool)
	brandService := brands.NewService(brandRepo)
	brandHandler := brands.NewHandler(logger, brandService)

	productRepo := products.NewRepository(pool)
	productService := products.NewService(productRepo)
	productHandler := products.NewHandler(logger, productService)

	invoiceRepo := invoices.NewRepository(pool)
	invoiceService := invoices.NewService(invoiceRepo, productRepo, logger, invoices.ServiceConfig{
		Renderer:      invoicePDF,
		PDFCache:      invoices.NewPDFCache(redisClient, cfg.PDFCacheTTL),
		Enqueuer:      enqueuer,
		RenderTimeout: cfg.PDFRenderTimeout,
	})
	invoiceHandler := invoices.NewHandler(logger, invoiceService)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		BrandHandler:   brandHandler,
		ProductHandler: productHandler,
		InvoiceHandler: invoiceHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
