package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/selfinvoice/selfinvoice/internal/app"
	"github.com/selfinvoice/selfinvoice/internal/billing/export"
	"github.com/selfinvoice/selfinvoice/internal/billing/invoices"
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
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	invoicePDF, err := export.NewInvoicePDF(report.NewClient(cfg.GotenbergURL))
	if err != nil {
		logger.Error("parse invoice template", slog.Any("error", err))
		os.Exit(1)
	}

	invoiceRepo := invoices.NewRepository(pool)
	productRepo := products.NewRepository(pool)
	invoiceService := invoices.NewService(invoiceRepo, productRepo, logger, invoices.ServiceConfig{
		Renderer:      invoicePDF,
		PDFCache:      invoices.NewPDFCache(redisClient, cfg.PDFCacheTTL),
		RenderTimeout: cfg.PDFRenderTimeout,
	})

	worker := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypePDFPrewarm, Handler: jobs.NewPDFPrewarmHandler(invoiceService, logger)},
		},
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down worker")
		worker.Shutdown()
	}()

	logger.Info("starting worker")
	if err := worker.Run(); err != nil {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
