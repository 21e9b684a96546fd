package invoices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/selfinvoice/selfinvoice/internal/catalog/products"
	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

// ErrNumberTaken is returned by the repository when the generated invoice
// number collides with an existing one.
var ErrNumberTaken = errors.New("invoice number taken")

// numberRetries bounds the regeneration loop for colliding invoice numbers.
const numberRetries = 3

// ProductResolver resolves line-item product references. The catalog products
// repository satisfies this.
type ProductResolver interface {
	Get(ctx context.Context, id string) (products.Product, error)
}

// Renderer turns a persisted invoice into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, inv Invoice) ([]byte, error)
}

// TaskEnqueuer schedules background work after invoice creation.
type TaskEnqueuer interface {
	EnqueuePDFPrewarm(ctx context.Context, invoiceID string) error
}

type Service struct {
	repo          Repository
	productRepo   ProductResolver
	numbers       *NumberGenerator
	renderer      Renderer
	pdfCache      *PDFCache
	enqueuer      TaskEnqueuer
	logger        *slog.Logger
	renderTimeout time.Duration

	renderGroup singleflight.Group
}

// ServiceConfig carries the optional collaborators; nil renderer disables PDF
// export, nil cache and enqueuer degrade gracefully.
type ServiceConfig struct {
	Renderer      Renderer
	PDFCache      *PDFCache
	Enqueuer      TaskEnqueuer
	RenderTimeout time.Duration
}

func NewService(repo Repository, productRepo ProductResolver, logger *slog.Logger, cfg ServiceConfig) *Service {
	timeout := cfg.RenderTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		repo:          repo,
		productRepo:   productRepo,
		numbers:       NewNumberGenerator(),
		renderer:      cfg.Renderer,
		pdfCache:      cfg.PDFCache,
		enqueuer:      cfg.Enqueuer,
		logger:        logger,
		renderTimeout: timeout,
	}
}

// List returns all invoices newest-first with items and products populated.
func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Invoice, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the request, snapshots prices and totals, and persists the
// invoice with all its items in a single transaction. Nothing is committed
// when any line references an unknown product.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	if len(req.Items) == 0 {
		return Invoice{}, httpx.Validation("Hóa đơn phải có ít nhất một sản phẩm")
	}

	invoiceID := uuid.NewString()
	var totalAmount float64
	items := make([]Item, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return Invoice{}, httpx.Validation("Số lượng phải lớn hơn 0")
		}
		if line.UnitPrice < 0 {
			return Invoice{}, httpx.Validation("Đơn giá không được âm")
		}

		// The unit price comes from the request, not the catalog, so the
		// caller can override per line. The product lookup only guards
		// referential integrity.
		if _, err := s.productRepo.Get(ctx, line.ProductID); err != nil {
			if errors.Is(err, httpx.ErrNotFound) {
				return Invoice{}, httpx.NotFound(fmt.Sprintf("Không tìm thấy sản phẩm với ID: %s", line.ProductID))
			}
			return Invoice{}, fmt.Errorf("resolve product %s: %w", line.ProductID, err)
		}

		itemTotal := float64(line.Quantity) * line.UnitPrice
		totalAmount += itemTotal
		items = append(items, Item{
			ID:         uuid.NewString(),
			InvoiceID:  invoiceID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: itemTotal,
		})
	}

	invoice := Invoice{
		ID:              invoiceID,
		InvoiceNumber:   s.numbers.Next(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		TotalAmount:     totalAmount,
		TaxAmount:       req.TaxAmount,
		DiscountAmount:  req.DiscountAmount,
		FinalAmount:     totalAmount + req.TaxAmount - req.DiscountAmount,
		Notes:           req.Notes,
		Status:          StatusDraft,
		Items:           items,
	}

	var created Invoice
	var err error
	for attempt := 0; attempt < numberRetries; attempt++ {
		created, err = s.repo.Create(ctx, invoice)
		if !errors.Is(err, ErrNumberTaken) {
			break
		}
		invoice.InvoiceNumber = s.numbers.Next()
	}
	if err != nil {
		return Invoice{}, err
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueuePDFPrewarm(ctx, created.ID); err != nil {
			s.logger.Warn("enqueue pdf prewarm failed", "error", err, "invoice_id", created.ID)
		}
	}
	return created, nil
}

// RenderPDF returns the PDF bytes for an invoice plus a download filename.
// Rendered documents are cached; concurrent requests for the same invoice
// share one render.
func (s *Service) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("hoa-don-%s.pdf", invoice.InvoiceNumber)

	if cached, err := s.pdfCache.Get(ctx, id); err != nil {
		s.logger.Warn("pdf cache read failed", "error", err, "invoice_id", id)
	} else if cached != nil {
		return cached, filename, nil
	}

	if s.renderer == nil {
		return nil, "", errors.New("invoices: renderer not configured")
	}

	resultChan := s.renderGroup.DoChan(id, func() (interface{}, error) {
		renderCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.renderTimeout)
		defer cancel()

		pdf, err := s.renderer.Render(renderCtx, invoice)
		if err != nil {
			return nil, fmt.Errorf("render invoice %s: %w", invoice.InvoiceNumber, err)
		}
		if err := s.pdfCache.Set(renderCtx, id, pdf); err != nil {
			s.logger.Warn("pdf cache write failed", "error", err, "invoice_id", id)
		}
		return pdf, nil
	})

	select {
	case <-ctx.Done():
		return nil, "", ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, "", res.Err
		}
		return res.Val.([]byte), filename, nil
	}
}
