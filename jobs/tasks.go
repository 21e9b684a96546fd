// Package jobs defines background tasks and the Asynq worker that runs them.
package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/selfinvoice/selfinvoice/internal/billing/invoices"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypePDFPrewarm renders an invoice PDF ahead of the first download.
	TaskTypePDFPrewarm = "invoice:pdf_prewarm"
)

// PDFPrewarmPayload identifies the invoice to render.
type PDFPrewarmPayload struct {
	InvoiceID string `json:"invoice_id"`
}

// NewPDFPrewarmTask constructs an Asynq task.
func NewPDFPrewarmTask(payload PDFPrewarmPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePDFPrewarm, data, asynq.Queue(QueueDefault)), nil
}

// Enqueuer submits tasks through an Asynq client. It satisfies the invoice
// service's TaskEnqueuer.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueuePDFPrewarm schedules a PDF pre-render for the given invoice.
func (e *Enqueuer) EnqueuePDFPrewarm(ctx context.Context, invoiceID string) error {
	task, err := NewPDFPrewarmTask(PDFPrewarmPayload{InvoiceID: invoiceID})
	if err != nil {
		return err
	}
	_, err = e.client.EnqueueContext(ctx, task)
	return err
}

// NewPDFPrewarmHandler processes TaskTypePDFPrewarm tasks. Rendering through
// the service populates the shared PDF cache, so the first user download is a
// cache hit.
func NewPDFPrewarmHandler(svc *invoices.Service, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload PDFPrewarmPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		if _, _, err := svc.RenderPDF(ctx, payload.InvoiceID); err != nil {
			logger.Warn("pdf prewarm failed", "error", err, "invoice_id", payload.InvoiceID)
			return err
		}
		logger.Info("pdf prewarmed", "invoice_id", payload.InvoiceID)
		return nil
	}
}
