package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const pdfKeyPrefix = "invoice:pdf:"

// PDFCache stores rendered invoice PDFs in Redis. Invoices are immutable
// after creation, so a cached document never goes stale; the TTL only bounds
// memory. A nil cache or nil client behaves as a permanent miss.
type PDFCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPDFCache(client *redis.Client, ttl time.Duration) *PDFCache {
	return &PDFCache{client: client, ttl: ttl}
}

// Get returns the cached PDF bytes, or nil on a miss.
func (c *PDFCache) Get(ctx context.Context, invoiceID string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	payload, err := c.client.Get(ctx, pdfKeyPrefix+invoiceID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Set stores the PDF bytes for an invoice.
func (c *PDFCache) Set(ctx context.Context, invoiceID string, pdf []byte) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, pdfKeyPrefix+invoiceID, pdf, c.ttl).Err()
}
