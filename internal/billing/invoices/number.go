package invoices

import (
	"strconv"
	"sync"
	"time"
)

// numberPrefix matches the historical numbering scheme; invoices already in
// the wild carry these numbers.
const numberPrefix = "HD-"

// NumberGenerator produces timestamp-based invoice numbers. The token is
// strictly monotonic within a process even when two invoices are created in
// the same millisecond; collisions across processes are caught by the unique
// constraint on invoice_number and retried by the service.
type NumberGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now}
}

// Next returns a fresh invoice number, e.g. "HD-1719923077123".
func (g *NumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	token := g.now().UnixMilli()
	if token <= g.last {
		token = g.last + 1
	}
	g.last = token
	return numberPrefix + strconv.FormatInt(token, 10)
}
