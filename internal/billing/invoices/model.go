package invoices

import (
	"time"

	"github.com/selfinvoice/selfinvoice/internal/catalog/products"
)

// Status enumerates invoice statuses.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Invoice is an immutable sales record. The monetary fields are snapshots
// computed once at creation time; they never track later product price
// changes.
type Invoice struct {
	ID              string    `json:"id"`
	InvoiceNumber   string    `json:"invoiceNumber"`
	CustomerName    *string   `json:"customerName,omitempty"`
	CustomerPhone   *string   `json:"customerPhone,omitempty"`
	CustomerEmail   *string   `json:"customerEmail,omitempty"`
	CustomerAddress *string   `json:"customerAddress,omitempty"`
	TotalAmount     float64   `json:"totalAmount"`
	TaxAmount       float64   `json:"taxAmount"`
	DiscountAmount  float64   `json:"discountAmount"`
	FinalAmount     float64   `json:"finalAmount"`
	Notes           *string   `json:"notes,omitempty"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Items           []Item    `json:"items"`
}

// Item is one priced line within an invoice. Quantity and unit price are
// frozen at creation time, independent of the referenced product's current
// price.
type Item struct {
	ID         string           `json:"id"`
	InvoiceID  string           `json:"invoiceId"`
	ProductID  string           `json:"productId"`
	Quantity   int              `json:"quantity"`
	UnitPrice  float64          `json:"unitPrice"`
	TotalPrice float64          `json:"totalPrice"`
	Product    products.Product `json:"product"`
}
