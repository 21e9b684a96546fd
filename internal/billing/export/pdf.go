// Package export renders invoices into printable PDF documents.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/selfinvoice/selfinvoice/internal/billing/invoices"
	"github.com/selfinvoice/selfinvoice/web"
)

// HTMLRenderer converts an HTML document into PDF bytes. The Gotenberg
// client in package report satisfies this.
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// InvoicePDF builds the invoice document from the embedded template and hands
// it to the rendering engine.
type InvoicePDF struct {
	renderer  HTMLRenderer
	templates *template.Template
}

// NewInvoicePDF parses the invoice template. The printer handles vi-VN digit
// grouping for the currency columns.
func NewInvoicePDF(renderer HTMLRenderer) (*InvoicePDF, error) {
	printer := message.NewPrinter(language.Vietnamese)
	funcMap := template.FuncMap{
		"formatMoney": func(v float64) string {
			return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0))) + " đ"
		},
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02/01/2006")
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"customerName": func(s *string) string {
			if s == nil || *s == "" {
				return "Khách lẻ"
			}
			return *s
		},
		"add": func(a, b int) int {
			return a + b
		},
	}

	tpl, err := template.New("invoice_pdf.html").Funcs(funcMap).ParseFS(
		web.Templates, "templates/reports/invoice_pdf.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse invoice template: %w", err)
	}

	return &InvoicePDF{
		renderer:  renderer,
		templates: tpl,
	}, nil
}

// Render produces the PDF bytes for an invoice.
func (p *InvoicePDF) Render(ctx context.Context, invoice invoices.Invoice) ([]byte, error) {
	html, err := p.BuildHTML(invoice)
	if err != nil {
		return nil, err
	}
	return p.renderer.RenderHTML(ctx, html)
}

// BuildHTML executes the template. Separated from Render so the layout can be
// verified without a rendering engine.
func (p *InvoicePDF) BuildHTML(invoice invoices.Invoice) (string, error) {
	buf := &bytes.Buffer{}
	if err := p.templates.ExecuteTemplate(buf, "invoice_pdf.html", invoice); err != nil {
		return "", fmt.Errorf("render invoice template: %w", err)
	}
	return buf.String(), nil
}
