package export

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfinvoice/selfinvoice/internal/billing/invoices"
	"github.com/selfinvoice/selfinvoice/internal/catalog/products"
)

type captureRenderer struct {
	html string
	pdf  []byte
	err  error
}

func (c *captureRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	c.html = html
	if c.err != nil {
		return nil, c.err
	}
	return c.pdf, nil
}

func strptr(s string) *string { return &s }

func sampleInvoice() invoices.Invoice {
	return invoices.Invoice{
		ID:              "inv-1",
		InvoiceNumber:   "HD-1700000000000",
		CustomerName:    strptr("Nguyễn Văn A"),
		CustomerPhone:   strptr("0901234567"),
		CustomerEmail:   strptr("a@example.com"),
		CustomerAddress: strptr("123 Lê Lợi, Quận 1"),
		TotalAmount:     29990000,
		TaxAmount:       2999000,
		DiscountAmount:  1000000,
		FinalAmount:     31989000,
		Notes:           strptr("Giao hàng giờ hành chính"),
		Status:          invoices.StatusDraft,
		CreatedAt:       time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		Items: []invoices.Item{
			{
				ID:         "item-1",
				InvoiceID:  "inv-1",
				ProductID:  "p-1",
				Quantity:   1,
				UnitPrice:  29990000,
				TotalPrice: 29990000,
				Product:    products.Product{ID: "p-1", Name: "iPhone 15 Pro", Price: 29990000},
			},
		},
	}
}

func TestBuildHTMLFullInvoice(t *testing.T) {
	pdf, err := NewInvoicePDF(nil)
	require.NoError(t, err)

	html, err := pdf.BuildHTML(sampleInvoice())
	require.NoError(t, err)

	assert.Contains(t, html, "HÓA ĐƠN BÁN HÀNG")
	assert.Contains(t, html, "Số: HD-1700000000000")
	assert.Contains(t, html, "Ngày: 15/03/2024")
	assert.Contains(t, html, "Nguyễn Văn A")
	assert.Contains(t, html, "0901234567")
	assert.Contains(t, html, "a@example.com")
	assert.Contains(t, html, "123 Lê Lợi, Quận 1")
	assert.Contains(t, html, "iPhone 15 Pro")
	assert.Contains(t, html, "29.990.000 đ")
	assert.Contains(t, html, "-1.000.000 đ")
	assert.Contains(t, html, "Thuế:")
	assert.Contains(t, html, "2.999.000 đ")
	assert.Contains(t, html, "31.989.000 đ")
	assert.Contains(t, html, "Giao hàng giờ hành chính")
	assert.Contains(t, html, "Cảm ơn quý khách đã mua hàng!")
}

func TestBuildHTMLWalkInCustomer(t *testing.T) {
	pdf, err := NewInvoicePDF(nil)
	require.NoError(t, err)

	inv := sampleInvoice()
	inv.CustomerName = nil
	inv.CustomerPhone = nil
	inv.CustomerEmail = nil
	inv.CustomerAddress = nil
	inv.Notes = nil

	html, err := pdf.BuildHTML(inv)
	require.NoError(t, err)

	assert.Contains(t, html, "Khách lẻ")
	assert.NotContains(t, html, "Điện thoại:")
	assert.NotContains(t, html, "Email:")
	assert.NotContains(t, html, "Địa chỉ:")
	assert.NotContains(t, html, "Ghi chú:")
}

func TestBuildHTMLEmptyCustomerNameFallsBack(t *testing.T) {
	pdf, err := NewInvoicePDF(nil)
	require.NoError(t, err)

	inv := sampleInvoice()
	inv.CustomerName = strptr("")

	html, err := pdf.BuildHTML(inv)
	require.NoError(t, err)

	assert.Contains(t, html, "Khách lẻ")
}

func TestBuildHTMLOmitsZeroDiscountAndTax(t *testing.T) {
	pdf, err := NewInvoicePDF(nil)
	require.NoError(t, err)

	inv := sampleInvoice()
	inv.TaxAmount = 0
	inv.DiscountAmount = 0
	inv.FinalAmount = inv.TotalAmount

	html, err := pdf.BuildHTML(inv)
	require.NoError(t, err)

	assert.NotContains(t, html, "Giảm giá:")
	assert.NotContains(t, html, "Thuế:")
	assert.Contains(t, html, "Tổng thanh toán:")
}

func TestBuildHTMLNumbersLines(t *testing.T) {
	pdf, err := NewInvoicePDF(nil)
	require.NoError(t, err)

	inv := sampleInvoice()
	inv.Items = append(inv.Items, invoices.Item{
		ID:         "item-2",
		InvoiceID:  "inv-1",
		ProductID:  "p-2",
		Quantity:   2,
		UnitPrice:  5000000,
		TotalPrice: 10000000,
		Product:    products.Product{ID: "p-2", Name: "Ốp lưng", Price: 5000000},
	})

	html, err := pdf.BuildHTML(inv)
	require.NoError(t, err)

	first := strings.Index(html, `<td class="number">1</td>`)
	second := strings.Index(html, `<td class="number">2</td>`)
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestRenderPassesDocumentToEngine(t *testing.T) {
	renderer := &captureRenderer{pdf: []byte("%PDF-1.7")}
	pdf, err := NewInvoicePDF(renderer)
	require.NoError(t, err)

	out, err := pdf.Render(context.Background(), sampleInvoice())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7"), out)
	assert.Contains(t, renderer.html, "HD-1700000000000")
}
