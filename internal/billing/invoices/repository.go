package invoices

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selfinvoice/selfinvoice/internal/platform/db"
	"github.com/selfinvoice/selfinvoice/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id string) (Invoice, error)
	Create(ctx context.Context, invoice Invoice) (Invoice, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const selectInvoice = `SELECT id, invoice_number, customer_name, customer_phone, customer_email, customer_address,
	total_amount, tax_amount, discount_amount, final_amount, notes, status, created_at, updated_at
	FROM invoices`

const selectItems = `SELECT i.id, i.invoice_id, i.product_id, i.quantity, i.unit_price, i.total_price,
	p.id, p.name, p.description, p.price, p.cost, p.stock, p.sku, p.barcode, p.brand_id, p.created_at, p.updated_at
	FROM invoice_items i
	JOIN products p ON p.id = i.product_id`

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.db.Query(ctx, selectInvoice+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []Invoice
	index := map[string]int{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		index[inv.ID] = len(invoices)
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}

	itemRows, err := r.db.Query(ctx, selectItems+` WHERE i.invoice_id = ANY($1) ORDER BY i.invoice_id, i.line_no`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item, err := scanItem(itemRows)
		if err != nil {
			return nil, err
		}
		pos := index[item.InvoiceID]
		invoices[pos].Items = append(invoices[pos].Items, item)
	}
	return invoices, itemRows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Invoice, error) {
	row := r.db.QueryRow(ctx, selectInvoice+` WHERE id = $1`, id)
	inv, err := scanInvoiceRow(row)
	if err != nil {
		if db.IsNoRows(err) {
			return Invoice{}, httpx.NotFound("Không tìm thấy hóa đơn")
		}
		return Invoice{}, err
	}

	itemRows, err := r.db.Query(ctx, selectItems+` WHERE i.invoice_id = $1 ORDER BY i.line_no`, id)
	if err != nil {
		return Invoice{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item, err := scanItem(itemRows)
		if err != nil {
			return Invoice{}, err
		}
		inv.Items = append(inv.Items, item)
	}
	return inv, itemRows.Err()
}

// Create persists the invoice and all its items atomically. Line order is
// preserved through line_no.
func (r *repository) Create(ctx context.Context, invoice Invoice) (Invoice, error) {
	now := time.Now()
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO invoices
			(id, invoice_number, customer_name, customer_phone, customer_email, customer_address,
			 total_amount, tax_amount, discount_amount, final_amount, notes, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			invoice.ID, invoice.InvoiceNumber, invoice.CustomerName, invoice.CustomerPhone,
			invoice.CustomerEmail, invoice.CustomerAddress, invoice.TotalAmount, invoice.TaxAmount,
			invoice.DiscountAmount, invoice.FinalAmount, invoice.Notes, invoice.Status, now, now)
		if err != nil {
			if db.IsUniqueViolation(err, "invoices_invoice_number_key") {
				return ErrNumberTaken
			}
			return err
		}

		batch := &pgx.Batch{}
		for lineNo, item := range invoice.Items {
			batch.Queue(`INSERT INTO invoice_items (id, invoice_id, product_id, quantity, unit_price, total_price, line_no)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				item.ID, item.InvoiceID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice, lineNo)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return Invoice{}, err
	}
	return r.Get(ctx, invoice.ID)
}

type scannable interface {
	Scan(dest ...any) error
}

func scanInvoice(rows pgx.Rows) (Invoice, error) {
	return scanInvoiceRow(rows)
}

func scanInvoiceRow(row scannable) (Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerPhone,
		&inv.CustomerEmail, &inv.CustomerAddress, &inv.TotalAmount, &inv.TaxAmount,
		&inv.DiscountAmount, &inv.FinalAmount, &inv.Notes, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func scanItem(rows pgx.Rows) (Item, error) {
	var item Item
	err := rows.Scan(&item.ID, &item.InvoiceID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice,
		&item.Product.ID, &item.Product.Name, &item.Product.Description, &item.Product.Price, &item.Product.Cost,
		&item.Product.Stock, &item.Product.SKU, &item.Product.Barcode, &item.Product.BrandID,
		&item.Product.CreatedAt, &item.Product.UpdatedAt)
	return item, err
}
