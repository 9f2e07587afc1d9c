package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, company_id, customer_id, party_name, prefix, number, date,
			subtotal, discount_total, tax_total, grand_total, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CompanyID, nullIfEmpty(invoice.CustomerID), invoice.PartyName,
		invoice.Prefix, invoice.Number, invoice.Date,
		invoice.Subtotal, invoice.DiscountTotal, invoice.TaxTotal, invoice.GrandTotal,
		invoice.Status, nullIfEmpty(invoice.CreatedBy), invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle.
func (r *InvoiceRepo) CreateDetail(ctx context.Context, detail *entity.InvoiceDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_details (id, invoice_id, position, product_id, item_name, unit, hsn_code,
			quantity, rate, discount_amount, tax_rate, amount, tax_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		detail.ID, detail.InvoiceID, detail.Position, detail.ProductID, detail.ItemName,
		detail.Unit, nullIfEmpty(detail.HSNCode),
		detail.Quantity, detail.Rate, detail.DiscountAmount, detail.TaxRate,
		detail.Amount, detail.TaxAmount, detail.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("insert invoice detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura. (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, COALESCE(customer_id::text, ''), party_name, prefix, number, date,
			subtotal, discount_total, tax_total, grand_total, status, COALESCE(created_by::text, ''),
			created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.PartyName, &inv.Prefix, &inv.Number, &inv.Date,
		&inv.Subtotal, &inv.DiscountTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.Status, &inv.CreatedBy,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetDetailsByInvoiceID obtiene las líneas de una factura en el orden en que se capturaron.
func (r *InvoiceRepo) GetDetailsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceDetail, error) {
	query := `
		SELECT id, invoice_id, position, product_id, item_name, unit, COALESCE(hsn_code, ''),
			quantity, rate, discount_amount, tax_rate, amount, tax_amount, total_amount
		FROM invoice_details WHERE invoice_id = $1
		ORDER BY position`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice details: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(
			&d.ID, &d.InvoiceID, &d.Position, &d.ProductID, &d.ItemName, &d.Unit, &d.HSNCode,
			&d.Quantity, &d.Rate, &d.DiscountAmount, &d.TaxRate, &d.Amount, &d.TaxAmount, &d.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
