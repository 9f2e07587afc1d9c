package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDraftRequest body para POST /api/drafts.
type CreateDraftRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
	PartyName  string `json:"party_name,omitempty"`
}

// SelectItemRequest body para PUT /api/drafts/:id/lines/:lineId/item.
type SelectItemRequest struct {
	ItemID string `json:"item_id"`
}

// EditLineRequest body para PATCH /api/drafts/:id/lines/:lineId.
// Value es lo que escribió el usuario (texto o número); nunca se rechaza por formato.
type EditLineRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// SubmitDraftRequest body para POST /api/drafts/:id/submit.
type SubmitDraftRequest struct {
	Prefix string `json:"prefix,omitempty"` // por defecto INV
	Number string `json:"number,omitempty"` // opcional; si va vacío se genera
	Date   string `json:"date,omitempty"`   // YYYY-MM-DD; por defecto hoy
}

// LineItemResponse línea derivada.
type LineItemResponse struct {
	ItemID          string          `json:"item_id"`
	Item            string          `json:"item"`
	Unit            string          `json:"unit"`
	UnitKind        string          `json:"unit_kind"`
	HSNCode         string          `json:"hsn_code,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	QuantityDisplay string          `json:"quantity_display"` // "3" o "2.00" según la unidad
	Rate            decimal.Decimal `json:"rate"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	Amount          decimal.Decimal `json:"amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// DraftLineResponse línea del borrador con sus errores de validación actuales.
type DraftLineResponse struct {
	ID         string            `json:"id"`
	Item       LineItemResponse  `json:"item"`
	Violations map[string]string `json:"violations,omitempty"`
}

// DraftResponse borrador completo con totales provisionales.
type DraftResponse struct {
	ID            string              `json:"id"`
	CompanyID     string              `json:"company_id"`
	CustomerID    string              `json:"customer_id,omitempty"`
	PartyName     string              `json:"party_name,omitempty"`
	TaxEnabled    bool                `json:"tax_enabled"`
	Lines         []DraftLineResponse `json:"lines"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	DiscountTotal decimal.Decimal     `json:"discount_total"`
	TaxTotal      decimal.Decimal     `json:"tax_total"`
	GrandTotal    decimal.Decimal     `json:"grand_total"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string                  `json:"id"`
	CompanyID     string                  `json:"company_id"`
	CustomerID    string                  `json:"customer_id,omitempty"`
	PartyName     string                  `json:"party_name,omitempty"`
	Prefix        string                  `json:"prefix"`
	Number        string                  `json:"number"`
	Date          string                  `json:"date"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	DiscountTotal decimal.Decimal         `json:"discount_total"`
	TaxTotal      decimal.Decimal         `json:"tax_total"`
	GrandTotal    decimal.Decimal         `json:"grand_total"`
	Status        string                  `json:"status"`
	Details       []InvoiceDetailResponse `json:"details"`
}

// InvoiceDetailResponse línea de detalle en la respuesta.
type InvoiceDetailResponse struct {
	ID             string          `json:"id"`
	Position       int             `json:"position"`
	ProductID      string          `json:"product_id"`
	ItemName       string          `json:"item"`
	Unit           string          `json:"unit"`
	HSNCode        string          `json:"hsn_code,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Amount         decimal.Decimal `json:"amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}
