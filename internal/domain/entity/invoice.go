package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la factura.
const (
	InvoiceStatusIssued    = "ISSUED"    // emitida desde un borrador válido
	InvoiceStatusCancelled = "CANCELLED" // anulada
)

// Invoice representa la cabecera de una factura emitida.
type Invoice struct {
	ID            string
	CompanyID     string
	CustomerID    string // opcional
	PartyName     string
	Prefix        string
	Number        string
	Date          time.Time
	Subtotal      decimal.Decimal // Σ importes
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	GrandTotal    decimal.Decimal
	Status        string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
