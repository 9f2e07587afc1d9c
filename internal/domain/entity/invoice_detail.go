package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle de una factura emitida (copia
// congelada de la línea derivada del borrador).
type InvoiceDetail struct {
	ID             string
	InvoiceID      string
	Position       int
	ProductID      string
	ItemName       string
	Unit           string
	HSNCode        string
	Quantity       decimal.Decimal
	Rate           decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxRate        decimal.Decimal
	Amount         decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}
