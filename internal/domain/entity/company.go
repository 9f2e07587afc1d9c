package entity

import "time"

// Company representa una organización/tenant del sistema.
// TaxEnabled indica si la empresa factura con impuestos (HSN y tasa por línea).
type Company struct {
	ID         string
	Name       string
	GSTIN      string // identificación tributaria (vacío si no aplica)
	TaxEnabled bool
	Status     string // active, suspended, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
