package entity

import "time"

// Customer representa un cliente de la empresa (contraparte de la factura).
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
