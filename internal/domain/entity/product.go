package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product ítem de catálogo de la empresa. La unidad se resuelve desde la tabla units;
// UnitDecimalPlaces define si la cantidad admite fracciones.
type Product struct {
	ID                string
	CompanyID         string
	SKU               string // código único por empresa
	Name              string
	Description       string
	Price             decimal.Decimal // precio de venta sugerido
	TaxRate           decimal.Decimal // porcentaje por defecto (0, 5, 12, 18, 28)
	HSNCode           string          // clasificación tributaria
	UnitID            string
	Unit              string // símbolo de la unidad (pcs, kg, ltr)
	UnitDecimalPlaces int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
