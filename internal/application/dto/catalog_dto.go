package dto

import "github.com/shopspring/decimal"

// CatalogItemResponse ítem de catálogo tal como lo consume el editor de líneas.
type CatalogItemResponse struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	UnitKind string          `json:"unit_kind"`
	Price    decimal.Decimal `json:"price"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	HSNCode  string          `json:"hsn_code,omitempty"`
}

// CatalogListResponse catálogo completo de la empresa.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Total int                   `json:"total"`
}
