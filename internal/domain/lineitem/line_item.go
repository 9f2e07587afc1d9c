package lineitem

// LineItem una fila de factura: cantidad de un ítem de catálogo a una tarifa dada.
// Amount, TaxAmount y TotalAmount son derivados; solo el Calculator los escribe.
type LineItem struct {
	ItemID         string   `json:"item_id"`
	Item           string   `json:"item"`
	Unit           string   `json:"unit"`
	HSNCode        string   `json:"hsn_code"`
	UnitKind       UnitKind `json:"unit_kind"`
	Quantity       float64  `json:"quantity"`
	Rate           float64  `json:"rate"`
	DiscountAmount float64  `json:"discount_amount"`
	TaxRate        float64  `json:"tax_rate"` // porcentaje

	Amount      float64 `json:"amount"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount"`
}

// CatalogEntry datos del ítem de catálogo que consume el cálculo (nombre, unidad e impuestos por defecto).
type CatalogEntry struct {
	ID       string
	Name     string
	Unit     string
	UnitKind UnitKind
	TaxRate  float64
	HSNCode  string
}

// Field campo editable de una línea.
type Field int

const (
	FieldUnknown Field = iota
	FieldQuantity
	FieldRate
	FieldDiscountAmount
	FieldTaxRate
	FieldHSNCode
	FieldItemName
)

var fieldNames = map[Field]string{
	FieldQuantity:       "quantity",
	FieldRate:           "rate",
	FieldDiscountAmount: "discount_amount",
	FieldTaxRate:        "tax_rate",
	FieldHSNCode:        "hsn_code",
	FieldItemName:       "item",
}

// ParseField interpreta el nombre de campo recibido por la API.
func ParseField(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return f, true
		}
	}
	return FieldUnknown, false
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// Recomputes indica si editar el campo obliga a recalcular los derivados.
func (f Field) Recomputes() bool {
	switch f {
	case FieldQuantity, FieldRate, FieldDiscountAmount, FieldTaxRate:
		return true
	}
	return false
}
