package lineitem

import "strings"

// Violations errores de validación por campo. Vacío = línea válida.
type Violations map[string]string

// Empty indica si no hay errores.
func (v Violations) Empty() bool { return len(v) == 0 }

// Validate determina si una línea derivada puede enviarse. Cada regla que falla
// aporta un mensaje bajo su campo.
func Validate(item LineItem, kind UnitKind) Violations {
	v := Violations{}
	if strings.TrimSpace(item.ItemID) == "" {
		v["item_id"] = "Item is required"
	}
	if strings.TrimSpace(item.Item) == "" {
		v["item"] = "Item name is required"
	}
	if !(item.Quantity > 0) {
		v["quantity"] = "Quantity must be greater than 0 and should be a valid " + kind.NumberShape()
	}
	if !(item.Rate > 0) {
		v["rate"] = "Rate must be greater than 0"
	}
	// Se verifica aparte: cantidad o tarifa coaccionadas a 0 dejan el importe en 0.
	if !(item.Amount > 0) {
		v["amount"] = "Amount must be greater than 0"
	}
	return v
}
