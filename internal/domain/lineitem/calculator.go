package lineitem

import "fmt"

// Calculator deriva importe, impuesto y total de una línea (servicio de dominio, sin I/O).
// TaxEnabled refleja si la empresa factura con impuestos.
type Calculator struct {
	TaxEnabled bool
}

// NewCalculator construye el calculador con la configuración de impuestos de la empresa.
func NewCalculator(taxEnabled bool) Calculator {
	return Calculator{TaxEnabled: taxEnabled}
}

// DeriveOnChange aplica la edición de un campo sobre una copia de current y
// devuelve la línea consistente. Entradas inválidas degradan a 0; nunca falla.
func (c Calculator) DeriveOnChange(current LineItem, field Field, raw any, kind UnitKind) LineItem {
	item := current
	if kind != "" {
		item.UnitKind = kind
	}

	switch field {
	case FieldQuantity:
		item.Quantity = NormalizeQuantity(raw, item.UnitKind)
	case FieldRate:
		item.Rate = ParseNumber(raw)
	case FieldDiscountAmount:
		item.DiscountAmount = ParseNumber(raw)
	case FieldTaxRate:
		item.TaxRate = ParseNumber(raw)
	case FieldHSNCode:
		item.HSNCode = text(raw)
	case FieldItemName:
		item.Item = text(raw)
	}

	if field.Recomputes() {
		Recompute(&item)
	}
	return item
}

// SelectItem cambia el ítem de catálogo de la línea. Reinicia la unidad y, con
// impuestos activos, HSN y tasa por defecto del ítem. Cantidad, tarifa y descuento no cambian.
func (c Calculator) SelectItem(current LineItem, entry CatalogEntry) LineItem {
	item := current
	item.ItemID = entry.ID
	item.Item = entry.Name
	item.Unit = entry.Unit
	item.UnitKind = entry.UnitKind
	if item.UnitKind == "" {
		item.UnitKind = UnitInteger
	}
	if c.TaxEnabled {
		item.HSNCode = entry.HSNCode
		item.TaxRate = entry.TaxRate
	}
	Recompute(&item)
	return item
}

// Recompute recalcula los derivados en orden fijo: importe, impuesto, total.
// El descuento reduce la base gravable y se resta otra vez del total.
func Recompute(item *LineItem) {
	gross := item.Quantity * item.Rate
	item.Amount = Round2(gross)
	item.TaxAmount = Round2(((gross - item.DiscountAmount) * item.TaxRate) / 100)
	item.TotalAmount = item.Amount + item.TaxAmount - item.DiscountAmount
}

func text(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
