package lineitem

import "strings"

// UnitKind política de redondeo de cantidad según la unidad del ítem de catálogo.
type UnitKind string

const (
	UnitInteger UnitKind = "integer" // unidades enteras (piezas, cajas)
	UnitDecimal UnitKind = "decimal" // unidades fraccionarias (kg, litros)
)

// ParseUnitKind interpreta el tipo de unidad. Valores desconocidos se tratan como enteros.
func ParseUnitKind(s string) UnitKind {
	if strings.EqualFold(strings.TrimSpace(s), string(UnitDecimal)) {
		return UnitDecimal
	}
	return UnitInteger
}

// KindFromDecimalPlaces resuelve el tipo a partir de los decimales configurados en la unidad.
func KindFromDecimalPlaces(places int) UnitKind {
	if places > 0 {
		return UnitDecimal
	}
	return UnitInteger
}

// NumberShape nombre de la forma numérica esperada, usado en mensajes de validación.
func (k UnitKind) NumberShape() string {
	if k == UnitDecimal {
		return "decimal number"
	}
	return "whole number"
}
