package lineitem

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// toFixedLimit a partir de este valor la representación del host pasa a exponencial
// y el redondeo a 2 decimales devuelve el mismo número.
const toFixedLimit = 1e21

var hundred = big.NewFloat(100)

// Round2 redondea a 2 decimales sobre el valor binario exacto de x, con empates
// alejándose de cero. Reproduce Number(x.toFixed(2)) bit a bit.
// NaN e infinitos degradan a 0.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	abs := math.Abs(x)
	if abs >= toFixedLimit {
		return x
	}

	// ToZero conserva el piso exacto aunque la suma pierda bits de menor peso.
	f := new(big.Float).SetPrec(256).SetMode(big.ToZero).SetFloat64(abs)
	f.Mul(f, hundred)
	f.Add(f, big.NewFloat(0.5))
	n, _ := f.Int(nil)

	q := new(big.Float).SetPrec(53).SetInt(n)
	q.Quo(q, hundred)
	r, _ := q.Float64()
	// Un negativo que redondea a cero conserva el signo (-0).
	return math.Copysign(r, x)
}

// ParseNumber convierte la entrada del usuario a número. Todo lo que no sea un
// número finito se trata como 0; nunca falla.
func ParseNumber(raw any) float64 {
	var v float64
	switch n := raw.(type) {
	case nil:
		return 0
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint:
		v = float64(n)
	case uint32:
		v = float64(n)
	case uint64:
		v = float64(n)
	case decimal.Decimal:
		v = n.InexactFloat64()
	case json.Number:
		return parseString(n.String())
	case string:
		return parseString(n)
	default:
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NormalizeQuantity aplica la política de cantidad: nunca negativa; piso para
// unidades enteras, 2 decimales para unidades fraccionarias.
func NormalizeQuantity(raw any, kind UnitKind) float64 {
	v := math.Max(0, ParseNumber(raw))
	if kind == UnitDecimal {
		return math.Round(v*100) / 100
	}
	return math.Floor(v)
}

// FormatQuantity representación de la cantidad normalizada: sin decimales para
// unidades enteras, exactamente 2 para fraccionarias.
func FormatQuantity(q float64, kind UnitKind) string {
	if kind == UnitDecimal {
		return strconv.FormatFloat(q, 'f', 2, 64)
	}
	return strconv.FormatFloat(q, 'f', 0, 64)
}
