// Package billing contiene el motor de cálculo de la factura: lectura de valores
// numéricos, cálculo del neto por línea, total general y las operaciones que
// mutan el agregado entity.Invoice manteniendo sus valores derivados al día.
package billing

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-builder/internal/domain"
)

// Parser convierte texto del formulario en números.
// En modo permisivo (Strict=false) cualquier entrada ilegible vale 0 y nunca hay error.
// En modo estricto la cadena completa debe ser un número; el vacío sigue valiendo 0.
type Parser struct {
	Strict bool
}

// Amount lee precio, descuento o tasa de impuesto.
func (p Parser) Amount(raw string) (decimal.Decimal, error) {
	if p.Strict {
		return ParseAmountStrict(raw)
	}
	return ParseAmount(raw), nil
}

// Quantity lee una cantidad entera.
func (p Parser) Quantity(raw string) (int64, error) {
	if p.Strict {
		return ParseQuantityStrict(raw)
	}
	return ParseQuantity(raw), nil
}

// ParseAmount toma el prefijo numérico más largo de raw (espacios iniciales ignorados).
// "12o" → 12, ".5" → 0.5, "1e2x" → 100, "abc" → 0, "" → 0. Sin recorte de negativos.
// Un valor fuera del rango de float64 ("1e999") vale 0.
func ParseAmount(raw string) decimal.Decimal {
	prefix := floatPrefix(raw)
	if prefix == "" {
		return decimal.Zero
	}
	d, ok := boundedDecimal(prefix)
	if !ok {
		return decimal.Zero
	}
	return d
}

// boundedDecimal convierte s solo si su magnitud cabe en float64. Con exponentes
// arbitrarios decimal.Decimal materializa enteros de millones de dígitos al redondear.
// Lo que float64 redondea a cero ("1e-999999999") también vale cero.
func boundedDecimal(s string) (decimal.Decimal, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return decimal.Zero, false
	}
	if f == 0 {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseQuantity toma el prefijo entero más largo de raw: "3.7" → 3, "12o" → 12, "x" → 0.
// Con prefijo 0x/0X lee hexadecimal ("0x10" → 16, "0x" → 0). Un valor que no cabe en int64 vale 0.
func ParseQuantity(raw string) int64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	base, isDigitFn := 10, isDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigitFn, s = 16, isHexDigit, s[2:]
	}
	end := 0
	for end < len(s) && isDigitFn(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseAmountStrict exige que la cadena completa (sin espacios en los extremos) sea un decimal.
func ParseAmountStrict(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, raw)
	}
	d, ok := boundedDecimal(s)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q fuera de rango", domain.ErrInvalidNumber, raw)
	}
	return d, nil
}

// ParseQuantityStrict exige un entero completo.
func ParseQuantityStrict(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, raw)
	}
	return n, nil
}

// floatPrefix devuelve el prefijo de raw con forma [signo]dígitos[.dígitos][e[signo]dígitos],
// normalizado para decimal.NewFromString ("5." → "5", ".5" → "0.5").
func floatPrefix(raw string) string {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	i := 0
	sign := ""
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = "-"
		}
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]

	fracPart := ""
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracPart = s[i+1 : j]
		if intPart != "" || fracPart != "" {
			i = j
		}
	}
	if intPart == "" && fracPart == "" {
		return ""
	}

	exp := ""
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			exp = "e" + s[i+1:k]
		}
	}

	if intPart == "" {
		intPart = "0"
	}
	out := sign + intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	return out + exp
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
