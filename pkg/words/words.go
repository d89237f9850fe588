// Package words convierte importes a texto en inglés para la línea
// "Amount in Words" de la factura: "<rupias> rupees and <paise> paise".
//
// Estilo de salida: escala internacional (thousand, million, ...), guiones entre
// decenas y unidades, coma tras cada grupo de miles y sin "and":
//
//	212     → "two hundred twelve"
//	1234    → "one thousand, two hundred thirty-four"
//	2000005 → "two million, five"
package words

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var lessThanTwenty = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = [10]string{
	"zero", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// Escala corta: cada nombre vale mil veces el anterior. Por encima de decillion
// los grupos se componen: 10^36 → "one thousand decillion".
var scaleNames = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion", "sextillion", "septillion", "octillion", "nonillion", "decillion",
}

// Integer escribe n en palabras. Los negativos llevan el prefijo "minus".
func Integer(n int64) string {
	return BigInteger(big.NewInt(n))
}

// BigInteger escribe n en palabras sin límite de magnitud.
func BigInteger(n *big.Int) string {
	switch n.Sign() {
	case 0:
		return lessThanTwenty[0]
	case -1:
		return "minus " + digits(new(big.Int).Abs(n).String())
	}
	return digits(n.String())
}

// digits escribe un entero positivo dado en base 10 sin ceros a la izquierda.
func digits(s string) string {
	top := len(scaleNames) - 1
	if len(s) > 3*len(scaleNames) {
		cut := len(s) - 3*top
		word := digits(s[:cut]) + " " + scaleNames[top] + ","
		if low := strings.TrimLeft(s[cut:], "0"); low != "" {
			word += " " + digits(low)
		}
		return strings.TrimSuffix(word, ",")
	}

	parts := make([]string, 0, len(scaleNames))
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	for i, scale := first, (len(s)-1)/3; i <= len(s); i, scale = i+3, scale-1 {
		g, _ := strconv.Atoi(s[max(i-3, 0):i])
		if g == 0 {
			continue
		}
		word := underThousand(g)
		if scale > 0 {
			word += " " + scaleNames[scale] + ","
		}
		parts = append(parts, word)
	}
	return strings.TrimSuffix(strings.Join(parts, " "), ",")
}

func underThousand(n int) string {
	parts := make([]string, 0, 2)
	if n >= 100 {
		parts = append(parts, lessThanTwenty[n/100]+" hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, lessThanTwenty[n])
	default:
		word := tens[n/10]
		if r := n % 10; r != 0 {
			word += "-" + lessThanTwenty[r]
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

// Split separa un total en rupias (parte entera, piso) y paise (fracción * 100 redondeada).
// El total se asume ya redondeado a 2 decimales. Las rupias no tienen tope.
func Split(total decimal.Decimal) (rupees *big.Int, paise int64) {
	rupees = total.Floor().BigInt()
	paise = total.Mod(decimal.NewFromInt(1)).Shift(2).Round(0).IntPart()
	return rupees, paise
}

// Amount texto de un total separado en sus dos partes.
type Amount struct {
	Rupees string
	Paise  string
}

// String arma la frase tal como aparece impresa.
func (a Amount) String() string {
	return a.Rupees + " rupees and " + a.Paise + " paise"
}

// Formatter implementa el puerto de "importe en palabras" de la capa de aplicación.
type Formatter struct{}

// NewFormatter construye el formateador.
func NewFormatter() Formatter { return Formatter{} }

// Words devuelve el total en palabras (rupias y paise).
func (Formatter) Words(total decimal.Decimal) Amount {
	r, p := Split(total)
	return Amount{Rupees: BigInteger(r), Paise: Integer(p)}
}
