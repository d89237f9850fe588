package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReverseCharge indica si el impuesto lo liquida el comprador (Yes) o el vendedor (No).
type ReverseCharge string

const (
	ReverseChargeYes ReverseCharge = "Yes"
	ReverseChargeNo  ReverseCharge = "No"
)

// ParseReverseCharge acepta "yes"/"no" sin distinguir mayúsculas.
func ParseReverseCharge(s string) (ReverseCharge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return ReverseChargeYes, nil
	case "no":
		return ReverseChargeNo, nil
	}
	return "", fmt.Errorf("reverse charge %q: se espera Yes o No", s)
}

// Bool devuelve la semántica booleana del indicador.
func (r ReverseCharge) Bool() bool { return r == ReverseChargeYes }

// Tipos MIME aceptados para la imagen de firma.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

// Signature imagen de firma adjunta a la factura.
type Signature struct {
	Data     []byte
	MimeType string // MimePNG | MimeJPEG
}

// InvoiceHeader datos de vendedor, facturación, envío y referencias del pedido.
// Todos los campos son texto libre salvo las fechas y el indicador de reverse charge.
type InvoiceHeader struct {
	SellerName             string
	SellerAddress          string
	SellerCityStatePincode string
	SellerPAN              string
	SellerGST              string
	PlaceOfSupply          string

	BillingName             string
	BillingAddress          string
	BillingCityStatePincode string
	BillingStateCode        string

	ShippingName             string
	ShippingAddress          string
	ShippingCityStatePincode string
	ShippingStateCode        string

	OrderNumber   string
	OrderDate     Date
	InvoiceNumber string
	InvoiceDate   Date
	ReverseCharge ReverseCharge
}

// Invoice agregado completo: cabecera, ítems en orden de inserción, firma opcional y total derivado.
// Total nunca es un dato de entrada; se recalcula tras cada mutación de ítems.
type Invoice struct {
	Header    InvoiceHeader
	Items     []LineItem
	Signature *Signature
	Total     decimal.Decimal
}

// Date fecha de calendario sin hora. El valor cero significa "sin fecha".
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

// NewDate construye una fecha de calendario.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interpreta YYYY-MM-DD; la cadena vacía devuelve la fecha cero.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// String devuelve YYYY-MM-DD o "" si no hay fecha.
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Time devuelve el instante UTC a medianoche.
func (d Date) Time() time.Time { return d.t }
