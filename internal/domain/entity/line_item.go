package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de la factura.
// NetAmount es un valor derivado en caché: siempre es el resultado del calculador
// aplicado a (UnitPrice, Quantity, DiscountPercent, TaxRatePercent).
type LineItem struct {
	Description     string
	UnitPrice       decimal.Decimal
	Quantity        int64
	DiscountPercent decimal.Decimal
	TaxRatePercent  decimal.Decimal
	NetAmount       decimal.Decimal
}
