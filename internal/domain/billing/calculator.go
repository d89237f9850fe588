package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-builder/internal/domain/entity"
)

// NetAmount calcula el neto de una línea (servicio de dominio puro).
//
//	subtotal  = precio * cantidad
//	descuento = subtotal * (descuento% / 100)
//	base      = subtotal - descuento
//	impuesto  = base * (tasa% / 100)
//	neto      = base + impuesto, redondeado a 2 decimales (mitad lejos de cero)
//
// El orden de las operaciones es fijo.
func NetAmount(unitPrice decimal.Decimal, quantity int64, discountPercent, taxRatePercent decimal.Decimal) decimal.Decimal {
	subtotal := unitPrice.Mul(decimal.NewFromInt(quantity))
	discountAmount := subtotal.Mul(discountPercent.Shift(-2))
	afterDiscount := subtotal.Sub(discountAmount)
	taxAmount := afterDiscount.Mul(taxRatePercent.Shift(-2))
	return afterDiscount.Add(taxAmount).Round(2)
}

// ComputeNetAmount aplica NetAmount a valores crudos del formulario.
// Los valores ilegibles valen 0; nunca falla.
func ComputeNetAmount(unitPrice, quantity, discountPercent, taxRatePercent string) decimal.Decimal {
	return NetAmount(
		ParseAmount(unitPrice),
		ParseQuantity(quantity),
		ParseAmount(discountPercent),
		ParseAmount(taxRatePercent),
	)
}

// ComputeTotal suma los netos de izquierda a derecha en orden de inserción y redondea a 2 decimales.
func ComputeTotal(items []entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.NetAmount)
	}
	return total.Round(2)
}
