package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-builder/internal/domain/billing"
	"github.com/jhoicas/invoice-builder/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia: 100 x 2 = 200, descuento 10% → 180, IVA 18% → 32.4, neto 212.40
// ──────────────────────────────────────────────────────────────────────────────

func TestNetAmount_VectorReferencia(t *testing.T) {
	got := billing.NetAmount(dec("100"), 2, dec("10"), dec("18"))
	assert.Equal(t, "212.40", got.StringFixed(2))
}

func TestComputeNetAmount_TextoCrudo(t *testing.T) {
	assert.Equal(t, "212.40", billing.ComputeNetAmount("100", "2", "10", "18").StringFixed(2))
}

func TestComputeNetAmount_PrecioCeroDomina(t *testing.T) {
	got := billing.ComputeNetAmount("0", "5", "50", "18")
	assert.True(t, got.IsZero())
	assert.Equal(t, "0.00", got.StringFixed(2))
}

func TestComputeNetAmount_TextoNoNumericoEquivaleACero(t *testing.T) {
	cases := []struct{ price, qty, disc, tax string }{
		{"100", "2", "10", "18"},
		{"3.5", "4", "0", "5"},
		{"999.99", "1", "100", "28"},
	}
	for _, c := range cases {
		assert.True(t,
			billing.ComputeNetAmount("abc", c.qty, c.disc, c.tax).Equal(billing.ComputeNetAmount("0", c.qty, c.disc, c.tax)),
			"precio ilegible debe comportarse como 0")
	}
}

func TestComputeNetAmount_EntradasVaciasNoFallan(t *testing.T) {
	assert.True(t, billing.ComputeNetAmount("", "", "", "").IsZero())
	// Sin impuesto ni descuento el neto es precio*cantidad
	assert.Equal(t, "30.00", billing.ComputeNetAmount("15", "2", "", "").StringFixed(2))
}

func TestNetAmount_RedondeoMitadLejosDeCero(t *testing.T) {
	// 0.125 * 1 sin impuesto → 0.13
	assert.Equal(t, "0.13", billing.NetAmount(dec("0.125"), 1, decimal.Zero, decimal.Zero).StringFixed(2))
	// 10.005 con cantidad 1 → 10.01
	assert.Equal(t, "10.01", billing.NetAmount(dec("10.005"), 1, decimal.Zero, decimal.Zero).StringFixed(2))
	// Negativos se aceptan sin recorte: -0.125 → -0.13
	assert.Equal(t, "-0.13", billing.NetAmount(dec("-0.125"), 1, decimal.Zero, decimal.Zero).StringFixed(2))
}

// TestNetAmount_FormaCerrada compara con precio*cant*(1-d/100)*(1+t/100) redondeado.
func TestNetAmount_FormaCerrada(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	one := decimal.NewFromInt(1)
	prices := []string{"0", "1", "19.99", "250.5", "1234.567"}
	qtys := []int64{0, 1, 3, 17}
	discounts := []string{"0", "5", "12.5", "33.3333", "100"}
	taxes := []string{"0", "5", "12", "18", "28"}

	for _, p := range prices {
		for _, q := range qtys {
			for _, d := range discounts {
				for _, tx := range taxes {
					got := billing.NetAmount(dec(p), q, dec(d), dec(tx))
					want := dec(p).Mul(decimal.NewFromInt(q)).
						Mul(one.Sub(dec(d).Div(hundred))).
						Mul(one.Add(dec(tx).Div(hundred))).
						Round(2)
					assert.True(t, got.Equal(want), "p=%s q=%d d=%s t=%s: got %s want %s", p, q, d, tx, got, want)
					assert.False(t, got.IsNegative(), "con descuento <= 100 el neto no es negativo")
				}
			}
		}
	}
}

func TestComputeTotal_SumaNetos(t *testing.T) {
	items := []entity.LineItem{
		{NetAmount: dec("212.40")},
		{NetAmount: dec("0.00")},
	}
	assert.Equal(t, "212.40", billing.ComputeTotal(items).StringFixed(2))
}

func TestComputeTotal_VacioEsCero(t *testing.T) {
	assert.True(t, billing.ComputeTotal(nil).IsZero())
}

func TestComputeTotal_Idempotente(t *testing.T) {
	items := []entity.LineItem{
		{NetAmount: dec("0.10")},
		{NetAmount: dec("0.20")},
		{NetAmount: dec("1234.56")},
	}
	first := billing.ComputeTotal(items)
	second := billing.ComputeTotal(items)
	assert.True(t, first.Equal(second))
	assert.Equal(t, "1234.86", first.StringFixed(2))
}
