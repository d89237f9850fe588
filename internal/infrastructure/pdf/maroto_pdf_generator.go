// Package pdf implementa la representación impresa de la factura (Tax Invoice /
// Bill of Supply / Cash Memo) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Vendedor                │  Título + subtítulo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Sold By (dirección)             │  Billing Address + State │
//	│  PAN / GST                       │  Shipping Address + Place│
//	│  Order Number + Date             │  Invoice Number + Date   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sl | Descripción | P.Unit | Cant | Imp% | Importe    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL / Amount in Words / Reverse charge                    │
//	│  For <vendedor>:  [firma]  Authorized Signatory              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Helvetica (cp1252) no tiene el signo ₹.
const currency = "Rs. "

// Agrupación india de miles: 1,23,45,678.
var amountPrinter = message.NewPrinter(language.MustParse("en-IN"))

// ── Generator ─────────────────────────────────────────────────────────────────

// Options textos fijos del encabezado.
type Options struct {
	Title    string
	Subtitle string
}

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	opts Options
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(opts Options) *MarotoPDFGenerator {
	if opts.Title == "" {
		opts.Title = "Tax Invoice/Bill of Supply/Cash Memo"
	}
	return &MarotoPDFGenerator{opts: opts}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. La paginación la resuelve Maroto.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, doc *appbilling.InvoiceDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	inv := &doc.Invoice
	h := &inv.Header

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.opts.Title, true)
	if h.SellerName != "" {
		builder = builder.WithAuthor(h.SellerName, true)
	}
	m := maroto.New(builder.Build())

	m.AddRows(g.headerRow(h))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(h))
	m.AddRows(taxAndShippingRow(h))
	m.AddRows(orderRow(h))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(inv.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(inv.Total))
	m.AddRows(wordsRow(doc.AmountInWords.String()))
	m.AddRows(reverseChargeRow(h.ReverseCharge))
	m.AddRows(row.New(4))
	m.AddRows(signatureRows(h.SellerName, inv.Signature)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: vendedor (izq) y título + subtítulo (der).
func (g *MarotoPDFGenerator) headerRow(h *entity.InvoiceHeader) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(h.SellerName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New(g.opts.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(g.opts.Subtitle, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// partiesRow: vendedor (izq) y dirección de facturación (der).
func partiesRow(h *entity.InvoiceHeader) core.Row {
	return row.New(26).Add(
		col.New(6).Add(block("Sold By:",
			h.SellerName,
			h.SellerAddress,
			h.SellerCityStatePincode,
		)...),
		col.New(6).Add(block("Billing Address:",
			h.BillingName,
			h.BillingAddress,
			h.BillingCityStatePincode,
			"State/UT Code: "+h.BillingStateCode,
		)...),
	)
}

// taxAndShippingRow: PAN/GST del vendedor (izq) y dirección de envío (der).
func taxAndShippingRow(h *entity.InvoiceHeader) core.Row {
	return row.New(32).Add(
		col.New(6).Add(
			labelValue("PAN No:", h.SellerPAN, 2),
			labelValue("GST Registration No:", h.SellerGST, 7),
		),
		col.New(6).Add(block("Shipping Address:",
			h.ShippingName,
			h.ShippingAddress,
			h.ShippingCityStatePincode,
			"State/UT Code: "+h.ShippingStateCode,
			"Place of Supply: "+h.PlaceOfSupply,
		)...),
	)
}

// orderRow: referencias del pedido (izq) y de la factura (der).
func orderRow(h *entity.InvoiceHeader) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			labelValue("Order Number:", h.OrderNumber, 1),
			labelValue("Order Date:", h.OrderDate.String(), 6),
		),
		col.New(6).Add(
			labelValue("Invoice Number:", h.InvoiceNumber, 1),
			labelValue("Invoice Date:", h.InvoiceDate.String(), 6),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo de color.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Sl. No", 1, align.Center),
		h("Description", 5, align.Left),
		h("Unit Price", 2, align.Right),
		h("Qty", 1, align.Center),
		h("Tax", 1, align.Center),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea, en orden de inserción.
func tableDetailRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				describe(it),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				currency+formatMoney(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				strconv.FormatInt(it.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxRatePercent.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				currency+formatMoney(it.NetAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 2,
		})),
		col.New(4).Add(text.New(currency+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func wordsRow(words string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Amount in Words:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
		text.New(capitalize(words), props.Text{Size: 8, Top: 7}),
	))
}

func reverseChargeRow(rc entity.ReverseCharge) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Whether tax is payable under reverse charge - "+string(rc), props.Text{
			Size: 8, Top: 2, Color: colorGray,
		}),
	))
}

// signatureRows: "For <vendedor>:", la imagen de firma si existe y "Authorized Signatory".
func signatureRows(seller string, sig *entity.Signature) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("For "+seller+":", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		}))),
	}
	if ext, ok := imageExtension(sig); ok {
		rows = append(rows, row.New(22).Add(
			col.New(8),
			col.New(4).Add(image.NewFromBytes(sig.Data, ext, props.Rect{Center: true, Percent: 90})),
		))
	} else {
		rows = append(rows, row.New(15))
	}
	rows = append(rows, row.New(7).Add(col.New(12).Add(text.New("Authorized Signatory", props.Text{
		Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
	}))))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// block título en negrita seguido de líneas apiladas; las vacías se omiten.
func block(title string, lines ...string) []core.Component {
	out := []core.Component{text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	})}
	top := 6.0
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, text.New(l, props.Text{Size: 8, Top: top}))
		top += 4.5
	}
	return out
}

func labelValue(label, value string, top float64) core.Component {
	return text.New(label+" "+value, props.Text{Size: 8, Top: top})
}

func describe(it entity.LineItem) string {
	if it.DiscountPercent.IsZero() {
		return it.Description
	}
	return fmt.Sprintf("%s (discount %s%%)", it.Description, it.DiscountPercent.String())
}

func imageExtension(sig *entity.Signature) (extension.Type, bool) {
	if sig == nil || len(sig.Data) == 0 {
		return "", false
	}
	switch sig.MimeType {
	case entity.MimePNG:
		return extension.Png, true
	case entity.MimeJPEG:
		return extension.Jpg, true
	}
	return "", false
}

// formatMoney 2 decimales con agrupación india: 123456.5 → "1,23,456.50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + s
	}
	return sign + amountPrinter.Sprintf("%d", n) + "." + frac
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
