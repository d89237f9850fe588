package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/application/dto"
	dombilling "github.com/jhoicas/invoice-builder/internal/domain/billing"
	"github.com/jhoicas/invoice-builder/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-builder/pkg/words"
)

func signaturePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 12))
	for x := 0; x < 40; x++ {
		img.Set(x, 6, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func sampleDocument(t *testing.T, items int) *appbilling.InvoiceDocument {
	t.Helper()
	in := dto.InvoiceInput{
		Header: map[string]dto.FieldValue{
			"seller_name":                 "Acme Traders",
			"seller_address":              "12 MG Road",
			"seller_city_state_pincode":   "Bengaluru, Karnataka 560001",
			"seller_pan":                  "AAPFU0939F",
			"seller_gst":                  "29AAPFU0939F1ZV",
			"place_of_supply":             "Karnataka",
			"billing_name":                "Globex",
			"billing_state_code":          "29",
			"shipping_name":               "Globex Warehouse",
			"shipping_city_state_pincode": "Mysuru, Karnataka 570001",
			"invoice_number":              "INV-1",
			"invoice_date":                "2024-03-15",
		},
	}
	for i := 0; i < items; i++ {
		in.Items = append(in.Items, map[string]dto.FieldValue{
			"description": "Widget", "unit_price": "100", "quantity": "2", "discount_percent": "10",
		})
	}
	inv, err := appbilling.BuildInvoice(in, dombilling.Parser{})
	require.NoError(t, err)
	require.NoError(t, dombilling.SetSignatureImage(inv, signaturePNG(t), "image/png"))
	return appbilling.NewDocument(inv, words.NewFormatter())
}

func TestGenerateInvoicePDF_ConFirma(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator(pdf.Options{Subtitle: "(Original for Recipient)"})

	out, err := gen.GenerateInvoicePDF(context.Background(), sampleDocument(t, 2))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateInvoicePDF_MuchasLineasPagina(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator(pdf.Options{})

	few, err := gen.GenerateInvoicePDF(context.Background(), sampleDocument(t, 1))
	require.NoError(t, err)
	many, err := gen.GenerateInvoicePDF(context.Background(), sampleDocument(t, 120))
	require.NoError(t, err)
	assert.Greater(t, len(many), len(few))
}

func TestGenerateInvoicePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewMarotoPDFGenerator(pdf.Options{}).GenerateInvoicePDF(ctx, sampleDocument(t, 1))
	assert.ErrorIs(t, err, context.Canceled)
}
