package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/application/dto"
	"github.com/jhoicas/invoice-builder/internal/domain"
	dombilling "github.com/jhoicas/invoice-builder/internal/domain/billing"
	"github.com/jhoicas/invoice-builder/internal/domain/entity"
	"github.com/jhoicas/invoice-builder/pkg/words"
)

func TestBuildInvoice(t *testing.T) {
	in := dto.InvoiceInput{
		Header: map[string]dto.FieldValue{
			"seller_name":    "Acme Traders",
			"invoice_number": "INV-7",
			"invoice_date":   "2024-03-15",
			"reverse_charge": "Yes",
		},
		Items: []map[string]dto.FieldValue{
			{"description": "Widget", "unit_price": "100", "quantity": "2", "discount_percent": "10"},
			{"description": "Gadget", "unit_price": "50"},
		},
	}

	inv, err := billing.BuildInvoice(in, dombilling.Parser{})
	require.NoError(t, err)

	assert.Equal(t, "Acme Traders", inv.Header.SellerName)
	assert.Equal(t, entity.ReverseChargeYes, inv.Header.ReverseCharge)
	assert.Equal(t, "2024-03-15", inv.Header.InvoiceDate.String())
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "212.40", inv.Items[0].NetAmount.StringFixed(2))
	assert.Equal(t, "59.00", inv.Items[1].NetAmount.StringFixed(2))
	assert.Equal(t, "271.40", inv.Total.StringFixed(2))
}

func TestBuildInvoice_SinItemsQuedaLineaPorDefecto(t *testing.T) {
	inv, err := billing.BuildInvoice(dto.InvoiceInput{}, dombilling.Parser{})
	require.NoError(t, err)
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Total.IsZero())
}

func TestBuildInvoice_CampoDesconocido(t *testing.T) {
	_, err := billing.BuildInvoice(dto.InvoiceInput{
		Items: []map[string]dto.FieldValue{{"sku": "X-1"}},
	}, dombilling.Parser{})
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Contains(t, err.Error(), "items[0]")
}

func TestNewDocument(t *testing.T) {
	inv := dombilling.NewInvoice()
	require.NoError(t, dombilling.SetLineItemField(inv, 0, dombilling.FieldUnitPrice, "100", dombilling.Parser{}))

	doc := billing.NewDocument(inv, words.NewFormatter())
	assert.Equal(t, "one hundred eighteen rupees and zero paise", doc.AmountInWords.String())
}

func TestDocumentFilename(t *testing.T) {
	inv := dombilling.NewInvoice()
	assert.Equal(t, "invoice.pdf", billing.DocumentFilename(inv, "pdf"))

	inv.Header.InvoiceNumber = "  "
	assert.Equal(t, "invoice.pdf", billing.DocumentFilename(inv, "pdf"))

	inv.Header.InvoiceNumber = "A-12/b"
	assert.Equal(t, "invoice_A-12_b.xlsx", billing.DocumentFilename(inv, "xlsx"))
}
