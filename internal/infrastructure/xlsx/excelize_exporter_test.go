package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appbilling "github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/application/dto"
	dombilling "github.com/jhoicas/invoice-builder/internal/domain/billing"
	"github.com/jhoicas/invoice-builder/internal/infrastructure/xlsx"
	"github.com/jhoicas/invoice-builder/pkg/words"
)

func TestExportLineItems(t *testing.T) {
	inv, err := appbilling.BuildInvoice(dto.InvoiceInput{
		Header: map[string]dto.FieldValue{"seller_name": "Acme Traders", "invoice_number": "INV-9"},
		Items: []map[string]dto.FieldValue{
			{"description": "Widget", "unit_price": "100", "quantity": "2", "discount_percent": "10"},
			{"description": "Gadget", "unit_price": "50"},
		},
	}, dombilling.Parser{})
	require.NoError(t, err)
	doc := appbilling.NewDocument(inv, words.NewFormatter())

	out, err := xlsx.NewExcelizeSheetExporter().ExportLineItems(context.Background(), doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	get := func(cell string) string {
		v, err := f.GetCellValue(xlsx.SheetName, cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Acme Traders", get("B1"))
	assert.Equal(t, "INV-9", get("B3"))
	assert.Equal(t, "Description", get("B6"))
	assert.Equal(t, "Widget", get("B7"))
	assert.Equal(t, "212.4", get("G7"))
	assert.Equal(t, "Gadget", get("B8"))
	assert.Equal(t, "59", get("G8"))
	assert.Equal(t, "Total", get("F9"))
	assert.Equal(t, "271.4", get("G9"))
	assert.Equal(t, "two hundred seventy-one rupees and forty paise", get("B10"))
}
