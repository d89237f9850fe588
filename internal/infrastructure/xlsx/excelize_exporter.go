// Package xlsx exporta las líneas de una factura a una hoja de cálculo con excelize.
//
// Estructura de la hoja "Invoice":
//
//	fila 1-4  referencias (vendedor, comprador, número y fecha de factura)
//	fila 6    cabecera de la tabla
//	fila 7..  una fila por línea, en orden de inserción
//	siguiente total y total en palabras
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appbilling "github.com/jhoicas/invoice-builder/internal/application/billing"
)

// SheetName nombre de la hoja generada.
const SheetName = "Invoice"

// TableHeaderRow fila de la cabecera de la tabla; las líneas empiezan en la siguiente.
const TableHeaderRow = 6

var columns = []string{
	"Sl. No", "Description", "Unit Price", "Quantity", "Discount %", "Tax %", "Net Amount",
}

// Formato numérico incorporado 4: "#,##0.00".
const numFmtMoney = 4

// ExcelizeSheetExporter implementa billing.InvoiceSheetExporter.
type ExcelizeSheetExporter struct{}

// NewExcelizeSheetExporter construye el exportador.
func NewExcelizeSheetExporter() *ExcelizeSheetExporter { return &ExcelizeSheetExporter{} }

// ExportLineItems genera el libro y devuelve sus bytes.
func (e *ExcelizeSheetExporter) ExportLineItems(ctx context.Context, doc *appbilling.InvoiceDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	inv := &doc.Invoice
	h := &inv.Header
	refs := [][2]string{
		{"Seller", h.SellerName},
		{"Billing", h.BillingName},
		{"Invoice Number", h.InvoiceNumber},
		{"Invoice Date", h.InvoiceDate.String()},
	}
	for i, r := range refs {
		if err := setRow(f, i+1, r[0], r[1]); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := setRow(f, TableHeaderRow, header...); err != nil {
		return nil, err
	}
	if err := styleRange(f, TableHeaderRow, 1, len(columns), bold); err != nil {
		return nil, err
	}

	r := TableHeaderRow + 1
	for i, it := range inv.Items {
		if err := setRow(f, r,
			i+1,
			it.Description,
			it.UnitPrice.InexactFloat64(),
			it.Quantity,
			it.DiscountPercent.InexactFloat64(),
			it.TaxRatePercent.InexactFloat64(),
			it.NetAmount.InexactFloat64(),
		); err != nil {
			return nil, err
		}
		if err := styleCell(f, 3, r, money); err != nil {
			return nil, err
		}
		if err := styleCell(f, 7, r, money); err != nil {
			return nil, err
		}
		r++
	}

	if err := setCell(f, 6, r, "Total"); err != nil {
		return nil, err
	}
	if err := setCell(f, 7, r, inv.Total.InexactFloat64()); err != nil {
		return nil, err
	}
	if err := styleRange(f, r, 6, 7, bold); err != nil {
		return nil, err
	}
	if err := styleCell(f, 7, r, money); err != nil {
		return nil, err
	}
	if err := setRow(f, r+1, "Amount in Words", doc.AmountInWords.String()); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(SheetName, "B", "B", 40); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values ...any) error {
	for i, v := range values {
		if err := setCell(f, i+1, row, v); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("xlsx: escribir %s: %w", cell, err)
	}
	return nil
}

func styleCell(f *excelize.File, col, row, style int) error {
	return styleRange(f, row, col, col, style)
}

func styleRange(f *excelize.File, row, fromCol, toCol, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	if err := f.SetCellStyle(SheetName, from, to, style); err != nil {
		return fmt.Errorf("xlsx: estilo %s:%s: %w", from, to, err)
	}
	return nil
}
