// render genera el PDF (o el XLSX de líneas) de una factura descrita en un archivo JSON,
// aplicando los mismos eventos de edición que el formulario HTTP.
//
// Uso: go run ./cmd/render factura.json [salida.pdf|salida.xlsx]
// Sin salida explícita escribe invoice.pdf (o invoice_<número>.pdf) junto al JSON.
//
// Formato de entrada:
//
//	{
//	  "header": {"seller_name": "Acme", "invoice_date": "2024-03-15", "reverse_charge": "No"},
//	  "items": [{"description": "Widget", "unit_price": "100", "quantity": 2, "discount_percent": 10}],
//	  "signature": "firma.png"
//	}
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/application/dto"
	"github.com/jhoicas/invoice-builder/internal/domain"
	dombilling "github.com/jhoicas/invoice-builder/internal/domain/billing"
	infrapdf "github.com/jhoicas/invoice-builder/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/invoice-builder/internal/infrastructure/xlsx"
	"github.com/jhoicas/invoice-builder/pkg/config"
	"github.com/jhoicas/invoice-builder/pkg/logger"
	"github.com/jhoicas/invoice-builder/pkg/words"
)

type document struct {
	dto.InvoiceInput
	Signature string `json:"signature"` // ruta relativa al JSON
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("uso: render <factura.json> [salida.pdf|salida.xlsx]")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: os.Stderr})

	inPath := args[0]
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("leer %s: %w", inPath, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decodificar %s: %w", inPath, err)
	}

	inv, err := billing.BuildInvoice(doc.InvoiceInput, dombilling.Parser{Strict: cfg.Invoice.StrictNumbers})
	if err != nil {
		return err
	}
	if doc.Signature != "" {
		sigPath := doc.Signature
		if !filepath.IsAbs(sigPath) {
			sigPath = filepath.Join(filepath.Dir(inPath), sigPath)
		}
		data, err := os.ReadFile(sigPath)
		if err != nil {
			return fmt.Errorf("leer firma: %w", err)
		}
		if err := dombilling.SetSignatureImage(inv, data, mime.TypeByExtension(strings.ToLower(filepath.Ext(sigPath)))); err != nil {
			if errors.Is(err, domain.ErrUnsupportedSignatureType) {
				return errors.New(domain.SignatureTypeMessage)
			}
			return err
		}
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Options{Title: cfg.PDF.Title, Subtitle: cfg.PDF.Subtitle})
	sheet := infraxlsx.NewExcelizeSheetExporter()
	invoiceDoc := billing.NewDocument(inv, words.NewFormatter())

	outPath := filepath.Join(filepath.Dir(inPath), billing.DocumentFilename(inv, "pdf"))
	if len(args) == 2 {
		outPath = args[1]
	}

	ctx := context.Background()
	var out []byte
	if strings.EqualFold(filepath.Ext(outPath), ".xlsx") {
		out, err = sheet.ExportLineItems(ctx, invoiceDoc)
	} else {
		out, err = pdfGenerator.GenerateInvoicePDF(ctx, invoiceDoc)
	}
	if err != nil {
		return fmt.Errorf("generar %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", outPath, err)
	}
	log.Debug().Str("output", outPath).Int("bytes", len(out)).Msg("documento generado")

	fmt.Fprintf(stdout, "%s: %d líneas, total Rs. %s (%s)\n",
		outPath, len(inv.Items), inv.Total.StringFixed(2), invoiceDoc.AmountInWords)
	return nil
}
