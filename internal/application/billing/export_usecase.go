package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/invoice-builder/pkg/logger"
)

// DocumentSource entrega el documento de un formulario abierto (InvoiceUseCase).
type DocumentSource interface {
	Document(ctx context.Context, id string) (*InvoiceDocument, error)
}

// ExportUseCase genera los documentos descargables de una factura: PDF para imprimir
// y XLSX con las líneas.
type ExportUseCase struct {
	source  DocumentSource
	pdf     InvoicePDFGenerator
	sheet   InvoiceSheetExporter
	metrics MetricsRecorder
	log     *logger.Logger
}

// NewExportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewExportUseCase(
	source DocumentSource,
	pdf InvoicePDFGenerator,
	sheet InvoiceSheetExporter,
	metrics MetricsRecorder,
	log *logger.Logger,
) *ExportUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ExportUseCase{source: source, pdf: pdf, sheet: sheet, metrics: metrics, log: log}
}

// DownloadInvoicePDF genera el PDF del formulario id.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el formulario no existe.
func (uc *ExportUseCase) DownloadInvoicePDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.source.Document(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.renderPDF(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	uc.log.Session(id).Info().Int("bytes", len(pdfBytes)).Msg("pdf de factura generado")
	return pdfBytes, DocumentFilename(&doc.Invoice, "pdf"), nil
}

// renderPDF genera el PDF de un documento ya armado.
func (uc *ExportUseCase) renderPDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error) {
	start := time.Now()
	out, err := uc.pdf.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		uc.metrics.Export("pdf", "error")
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}
	uc.metrics.Export("pdf", "ok")
	uc.log.Debug().Dur("elapsed", time.Since(start)).Int("items", len(doc.Invoice.Items)).Msg("pdf renderizado")
	return out, nil
}

// DownloadLineItemsXLSX exporta las líneas del formulario id a una hoja de cálculo.
func (uc *ExportUseCase) DownloadLineItemsXLSX(ctx context.Context, id string) ([]byte, string, error) {
	doc, err := uc.source.Document(ctx, id)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.sheet.ExportLineItems(ctx, doc)
	if err != nil {
		uc.metrics.Export("xlsx", "error")
		return nil, "", fmt.Errorf("xlsx: exportación fallida: %w", err)
	}
	uc.metrics.Export("xlsx", "ok")
	uc.log.Session(id).Info().Int("bytes", len(out)).Msg("xlsx de factura generado")
	return out, DocumentFilename(&doc.Invoice, "xlsx"), nil
}
