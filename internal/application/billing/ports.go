package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-builder/internal/domain/entity"
	"github.com/jhoicas/invoice-builder/pkg/words"
)

// InvoiceDocument todo lo que el renderizador necesita: la factura ya recalculada
// (netos y total), la firma y el total en palabras.
type InvoiceDocument struct {
	Invoice       entity.Invoice
	AmountInWords words.Amount
}

// InvoicePDFGenerator puerto para generar la representación gráfica de la factura.
// Implementado en infrastructure/pdf (maroto). Devuelve los bytes del PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// InvoiceSheetExporter puerto para exportar las líneas de la factura a hoja de cálculo.
// Implementado en infrastructure/xlsx (excelize).
type InvoiceSheetExporter interface {
	ExportLineItems(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// AmountInWords puerto del formateador de importes a texto (pkg/words).
type AmountInWords interface {
	Words(total decimal.Decimal) words.Amount
}

// MetricsRecorder puerto de métricas de dominio. Implementado en infrastructure/metrics.
type MetricsRecorder interface {
	Operation(op, result string)
	Export(format, result string)
	SessionsActive(n int)
}

type nopMetrics struct{}

func (nopMetrics) Operation(string, string) {}
func (nopMetrics) Export(string, string)    {}
func (nopMetrics) SessionsActive(int)       {}
