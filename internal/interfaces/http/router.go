package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/infrastructure/metrics"
	"github.com/jhoicas/invoice-builder/pkg/logger"
)

// RouterDeps dependencias para el router. Log, Metrics y Gatherer son opcionales.
type RouterDeps struct {
	InvoiceUC         *billing.InvoiceUseCase
	ExportUC          *billing.ExportUseCase
	MaxSignatureBytes int64
	Log               *logger.Logger
	Metrics           *metrics.Metrics
	Gatherer          prometheus.Gatherer
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(AccessLog(deps.Log))
	}
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
	}
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Formularios de factura
	sessions := api.Group("/sessions")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.MaxSignatureBytes)
	sessions.Post("/", invoiceHandler.Create)
	sessions.Get("/:id", invoiceHandler.Get)
	sessions.Delete("/:id", invoiceHandler.Delete)
	sessions.Patch("/:id/header", invoiceHandler.SetHeaderField)
	sessions.Post("/:id/items", invoiceHandler.AddLineItem)
	sessions.Patch("/:id/items/:pos", invoiceHandler.SetLineItemField)
	sessions.Delete("/:id/items/:pos", invoiceHandler.RemoveLineItem)
	sessions.Put("/:id/signature", invoiceHandler.UploadSignature)
	sessions.Delete("/:id/signature", invoiceHandler.ClearSignature)
	sessions.Post("/:id/preview", invoiceHandler.TogglePreview)
	sessions.Get("/:id/checks", invoiceHandler.Checks)

	// Descargas
	exportHandler := NewExportHandler(deps.ExportUC)
	sessions.Get("/:id/invoice.pdf", exportHandler.DownloadPDF)
	sessions.Get("/:id/invoice.xlsx", exportHandler.DownloadXLSX)
}
