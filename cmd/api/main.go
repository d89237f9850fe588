package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/invoice-builder/docs"
	"github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/application/session"
	"github.com/jhoicas/invoice-builder/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/invoice-builder/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/invoice-builder/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/invoice-builder/internal/interfaces/http"
	"github.com/jhoicas/invoice-builder/pkg/config"
	"github.com/jhoicas/invoice-builder/pkg/logger"
	"github.com/jhoicas/invoice-builder/pkg/words"
)

// @title        Invoice Builder API
// @version      1.0
// @description  Formulario de factura: cálculo de líneas y total, firma y exportación PDF/XLSX.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("strict_numbers", cfg.Invoice.StrictNumbers).
		Msg("iniciando aplicación")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(cfg.Metrics.Namespace, reg)

	store := session.NewStore(cfg.Invoice.SessionTTL)
	invoiceUC := billing.NewInvoiceUseCase(store, words.NewFormatter(), m, log, billing.Options{
		StrictNumbers:     cfg.Invoice.StrictNumbers,
		MaxSignatureBytes: cfg.Invoice.MaxSignatureBytes,
	})

	// PDF: representación impresa de la factura; XLSX: líneas para hoja de cálculo
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Options{
		Title:    cfg.PDF.Title,
		Subtitle: cfg.PDF.Subtitle,
	})
	exportUC := billing.NewExportUseCase(invoiceUC, pdfGenerator, infraxlsx.NewExcelizeSheetExporter(), m, log)

	ctx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go store.RunJanitor(ctx, time.Minute, invoiceUC.EvictIdle)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// La firma viaja en multipart: margen de 1 MiB sobre el máximo de la imagen.
		BodyLimit: int(cfg.Invoice.MaxSignatureBytes) + 1<<20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Builder API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:         invoiceUC,
		ExportUC:          exportUC,
		MaxSignatureBytes: cfg.Invoice.MaxSignatureBytes,
		Log:               log,
		Metrics:           m,
		Gatherer:          reg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopJanitor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
