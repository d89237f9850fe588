package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-builder/internal/application/billing"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler descargas de la factura (PDF y XLSX).
type ExportHandler struct {
	uc *billing.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *billing.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/invoice.pdf [get]
func (h *ExportHandler) DownloadPDF(c *fiber.Ctx) error {
	out, filename, err := h.uc.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, out, filename, mimePDF)
}

// DownloadXLSX godoc
// @Summary      Descargar líneas en XLSX
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/invoice.xlsx [get]
func (h *ExportHandler) DownloadXLSX(c *fiber.Ctx) error {
	out, filename, err := h.uc.DownloadLineItemsXLSX(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, out, filename, mimeXLSX)
}

func sendAttachment(c *fiber.Ctx, body []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
