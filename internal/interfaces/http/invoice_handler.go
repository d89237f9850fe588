package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/application/dto"
	"github.com/jhoicas/invoice-builder/internal/domain"
)

// InvoiceHandler maneja los eventos del formulario de factura: cada petición es una
// acción del usuario sobre un formulario abierto.
type InvoiceHandler struct {
	uc           *billing.InvoiceUseCase
	maxSignature int64
}

// NewInvoiceHandler construye el handler. maxSignature <= 0 no limita la lectura.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, maxSignature int64) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, maxSignature: maxSignature}
}

// Create godoc
// @Summary      Abrir formulario de factura
// @Description  Crea un formulario nuevo con una línea por defecto (cantidad 1, impuesto 18%).
// @Tags         invoices
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Router       /api/sessions [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.Create(c.Context()))
}

// Get godoc
// @Summary      Obtener formulario
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id} [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Descartar formulario
// @Tags         invoices
// @Param        id   path  string  true  "ID del formulario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetHeaderField godoc
// @Summary      Editar campo de cabecera
// @Description  Campos: seller_*, billing_*, shipping_*, place_of_supply, order_number, order_date, invoice_number, invoice_date (YYYY-MM-DD), reverse_charge (Yes/No).
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "ID del formulario"
// @Param        body  body      dto.SetFieldRequest  true  "field y value"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/header [patch]
func (h *InvoiceHandler) SetHeaderField(c *fiber.Ctx) error {
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetHeaderField(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddLineItem godoc
// @Summary      Agregar línea
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      201  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/items [post]
func (h *InvoiceHandler) AddLineItem(c *fiber.Ctx) error {
	out, err := h.uc.AddLineItem(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetLineItemField godoc
// @Summary      Editar campo de una línea
// @Description  Campos: description, unit_price, quantity, discount_percent, tax_rate_percent. net_amount es calculado.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "ID del formulario"
// @Param        pos   path      int                  true  "Posición de la línea (base cero)"
// @Param        body  body      dto.SetFieldRequest  true  "field y value"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/items/{pos} [patch]
func (h *InvoiceHandler) SetLineItemField(c *fiber.Ctx) error {
	pos, err := c.ParamsInt("pos")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "posición inválida"})
	}
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetLineItemField(c.Context(), c.Params("id"), pos, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLineItem godoc
// @Summary      Quitar línea
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Param        pos  path      int     true  "Posición de la línea (base cero)"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/items/{pos} [delete]
func (h *InvoiceHandler) RemoveLineItem(c *fiber.Ctx) error {
	pos, err := c.ParamsInt("pos")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "posición inválida"})
	}
	out, err := h.uc.RemoveLineItem(c.Context(), c.Params("id"), pos)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadSignature godoc
// @Summary      Subir imagen de firma
// @Description  Acepta PNG o JPEG. Otro tipo se rechaza y la firma previa se conserva.
// @Tags         invoices
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      string  true  "ID del formulario"
// @Param        signature  formData  file    true  "Imagen PNG/JPEG"
// @Success      200  {object}  dto.SessionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/signature [put]
func (h *InvoiceHandler) UploadSignature(c *fiber.Ctx) error {
	fh, err := c.FormFile("signature")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo 'signature' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxSignature > 0 {
		// Un byte de más basta para que el caso de uso detecte el exceso.
		r = io.LimitReader(f, h.maxSignature+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}

	out, err := h.uc.UploadSignature(c.Context(), c.Params("id"), data, fh.Header.Get("Content-Type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ClearSignature godoc
// @Summary      Quitar imagen de firma
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/signature [delete]
func (h *InvoiceHandler) ClearSignature(c *fiber.Ctx) error {
	out, err := h.uc.ClearSignature(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TogglePreview godoc
// @Summary      Alternar vista previa
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/preview [post]
func (h *InvoiceHandler) TogglePreview(c *fiber.Ctx) error {
	out, err := h.uc.TogglePreview(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Checks godoc
// @Summary      Validar formatos de la factura
// @Description  Avisos sobre PAN, GSTIN, códigos de estado, orden de fechas y rangos de las líneas. No bloquean la exportación.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.ChecksResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/checks [get]
func (h *InvoiceHandler) Checks(c *fiber.Ctx) error {
	out, err := h.uc.Checks(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// writeError traduce los errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "formulario no encontrado"})
	case errors.Is(err, domain.ErrLineItemOutOfRange):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedSignatureType):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: domain.SignatureTypeMessage})
	case errors.Is(err, domain.ErrSignatureTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidNumber),
		errors.Is(err, domain.ErrUnknownField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
