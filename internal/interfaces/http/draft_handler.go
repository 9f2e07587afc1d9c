package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/billing"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/dto"
)

const draftNotFound = "borrador, línea o ítem no encontrado"

// DraftHandler edición de borradores de factura línea a línea (protegido).
type DraftHandler struct {
	uc *billing.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *billing.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Create godoc
// @Summary      Crear borrador de factura
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDraftRequest  false  "Cliente opcional"
// @Success      201   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateDraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Create(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err, "empresa o cliente no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener borrador
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Get(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err, draftNotFound)
	}
	return c.JSON(out)
}

// Discard godoc
// @Summary      Descartar borrador
// @Tags         drafts
// @Security     Bearer
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [delete]
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	if err := h.uc.Discard(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err, draftNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLine godoc
// @Summary      Agregar línea vacía
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      201  {object}  dto.DraftLineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/lines [post]
func (h *DraftHandler) AddLine(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.AddLine(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err, draftNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SelectItem godoc
// @Summary      Seleccionar ítem de catálogo para la línea
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string                 true  "ID del borrador"
// @Param        lineId  path  string                 true  "ID de la línea"
// @Param        body    body  dto.SelectItemRequest  true  "Ítem"
// @Success      200     {object}  dto.DraftLineResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/lines/{lineId}/item [put]
func (h *DraftHandler) SelectItem(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.SelectItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SelectItem(c.Context(), companyID, c.Params("id"), c.Params("lineId"), in)
	if err != nil {
		return respondError(c, err, draftNotFound)
	}
	return c.JSON(out)
}

// EditLine godoc
// @Summary      Editar un campo de la línea
// @Description  Recalcula importe, impuesto y total cuando cambia cantidad, tarifa, descuento o tasa.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "ID del borrador"
// @Param        lineId  path  string               true  "ID de la línea"
// @Param        body    body  dto.EditLineRequest  true  "Campo y valor"
// @Success      200     {object}  dto.DraftLineResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/lines/{lineId} [patch]
func (h *DraftHandler) EditLine(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.EditLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.EditLine(c.Context(), companyID, c.Params("id"), c.Params("lineId"), in)
	if err != nil {
		return respondError(c, err, draftNotFound)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar línea
// @Tags         drafts
// @Security     Bearer
// @Param        id      path  string  true  "ID del borrador"
// @Param        lineId  path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/lines/{lineId} [delete]
func (h *DraftHandler) RemoveLine(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	if err := h.uc.RemoveLine(c.Context(), companyID, c.Params("id"), c.Params("lineId")); err != nil {
		return respondError(c, err, draftNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Submit godoc
// @Summary      Emitir factura desde el borrador
// @Description  Valida todas las líneas; con errores responde 422 con los mensajes por línea y campo.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true   "ID del borrador"
// @Param        body  body  dto.SubmitDraftRequest  false  "Numeración y fecha"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.SubmitDraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Submit(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, draftNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
