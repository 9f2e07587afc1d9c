package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/billing"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/dto"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. notFound es el mensaje
// para ErrNotFound en el contexto del handler.
func respondError(c *fiber.Ctx, err error, notFound string) error {
	var verr *billing.ValidationError
	switch {
	case errors.As(err, &verr):
		out := dto.ValidationErrorResponse{
			Code:       "VALIDATION",
			Message:    "el borrador tiene líneas inválidas",
			Violations: make(map[string]map[string]string, len(verr.Lines)),
		}
		for lineID, v := range verr.Lines {
			out.Violations[lineID] = v
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(out)
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "número de factura ya existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}
