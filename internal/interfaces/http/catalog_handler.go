package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/dto"
)

// CatalogLister catálogo de la empresa para el selector de ítems. Lo implementa *catalog.Service.
type CatalogLister interface {
	List(ctx context.Context, companyID string) (*dto.CatalogListResponse, error)
}

// CatalogHandler expone el catálogo de ítems (protegido).
type CatalogHandler struct {
	catalog CatalogLister
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog CatalogLister) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List godoc
// @Summary      Listar catálogo de ítems
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/catalog/items [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.catalog.List(c.Context(), companyID)
	if err != nil {
		return respondError(c, err, "catálogo no encontrado")
	}
	return c.JSON(out)
}
