package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/billing"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog   CatalogLister
	DraftUC   *billing.DraftUseCase
	InvoiceUC *billing.InvoiceUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(jwt.RoleAdmin, jwt.RoleAccountant, jwt.RoleStaff)
	issuers := RequireRole(jwt.RoleAdmin, jwt.RoleAccountant)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.Catalog)
	protected.Get("/catalog/items", anyRole, catalogHandler.List)

	// Borradores de factura
	drafts := protected.Group("/drafts", anyRole)
	draftHandler := NewDraftHandler(deps.DraftUC)
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Delete("/:id", draftHandler.Discard)
	drafts.Post("/:id/lines", draftHandler.AddLine)
	drafts.Put("/:id/lines/:lineId/item", draftHandler.SelectItem)
	drafts.Patch("/:id/lines/:lineId", draftHandler.EditLine)
	drafts.Delete("/:id/lines/:lineId", draftHandler.RemoveLine)
	drafts.Post("/:id/submit", issuers, draftHandler.Submit)

	// Facturas emitidas
	invoices := protected.Group("/invoices", anyRole)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/:id", invoiceHandler.GetByID)
}
