package billing

import (
	"context"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/catalog"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
)

// InvoiceTxRunner ejecuta una función dentro de una transacción con el repositorio de facturas atado a ella.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// CatalogLoader entrega el snapshot en memoria del catálogo de la empresa.
// Lo implementa *catalog.Service.
type CatalogLoader interface {
	Load(ctx context.Context, companyID string) (*catalog.Snapshot, error)
}
