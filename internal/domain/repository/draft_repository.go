package repository

import (
	"context"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
)

// DraftRepository almacén de borradores de factura. Los borradores expiran si
// nadie los vuelve a guardar dentro del TTL configurado.
type DraftRepository interface {
	Save(ctx context.Context, draft *entity.Draft) error
	GetByID(ctx context.Context, id string) (*entity.Draft, error)
	Delete(ctx context.Context, id string) error
}
