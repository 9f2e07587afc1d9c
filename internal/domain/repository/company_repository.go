package repository

import (
	"context"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
