package repository

import (
	"context"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de clientes (contraparte de la factura).
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
}
