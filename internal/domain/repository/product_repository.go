package repository

import (
	"context"

	"github.com/jhoicas/stockledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update modifica datos de catálogo; nunca la cantidad.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity fija la cantidad en stock. Rechaza valores negativos con
	// domain.ErrInsufficientStockForUpdate.
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
