package repository

import (
	"context"

	"github.com/jhoicas/stockledger/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas (append-only).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Sale, error)
}
