package repository

import (
	"context"

	"github.com/jhoicas/stockledger/internal/domain/entity"
)

// StockTransactionRepository puerto del libro de stock. Solo inserta y consulta.
type StockTransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error)
	// SumByProduct suma QuantityChange del producto; debe coincidir con Product.Quantity.
	SumByProduct(ctx context.Context, productID string) (int, error)
}
