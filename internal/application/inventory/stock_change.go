package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/inventory"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

// applyStockChange es el único camino que modifica Product.Quantity: pasa por el guard de
// stock no negativo, actualiza la cantidad y agrega exactamente una fila al libro.
// El producto debe venir bloqueado (GetForUpdate) dentro de la misma transacción.
func applyStockChange(
	ctx context.Context,
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
	product *entity.Product,
	delta int,
	txType string,
	now time.Time,
) (*entity.StockTransaction, error) {
	next, err := inventory.EnsureNonNegative(product.ID, product.Quantity, delta)
	if err != nil {
		return nil, err
	}
	ledger := &entity.StockTransaction{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		QuantityChange: delta,
		Type:           txType,
		Date:           now,
	}
	if err := ledger.Validate(); err != nil {
		return nil, err
	}
	if err := productRepo.UpdateQuantity(ctx, product.ID, next); err != nil {
		return nil, err
	}
	product.Quantity = next
	product.UpdatedAt = now
	if err := txRepo.Create(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// lockProduct bloquea la fila del producto o devuelve domain.ErrNotFound.
func lockProduct(ctx context.Context, productRepo repository.ProductRepository, productID string) (*entity.Product, error) {
	product, err := productRepo.GetForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound(productID)
	}
	return product, nil
}
