package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

// AdjustStockUseCase ajustes manuales de inventario (entradas o mermas).
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustStock suma delta (positivo o negativo) a la cantidad del producto y registra un
// movimiento ADJUSTMENT. Un ajuste que deje el stock negativo se rechaza completo.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, productID string, delta int) (*entity.StockTransaction, error) {
	if productID == "" {
		return nil, domain.Invalid("product_id", "es requerido")
	}
	if delta == 0 {
		return nil, domain.Invalid("quantity_change", "no puede ser cero")
	}

	var ledger *entity.StockTransaction
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
		_ repository.SaleRepository,
	) error {
		product, err := lockProduct(ctx, productRepo, productID)
		if err != nil {
			return err
		}
		ledger, err = applyStockChange(ctx, productRepo, txRepo, product, delta, entity.TransactionTypeADJUSTMENT, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}
