package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/inventory"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

// RegisterSaleUseCase registra ventas de forma transaccional: bloqueo de fila
// (SELECT FOR UPDATE), guard de stock, venta, descuento de cantidad y fila en el libro.
// Es el único responsable del descuento por venta; no existe un segundo disparador.
type RegisterSaleUseCase struct {
	txRunner TxRunner
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner}
}

// RegisterSale vende quantity unidades del producto. Si el stock no alcanza devuelve
// domain.ErrInsufficientStockForSale y no escribe nada (ni venta, ni cantidad, ni libro).
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, productID string, quantity int) (*entity.Sale, error) {
	if productID == "" {
		return nil, domain.Invalid("product_id", "es requerido")
	}
	if quantity <= 0 {
		return nil, domain.Invalid("quantity_sold", "debe ser mayor que cero")
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := lockProduct(ctx, productRepo, productID)
		if err != nil {
			return err
		}
		if err := inventory.CheckSaleAvailability(product, quantity); err != nil {
			return err
		}

		now := time.Now()
		s := &entity.Sale{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			QuantitySold: quantity,
			TotalPrice:   product.Price.Mul(decimal.NewFromInt(int64(quantity))),
			SaleDate:     now,
		}
		if err := s.Validate(); err != nil {
			return err
		}
		if err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		if _, err := applyStockChange(ctx, productRepo, txRepo, product, -quantity, entity.TransactionTypeSALE, now); err != nil {
			return err
		}
		sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateStockAfterSale descuenta quantitySold del producto y agrega la fila del libro, sin
// crear una venta. Para stock insuficiente devuelve domain.ErrInsufficientStockForUpdate.
// No debe llamarse después de RegisterSale: esa operación ya descuenta el stock.
func (uc *RegisterSaleUseCase) UpdateStockAfterSale(ctx context.Context, productID string, quantitySold int) (*entity.StockTransaction, error) {
	if productID == "" {
		return nil, domain.Invalid("product_id", "es requerido")
	}
	if quantitySold <= 0 {
		return nil, domain.Invalid("quantity_sold", "debe ser mayor que cero")
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
		ledger, err = applyStockChange(ctx, productRepo, txRepo, product, -quantitySold, entity.TransactionTypeSALE, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func notFound(productID string) error {
	return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
}
