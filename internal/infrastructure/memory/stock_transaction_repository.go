package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo libro de stock en memoria (append-only).
type StockTransactionRepo struct {
	at accessor
}

func (r *StockTransactionRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	return r.at(func(st *state) error {
		if _, ok := st.products[tx.ProductID]; !ok {
			return fmt.Errorf("producto %s: %w", tx.ProductID, domain.ErrNotFound)
		}
		st.transactions = append(st.transactions, *tx)
		return nil
	})
}

// ListByProduct devuelve los movimientos del más reciente al más antiguo.
func (r *StockTransactionRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	err := r.at(func(st *state) error {
		for i := len(st.transactions) - 1; i >= 0; i-- {
			if t := st.transactions[i]; t.ProductID == productID {
				list = append(list, &t)
			}
		}
		return nil
	})
	return page(list, limit, offset), err
}

func (r *StockTransactionRepo) SumByProduct(_ context.Context, productID string) (int, error) {
	total := 0
	err := r.at(func(st *state) error {
		for _, t := range st.transactions {
			if t.ProductID == productID {
				total += t.QuantityChange
			}
		}
		return nil
	})
	return total, err
}
