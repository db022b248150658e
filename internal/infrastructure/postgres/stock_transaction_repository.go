package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo libro de stock sobre PostgreSQL. Solo INSERT y SELECT.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

func (r *StockTransactionRepo) Create(ctx context.Context, t *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, quantity_change, type, transaction_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, t.ID, t.ProductID, t.QuantityChange, t.Type, t.Date)
	if err != nil {
		return mapInsertError(err, "insert stock transaction")
	}
	return nil
}

// ListByProduct devuelve los movimientos del producto, más recientes primero.
func (r *StockTransactionRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, product_id, quantity_change, type, transaction_date
		FROM stock_transactions WHERE product_id = $1
		ORDER BY transaction_date DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.QuantityChange, &t.Type, &t.Date); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *StockTransactionRepo) SumByProduct(ctx context.Context, productID string) (int, error) {
	var sum int
	query := `SELECT COALESCE(SUM(quantity_change), 0) FROM stock_transactions WHERE product_id = $1`
	if err := r.q.QueryRow(ctx, query, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum stock transactions: %w", err)
	}
	return sum, nil
}
