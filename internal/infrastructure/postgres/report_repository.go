package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de reportes (solo lectura) sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

func (r *ReportRepo) InventoryByQuantity(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY quantity DESC, name, id`
	return queryProducts(ctx, r.q, query)
}

func (r *ReportRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM sales`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// TopSellingProducts agrupa ventas por producto; desempate por nombre para un orden estable.
func (r *ReportRepo) TopSellingProducts(ctx context.Context, limit int) ([]repository.TopSellingResult, error) {
	query := `
		SELECT p.id, p.name, SUM(s.quantity_sold) AS units, SUM(s.total_price) AS revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.id, p.name
		ORDER BY units DESC, p.name, p.id
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	defer rows.Close()
	var out []repository.TopSellingResult
	for rows.Next() {
		var res repository.TopSellingResult
		if err := rows.Scan(&res.ProductID, &res.Name, &res.UnitsSold, &res.Revenue); err != nil {
			return nil, fmt.Errorf("scan top selling: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *ReportRepo) LowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity < $1 ORDER BY quantity, name, id`
	return queryProducts(ctx, r.q, query, threshold)
}
