package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/domain/entity"
)

// TopSellingResult fila cruda del ranking de productos más vendidos.
type TopSellingResult struct {
	ProductID string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
}

// ReportRepository consultas de solo lectura para los reportes de inventario y ventas.
type ReportRepository interface {
	// InventoryByQuantity devuelve todos los productos ordenados por cantidad descendente.
	InventoryByQuantity(ctx context.Context) ([]*entity.Product, error)

	// TotalRevenue suma TotalPrice de todas las ventas (cero si no hay ventas).
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// TopSellingProducts devuelve los `limit` productos con más unidades vendidas.
	TopSellingProducts(ctx context.Context, limit int) ([]TopSellingResult, error)

	// LowStock devuelve los productos con Quantity < threshold.
	LowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
}
