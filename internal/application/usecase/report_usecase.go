package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/application/dto"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

// Valores por defecto de los reportes.
const (
	DefaultLowStockThreshold = 5
	DefaultTopSellingLimit   = 5
)

// ReportUseCase reportes de inventario y ventas (solo lectura).
type ReportUseCase struct {
	repo              repository.ReportRepository
	lowStockThreshold int
	topSellingLimit   int
}

// NewReportUseCase construye el caso de uso. Valores <= 0 usan los defaults.
func NewReportUseCase(repo repository.ReportRepository, lowStockThreshold, topSellingLimit int) *ReportUseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	if topSellingLimit <= 0 {
		topSellingLimit = DefaultTopSellingLimit
	}
	return &ReportUseCase{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		topSellingLimit:   topSellingLimit,
	}
}

// InventoryByQuantity inventario completo ordenado por cantidad descendente.
func (uc *ReportUseCase) InventoryByQuantity(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	list, err := uc.repo.InventoryByQuantity(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemDTO, 0, len(list))
	for _, p := range list {
		items = append(items, toInventoryItem(p))
	}
	return items, nil
}

// TotalRevenue suma de TotalPrice de todas las ventas.
func (uc *ReportUseCase) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return uc.repo.TotalRevenue(ctx)
}

// TopSellingProducts ranking por unidades vendidas. limit <= 0 usa el configurado.
func (uc *ReportUseCase) TopSellingProducts(ctx context.Context, limit int) ([]dto.TopSellingProductDTO, error) {
	if limit <= 0 {
		limit = uc.topSellingLimit
	}
	rows, err := uc.repo.TopSellingProducts(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSellingProductDTO, 0, len(rows))
	for i, r := range rows {
		out = append(out, dto.TopSellingProductDTO{
			Rank:      i + 1,
			ProductID: r.ProductID,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue,
		})
	}
	return out, nil
}

// LowStock productos con Quantity < threshold. threshold <= 0 usa el configurado (5).
func (uc *ReportUseCase) LowStock(ctx context.Context, threshold int) (*dto.LowStockReportDTO, error) {
	if threshold <= 0 {
		threshold = uc.lowStockThreshold
	}
	list, err := uc.repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemDTO, 0, len(list))
	for _, p := range list {
		items = append(items, toInventoryItem(p))
	}
	return &dto.LowStockReportDTO{Threshold: threshold, Items: items}, nil
}

// Summary arma los cuatro reportes con los valores configurados.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.ReportSummaryDTO, error) {
	inv, err := uc.InventoryByQuantity(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.TopSellingProducts(ctx, 0)
	if err != nil {
		return nil, err
	}
	low, err := uc.LowStock(ctx, 0)
	if err != nil {
		return nil, err
	}
	return &dto.ReportSummaryDTO{
		Inventory:    inv,
		TotalRevenue: revenue,
		TopSelling:   top,
		LowStock:     *low,
	}, nil
}
