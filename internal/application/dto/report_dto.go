package dto

import "github.com/shopspring/decimal"

// InventoryItemDTO producto en los reportes de inventario.
type InventoryItemDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Value     decimal.Decimal `json:"value"` // Price * Quantity
}

// TopSellingProductDTO producto en el ranking de ventas.
type TopSellingProductDTO struct {
	Rank      int             `json:"rank"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// LowStockReportDTO productos bajo el umbral de stock.
type LowStockReportDTO struct {
	Threshold int                `json:"threshold"`
	Items     []InventoryItemDTO `json:"items"`
}

// ReportSummaryDTO los cuatro reportes en una sola estructura.
type ReportSummaryDTO struct {
	Inventory    []InventoryItemDTO     `json:"inventory"`
	TotalRevenue decimal.Decimal        `json:"total_revenue"`
	TopSelling   []TopSellingProductDTO `json:"top_selling"`
	LowStock     LowStockReportDTO      `json:"low_stock"`
}
