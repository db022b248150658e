package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransactionResponse fila del libro de stock.
type StockTransactionResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	QuantityChange int       `json:"quantity_change"`
	Type           string    `json:"type"`
	Date           time.Time `json:"date"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	SaleDate     time.Time       `json:"sale_date"`
}
