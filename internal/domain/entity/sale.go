package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/domain"
)

// Sale venta de un producto (append-only).
type Sale struct {
	ID           string
	ProductID    string
	QuantitySold int             // > 0
	TotalPrice   decimal.Decimal // Price * QuantitySold al momento de la venta
	SaleDate     time.Time
}

// Validate aplica las restricciones de la tabla sales.
func (s *Sale) Validate() error {
	if s.ProductID == "" {
		return domain.Invalid("product_id", "es requerido")
	}
	if s.QuantitySold <= 0 {
		return domain.Invalid("quantity_sold", "debe ser mayor que cero")
	}
	if err := checkQuantity("quantity_sold", s.QuantitySold); err != nil {
		return err
	}
	if err := checkMoney("total_price", s.TotalPrice, maxTotalPrice); err != nil {
		return err
	}
	return nil
}
