package entity

import (
	"time"

	"github.com/jhoicas/stockledger/internal/domain"
)

// Tipos de movimiento del libro de stock.
const (
	TransactionTypeINITIAL    = "INITIAL"    // cantidad inicial al crear el producto
	TransactionTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual (+/-)
	TransactionTypeSALE       = "SALE"       // salida por venta
)

// StockTransaction fila del libro de stock (append-only). QuantityChange es con signo:
// positivo entrada, negativo salida.
type StockTransaction struct {
	ID             string
	ProductID      string
	QuantityChange int
	Type           string
	Date           time.Time
}

// Validate aplica las restricciones de la tabla stock_transactions.
func (t *StockTransaction) Validate() error {
	if t.ProductID == "" {
		return domain.Invalid("product_id", "es requerido")
	}
	if err := checkQuantity("quantity_change", t.QuantityChange); err != nil {
		return err
	}
	switch t.Type {
	case TransactionTypeINITIAL:
		if t.QuantityChange <= 0 {
			return domain.Invalid("quantity_change", "debe ser positiva en un movimiento inicial")
		}
	case TransactionTypeADJUSTMENT:
		if t.QuantityChange == 0 {
			return domain.Invalid("quantity_change", "no puede ser cero")
		}
	case TransactionTypeSALE:
		if t.QuantityChange >= 0 {
			return domain.Invalid("quantity_change", "debe ser negativa en una venta")
		}
	default:
		return domain.Invalid("type", "desconocido")
	}
	return nil
}
