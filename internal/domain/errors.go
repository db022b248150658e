package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrInsufficientStockForUpdate: la cantidad resultante de un producto sería negativa.
	ErrInsufficientStockForUpdate = fmt.Errorf("%w para la actualización", ErrInsufficientStock)
	// ErrInsufficientStockForSale: la venta pide más unidades de las disponibles.
	ErrInsufficientStockForSale = fmt.Errorf("%w para la venta", ErrInsufficientStock)
)

// Operaciones que reportan StockError.
const (
	OpUpdate = "update"
	OpSale   = "sale"
)

// StockError detalle legible de un rechazo por stock. Unwrap devuelve el sentinel
// correspondiente, por lo que errors.Is(err, ErrInsufficientStockForSale) funciona.
type StockError struct {
	Op        string
	ProductID string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	if e.Op == OpSale {
		return fmt.Sprintf("%s: producto %s tiene %d unidades, se solicitaron %d",
			ErrInsufficientStockForSale, e.ProductID, e.Available, e.Requested)
	}
	return fmt.Sprintf("%s: producto %s quedaría con %d unidades",
		ErrInsufficientStockForUpdate, e.ProductID, e.Available-e.Requested)
}

func (e *StockError) Unwrap() error {
	if e.Op == OpSale {
		return ErrInsufficientStockForSale
	}
	return ErrInsufficientStockForUpdate
}

// ValidationError campo que no cumple una restricción declarativa del esquema.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
