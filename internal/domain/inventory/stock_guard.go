package inventory

import (
	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
)

// EnsureNonNegative valida una actualización de cantidad antes de aplicarla:
// current + delta no puede quedar por debajo de cero ni superar entity.MaxQuantity.
// Devuelve la cantidad resultante.
func EnsureNonNegative(productID string, current, delta int) (int, error) {
	// Rango comprobado antes de sumar: current + delta no debe desbordar int.
	if delta > entity.MaxQuantity || delta < -entity.MaxQuantity || current > entity.MaxQuantity-delta {
		return current, domain.Invalid("quantity_change", "deja la cantidad fuera de rango")
	}
	next := current + delta
	if next < 0 {
		return current, &domain.StockError{
			Op:        domain.OpUpdate,
			ProductID: productID,
			Available: current,
			Requested: -delta,
		}
	}
	return next, nil
}

// CheckSaleAvailability compara la cantidad pedida con el stock actual del producto
// (ya bloqueado por el caller). No modifica el producto.
func CheckSaleAvailability(product *entity.Product, quantity int) error {
	if quantity <= 0 {
		return domain.Invalid("quantity_sold", "debe ser mayor que cero")
	}
	if product.Quantity < quantity {
		return &domain.StockError{
			Op:        domain.OpSale,
			ProductID: product.ID,
			Available: product.Quantity,
			Requested: quantity,
		}
	}
	return nil
}

// IsLowStock indica si la cantidad está por debajo del umbral de reposición.
func IsLowStock(quantity, threshold int) bool {
	return quantity < threshold
}
