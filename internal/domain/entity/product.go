package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/domain"
)

// Product producto del inventario. Quantity es el stock disponible y solo lo modifica
// el motor de inventario (ventas y ajustes), nunca una actualización de catálogo.
type Product struct {
	ID         string
	Name       string
	Category   string
	Price      decimal.Decimal // precio unitario de venta
	Quantity   int             // siempre >= 0
	SupplierID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate aplica las restricciones de la tabla products.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Invalid("name", "es requerido")
	}
	if err := checkLength("name", p.Name, MaxNameLength); err != nil {
		return err
	}
	if err := checkLength("category", p.Category, MaxCategoryLength); err != nil {
		return err
	}
	if err := checkMoney("price", p.Price, maxPrice); err != nil {
		return err
	}
	if p.Quantity < 0 {
		return domain.Invalid("quantity", "no puede ser negativa")
	}
	if err := checkQuantity("quantity", p.Quantity); err != nil {
		return err
	}
	if p.SupplierID == "" {
		return domain.Invalid("supplier_id", "es requerido")
	}
	return nil
}
