package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es el stock inicial y
// queda registrado como movimiento INITIAL.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=100"`
	Category   string          `json:"category" validate:"max=50"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity" validate:"min=0,max=2147483647"`
	SupplierID string          `json:"supplier_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity: el stock se
// maneja solo vía ventas y ajustes).
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Category   *string          `json:"category" validate:"omitempty,max=50"`
	Price      *decimal.Decimal `json:"price"`
	SupplierID *string          `json:"supplier_id" validate:"omitempty,min=1"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	SupplierID string          `json:"supplier_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
