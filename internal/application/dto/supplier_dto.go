package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Contact string `json:"contact" validate:"max=100"`
	Email   string `json:"email" validate:"omitempty,email,max=100"`
	Address string `json:"address" validate:"max=255"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (campos opcionales).
type UpdateSupplierRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Contact *string `json:"contact" validate:"omitempty,max=100"`
	Email   *string `json:"email" validate:"omitempty,email,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
