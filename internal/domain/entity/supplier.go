package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/stockledger/internal/domain"
)

// Supplier proveedor de uno o varios productos.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Email     string
	Address   string
	CreatedAt time.Time
}

// Validate aplica las restricciones de la tabla suppliers.
func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return domain.Invalid("name", "es requerido")
	}
	for _, f := range []struct{ name, value string }{
		{"name", s.Name}, {"contact", s.Contact}, {"email", s.Email},
	} {
		if err := checkLength(f.name, f.value, MaxNameLength); err != nil {
			return err
		}
	}
	return nil
}
