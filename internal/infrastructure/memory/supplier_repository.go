package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores en memoria.
type SupplierRepo struct {
	at accessor
}

func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	return r.at(func(st *state) error {
		if _, ok := st.suppliers[supplier.ID]; ok {
			return domain.ErrDuplicate
		}
		st.suppliers[supplier.ID] = *supplier
		return nil
	})
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.at(func(st *state) error {
		if s, ok := st.suppliers[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *SupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	return r.at(func(st *state) error {
		cur, ok := st.suppliers[supplier.ID]
		if !ok {
			return fmt.Errorf("proveedor %s: %w", supplier.ID, domain.ErrNotFound)
		}
		supplier.CreatedAt = cur.CreatedAt
		st.suppliers[supplier.ID] = *supplier
		return nil
	})
}

func (r *SupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	err := r.at(func(st *state) error {
		for _, s := range st.suppliers {
			s := s
			list = append(list, &s)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return page(list, limit, offset), err
}

func (r *SupplierRepo) Delete(_ context.Context, id string) error {
	return r.at(func(st *state) error {
		if _, ok := st.suppliers[id]; !ok {
			return fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
		}
		for _, p := range st.products {
			if p.SupplierID == id {
				return fmt.Errorf("proveedor %s tiene productos: %w", id, domain.ErrConflict)
			}
		}
		delete(st.suppliers, id)
		return nil
	})
}
