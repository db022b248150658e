package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	at accessor
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return r.at(func(st *state) error {
		if _, ok := st.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		if _, ok := st.suppliers[product.SupplierID]; !ok {
			return fmt.Errorf("proveedor %s: %w", product.SupplierID, domain.ErrNotFound)
		}
		st.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.at(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: Store.Run ya serializa las transacciones.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.at(func(st *state) error {
		cur, ok := st.products[product.ID]
		if !ok {
			return fmt.Errorf("producto %s: %w", product.ID, domain.ErrNotFound)
		}
		if _, ok := st.suppliers[product.SupplierID]; !ok {
			return fmt.Errorf("proveedor %s: %w", product.SupplierID, domain.ErrNotFound)
		}
		cur.Name = product.Name
		cur.Category = product.Category
		cur.Price = product.Price
		cur.SupplierID = product.SupplierID
		cur.UpdatedAt = product.UpdatedAt
		st.products[product.ID] = cur
		return nil
	})
}

func (r *ProductRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("producto %s cantidad %d: %w", id, quantity, domain.ErrInsufficientStockForUpdate)
	}
	return r.at(func(st *state) error {
		cur, ok := st.products[id]
		if !ok {
			return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		cur.Quantity = quantity
		cur.UpdatedAt = time.Now()
		st.products[id] = cur
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	list, err := r.all(func(entity.Product) bool { return true })
	sort.Slice(list, func(i, j int) bool { return byNameID(list[i], list[j]) })
	return page(list, limit, offset), err
}

func (r *ProductRepo) ListBySupplier(_ context.Context, supplierID string) ([]*entity.Product, error) {
	list, err := r.all(func(p entity.Product) bool { return p.SupplierID == supplierID })
	sort.Slice(list, func(i, j int) bool { return byNameID(list[i], list[j]) })
	return list, err
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.at(func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		for _, t := range st.transactions {
			if t.ProductID == id {
				return fmt.Errorf("producto %s tiene movimientos: %w", id, domain.ErrConflict)
			}
		}
		for _, s := range st.sales {
			if s.ProductID == id {
				return fmt.Errorf("producto %s tiene ventas: %w", id, domain.ErrConflict)
			}
		}
		delete(st.products, id)
		return nil
	})
}

func (r *ProductRepo) all(keep func(entity.Product) bool) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.at(func(st *state) error {
		for _, p := range st.products {
			if keep(p) {
				p := p
				list = append(list, &p)
			}
		}
		return nil
	})
	return list, err
}

// byNameID mismo orden que ORDER BY name, id.
func byNameID(a, b *entity.Product) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}
