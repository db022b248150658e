package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria (append-only).
type SaleRepo struct {
	at accessor
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if err := sale.Validate(); err != nil {
		return err
	}
	return r.at(func(st *state) error {
		if _, ok := st.products[sale.ProductID]; !ok {
			return fmt.Errorf("producto %s: %w", sale.ProductID, domain.ErrNotFound)
		}
		st.sales = append(st.sales, *sale)
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.at(func(st *state) error {
		for _, s := range st.sales {
			if s.ID == id {
				s := s
				out = &s
				return nil
			}
		}
		return nil
	})
	return out, err
}

// ListByProduct devuelve las ventas de la más reciente a la más antigua.
func (r *SaleRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.Sale, error) {
	var list []*entity.Sale
	err := r.at(func(st *state) error {
		for i := len(st.sales) - 1; i >= 0; i-- {
			if s := st.sales[i]; s.ProductID == productID {
				list = append(list, &s)
			}
		}
		return nil
	})
	return page(list, limit, offset), err
}
