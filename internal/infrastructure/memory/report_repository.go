package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/inventory"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo reportes calculados sobre el estado en memoria.
type ReportRepo struct {
	at accessor
}

func (r *ReportRepo) InventoryByQuantity(_ context.Context) ([]*entity.Product, error) {
	list, err := r.products(func(entity.Product) bool { return true })
	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity != list[j].Quantity {
			return list[i].Quantity > list[j].Quantity
		}
		return byNameID(list[i], list[j])
	})
	return list, err
}

func (r *ReportRepo) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.at(func(st *state) error {
		for _, s := range st.sales {
			total = total.Add(s.TotalPrice)
		}
		return nil
	})
	return total, err
}

func (r *ReportRepo) TopSellingProducts(_ context.Context, limit int) ([]repository.TopSellingResult, error) {
	var out []repository.TopSellingResult
	err := r.at(func(st *state) error {
		byProduct := make(map[string]*repository.TopSellingResult)
		for _, s := range st.sales {
			row, ok := byProduct[s.ProductID]
			if !ok {
				row = &repository.TopSellingResult{
					ProductID: s.ProductID,
					Name:      st.products[s.ProductID].Name,
					Revenue:   decimal.Zero,
				}
				byProduct[s.ProductID] = row
			}
			row.UnitsSold += s.QuantitySold
			row.Revenue = row.Revenue.Add(s.TotalPrice)
		}
		for _, row := range byProduct {
			out = append(out, *row)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitsSold != out[j].UnitsSold {
			return out[i].UnitsSold > out[j].UnitsSold
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (r *ReportRepo) LowStock(_ context.Context, threshold int) ([]*entity.Product, error) {
	list, err := r.products(func(p entity.Product) bool { return inventory.IsLowStock(p.Quantity, threshold) })
	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity != list[j].Quantity {
			return list[i].Quantity < list[j].Quantity
		}
		return byNameID(list[i], list[j])
	})
	return list, err
}

func (r *ReportRepo) products(keep func(entity.Product) bool) ([]*entity.Product, error) {
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
