package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/application/dto"
	"github.com/jhoicas/stockledger/internal/domain/entity"
)

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Email:     s.Email,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Quantity:   p.Quantity,
		SupplierID: p.SupplierID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toStockTransactionResponse(t *entity.StockTransaction) dto.StockTransactionResponse {
	return dto.StockTransactionResponse{
		ID:             t.ID,
		ProductID:      t.ProductID,
		QuantityChange: t.QuantityChange,
		Type:           t.Type,
		Date:           t.Date,
	}
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		QuantitySold: s.QuantitySold,
		TotalPrice:   s.TotalPrice,
		SaleDate:     s.SaleDate,
	}
}

func toInventoryItem(p *entity.Product) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Quantity:  p.Quantity,
		Price:     p.Price,
		Value:     p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))),
	}
}
