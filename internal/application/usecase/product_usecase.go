package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockledger/internal/application/dto"
	"github.com/jhoicas/stockledger/internal/application/inventory"
	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo para productos. Quantity solo cambia vía
// ventas y ajustes (paquete inventory); Update nunca la toca.
type ProductUseCase struct {
	txRunner     inventory.TxRunner
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
	ledgerRepo   repository.StockTransactionRepository
	saleRepo     repository.SaleRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	repo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	ledgerRepo repository.StockTransactionRepository,
	saleRepo repository.SaleRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:     txRunner,
		repo:         repo,
		supplierRepo: supplierRepo,
		ledgerRepo:   ledgerRepo,
		saleRepo:     saleRepo,
	}
}

// Create crea un producto. Si trae cantidad inicial se registra un movimiento INITIAL
// en la misma transacción, de modo que el libro siempre suma la cantidad del producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := uc.ensureSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Category:   in.Category,
		Price:      in.Price,
		Quantity:   in.Quantity,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
		_ repository.SaleRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if product.Quantity == 0 {
			return nil
		}
		return txRepo.Create(ctx, &entity.StockTransaction{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			QuantityChange: product.Quantity,
			Type:           entity.TransactionTypeINITIAL,
			Date:           now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza datos de catálogo. Devuelve nil si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.SupplierID != nil && *in.SupplierID != product.SupplierID {
		if err := uc.ensureSupplier(ctx, *in.SupplierID); err != nil {
			return nil, err
		}
		product.SupplierID = *in.SupplierID
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListBySupplier productos de un proveedor.
func (uc *ProductUseCase) ListBySupplier(ctx context.Context, supplierID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Ledger movimientos de stock del producto, del más reciente al más antiguo.
func (uc *ProductUseCase) Ledger(ctx context.Context, productID string, page dto.PageRequest) ([]dto.StockTransactionResponse, error) {
	page.DefaultPage()
	list, err := uc.ledgerRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockTransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, toStockTransactionResponse(t))
	}
	return items, nil
}

// Sales ventas del producto, de la más reciente a la más antigua.
func (uc *ProductUseCase) Sales(ctx context.Context, productID string, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return items, nil
}

// Delete elimina un producto. Con ventas o movimientos el repositorio devuelve domain.ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) ensureSupplier(ctx context.Context, supplierID string) error {
	supplier, err := uc.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return fmt.Errorf("proveedor %s: %w", supplierID, domain.ErrNotFound)
	}
	return nil
}
