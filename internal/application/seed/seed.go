// Package seed carga un catálogo de ejemplo a través de los casos de uso, de modo que
// los datos respetan las mismas reglas (libro INITIAL, guardas de stock) que el resto del sistema.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/application/dto"
	"github.com/jhoicas/stockledger/internal/application/inventory"
	"github.com/jhoicas/stockledger/internal/application/usecase"
	"github.com/jhoicas/stockledger/pkg/logger"
)

// SupplierSeed proveedor de ejemplo con sus productos.
type SupplierSeed struct {
	Supplier dto.CreateSupplierRequest
	Products []ProductSeed
}

// ProductSeed producto de ejemplo; Sales son ventas a registrar tras crearlo.
type ProductSeed struct {
	Name     string
	Category string
	Price    string
	Quantity int
	Sales    []int
}

// Result resumen de lo cargado.
type Result struct {
	Skipped   bool
	Suppliers int
	Products  int
	Sales     int
}

// Seeder carga los datos de ejemplo una sola vez.
type Seeder struct {
	suppliers *usecase.SupplierUseCase
	products  *usecase.ProductUseCase
	sales     *inventory.RegisterSaleUseCase
	log       *logger.Logger
	data      []SupplierSeed
}

// New construye el seeder con el catálogo por defecto.
func New(
	suppliers *usecase.SupplierUseCase,
	products *usecase.ProductUseCase,
	sales *inventory.RegisterSaleUseCase,
	log *logger.Logger,
) *Seeder {
	return &Seeder{suppliers: suppliers, products: products, sales: sales, log: log, data: DefaultData()}
}

// WithData reemplaza el catálogo a cargar.
func (s *Seeder) WithData(data []SupplierSeed) *Seeder {
	s.data = data
	return s
}

// Run carga el catálogo si no hay proveedores registrados; en otro caso no hace nada.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	existing, err := s.suppliers.List(ctx, dto.PageRequest{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(existing.Items) > 0 {
		s.log.Info().Msg("datos existentes, seed omitido")
		return &Result{Skipped: true}, nil
	}

	res := &Result{}
	for _, sd := range s.data {
		sup, err := s.suppliers.Create(ctx, sd.Supplier)
		if err != nil {
			return nil, fmt.Errorf("seed proveedor %s: %w", sd.Supplier.Name, err)
		}
		res.Suppliers++

		for _, pd := range sd.Products {
			price, err := decimal.NewFromString(pd.Price)
			if err != nil {
				return nil, fmt.Errorf("seed precio %s: %w", pd.Name, err)
			}
			prod, err := s.products.Create(ctx, dto.CreateProductRequest{
				Name:       pd.Name,
				Category:   pd.Category,
				Price:      price,
				Quantity:   pd.Quantity,
				SupplierID: sup.ID,
			})
			if err != nil {
				return nil, fmt.Errorf("seed producto %s: %w", pd.Name, err)
			}
			res.Products++

			for _, q := range pd.Sales {
				if _, err := s.sales.RegisterSale(ctx, prod.ID, q); err != nil {
					return nil, fmt.Errorf("seed venta %s x%d: %w", pd.Name, q, err)
				}
				res.Sales++
			}
		}
	}

	s.log.Info().
		Int("suppliers", res.Suppliers).
		Int("products", res.Products).
		Int("sales", res.Sales).
		Msg("seed completado")
	return res, nil
}

// DefaultData catálogo de ejemplo.
func DefaultData() []SupplierSeed {
	return []SupplierSeed{
		{
			Supplier: dto.CreateSupplierRequest{
				Name: "TechSource", Contact: "Ana Gómez", Email: "ventas@techsource.example", Address: "Calle 10 #20-30",
			},
			Products: []ProductSeed{
				{Name: "Laptop", Category: "Electrónica", Price: "1200.00", Quantity: 10, Sales: []int{2}},
				{Name: "Monitor", Category: "Electrónica", Price: "250.00", Quantity: 15, Sales: []int{3, 1}},
				{Name: "Teclado", Category: "Accesorios", Price: "45.50", Quantity: 4},
			},
		},
		{
			Supplier: dto.CreateSupplierRequest{
				Name: "OfiMarket", Contact: "Luis Pérez", Email: "pedidos@ofimarket.example", Address: "Av. Central 45",
			},
			Products: []ProductSeed{
				{Name: "Silla ergonómica", Category: "Mobiliario", Price: "310.00", Quantity: 6, Sales: []int{2}},
				{Name: "Lámpara", Category: "Mobiliario", Price: "35.00", Quantity: 20, Sales: []int{5}},
			},
		},
	}
}
