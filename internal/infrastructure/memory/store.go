// Package memory implementa los puertos de persistencia en memoria. Las transacciones
// trabajan sobre una copia del estado y solo la publican en Commit, de modo que un error
// dentro de Run no deja escrituras parciales. Run serializa las transacciones, lo que
// equivale a bloquear todas las filas.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockledger/internal/application/inventory"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

type state struct {
	suppliers    map[string]entity.Supplier
	products     map[string]entity.Product
	transactions []entity.StockTransaction
	sales        []entity.Sale
}

func newState() *state {
	return &state{
		suppliers: make(map[string]entity.Supplier),
		products:  make(map[string]entity.Product),
	}
}

func (s *state) clone() *state {
	c := &state{
		suppliers:    make(map[string]entity.Supplier, len(s.suppliers)),
		products:     make(map[string]entity.Product, len(s.products)),
		transactions: append([]entity.StockTransaction(nil), s.transactions...),
		sales:        append([]entity.Sale(nil), s.sales...),
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	return c
}

// accessor entrega el estado sobre el que opera un repositorio (directo o de una tx).
type accessor func(fn func(st *state) error) error

// Store base de datos en memoria.
type Store struct {
	mu   sync.Mutex
	data *state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

func (s *Store) direct(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Suppliers repositorio de proveedores fuera de transacción.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{at: s.direct} }

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{at: s.direct} }

// StockTransactions repositorio del libro fuera de transacción.
func (s *Store) StockTransactions() *StockTransactionRepo {
	return &StockTransactionRepo{at: s.direct}
}

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{at: s.direct} }

// Reports repositorio de reportes.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{at: s.direct} }

// Run ejecuta fn sobre una copia del estado y la publica solo si fn no devuelve error.
// Dentro de fn no deben usarse los repositorios directos del Store.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
	saleRepo repository.SaleRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.data.clone()
	at := func(f func(st *state) error) error { return f(work) }
	if err := fn(&ProductRepo{at: at}, &StockTransactionRepo{at: at}, &SaleRepo{at: at}); err != nil {
		return err
	}
	s.data = work
	return nil
}
