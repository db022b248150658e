package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
	"github.com/jhoicas/stockledger/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, store *memory.Store, qty int) *entity.Product {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Suppliers().Create(ctx, &entity.Supplier{ID: "s1", Name: "TechSource"}))
	p := &entity.Product{
		ID: "p1", Name: "Laptop", Price: decimal.NewFromInt(1200), Quantity: qty, SupplierID: "s1",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Products().Create(ctx, p))
	return p
}

// ── Transacciones ────────────────────────────────────────────────────────────

func TestRun_ErrorDescartaEscrituras(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProduct(t, store, 10)
	boom := errors.New("fallo a mitad")

	err := store.Run(ctx, func(p repository.ProductRepository, l repository.StockTransactionRepository, _ repository.SaleRepository) error {
		require.NoError(t, p.UpdateQuantity(ctx, "p1", 3))
		require.NoError(t, l.Create(ctx, &entity.StockTransaction{ID: "t1", ProductID: "p1", QuantityChange: -7, Type: entity.TransactionTypeSALE}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
	sum, err := store.StockTransactions().SumByProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestRun_ContextoCanceladoNoEjecuta(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := memory.NewStore().Run(ctx, func(repository.ProductRepository, repository.StockTransactionRepository, repository.SaleRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

// ── Integridad referencial ───────────────────────────────────────────────────

func TestProductRepo_ProveedorInexistente(t *testing.T) {
	err := memory.NewStore().Products().Create(context.Background(), &entity.Product{
		ID: "p1", Name: "Laptop", SupplierID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_ConHijosDevuelveConflicto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProduct(t, store, 1)
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{ID: "v1", ProductID: "p1", QuantitySold: 1, TotalPrice: decimal.NewFromInt(1200)}))

	assert.ErrorIs(t, store.Suppliers().Delete(ctx, "s1"), domain.ErrConflict)
	assert.ErrorIs(t, store.Products().Delete(ctx, "p1"), domain.ErrConflict)
}

func TestUpdateQuantity_NegativaRechazada(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, 1)
	err := store.Products().UpdateQuantity(context.Background(), "p1", -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStockForUpdate)
}

// ── Listados ─────────────────────────────────────────────────────────────────

func TestSupplierRepo_ListPaginaPorNombre(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, n := range []string{"C", "A", "B"} {
		require.NoError(t, store.Suppliers().Create(ctx, &entity.Supplier{ID: n, Name: n}))
	}

	first, err := store.Suppliers().List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "A", first[0].Name)
	assert.Equal(t, "B", first[1].Name)

	rest, err := store.Suppliers().List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "C", rest[0].Name)

	empty, err := store.Suppliers().List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListados_EmpateDeNombreOrdenaPorID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, id := range []string{"s3", "s1", "s2"} {
		require.NoError(t, store.Suppliers().Create(ctx, &entity.Supplier{ID: id, Name: "Mismo"}))
	}
	for _, id := range []string{"p3", "p1", "p2"} {
		require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: id, Name: "Laptop", Quantity: 2, SupplierID: "s1"}))
	}

	suppliers, err := store.Suppliers().List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	assert.Equal(t, []string{"s1", "s2", "s3"}, []string{suppliers[0].ID, suppliers[1].ID, suppliers[2].ID})

	products, err := store.Products().List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{products[0].ID, products[1].ID, products[2].ID})

	low, err := store.Reports().LowStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, "p1", low[0].ID)

	inv, err := store.Reports().InventoryByQuantity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p3", inv[2].ID)
}

func TestUpdateYDelete_InexistenteEsNotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	assert.ErrorIs(t, store.Suppliers().Update(ctx, &entity.Supplier{ID: "nope", Name: "X"}), domain.ErrNotFound)
	assert.ErrorIs(t, store.Suppliers().Delete(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, store.Products().Update(ctx, &entity.Product{ID: "nope", Name: "X", SupplierID: "s1"}), domain.ErrNotFound)
	assert.ErrorIs(t, store.Products().Delete(ctx, "nope"), domain.ErrNotFound)
}
