package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger/internal/application/usecase"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mock del repositorio de reportes
// ──────────────────────────────────────────────────────────────────────────────

type ReportRepoMock struct{ mock.Mock }

func (m *ReportRepoMock) InventoryByQuantity(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *ReportRepoMock) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *ReportRepoMock) TopSellingProducts(ctx context.Context, limit int) ([]repository.TopSellingResult, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]repository.TopSellingResult)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) LowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	args := m.Called(ctx, threshold)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func TestReportLowStock_UmbralPorDefectoEs5(t *testing.T) {
	repo := new(ReportRepoMock)
	repo.On("LowStock", mock.Anything, 5).Return([]*entity.Product{
		{ID: "p1", Name: "Mouse", Quantity: 2, Price: decimal.NewFromInt(10)},
	}, nil)

	uc := usecase.NewReportUseCase(repo, 0, 0)
	out, err := uc.LowStock(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Threshold)
	require.Len(t, out.Items, 1)
	assert.True(t, decimal.NewFromInt(20).Equal(out.Items[0].Value), "valor = precio * cantidad")
	repo.AssertExpectations(t)
}

func TestReportTopSelling_AsignaRanking(t *testing.T) {
	repo := new(ReportRepoMock)
	repo.On("TopSellingProducts", mock.Anything, 3).Return([]repository.TopSellingResult{
		{ProductID: "a", Name: "A", UnitsSold: 9, Revenue: decimal.NewFromInt(90)},
		{ProductID: "b", Name: "B", UnitsSold: 4, Revenue: decimal.NewFromInt(400)},
	}, nil)

	uc := usecase.NewReportUseCase(repo, 5, 3)
	out, err := uc.TopSellingProducts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Rank)
	assert.Equal(t, 2, out[1].Rank)
	repo.AssertExpectations(t)
}

func TestReportSummary_PropagaErrores(t *testing.T) {
	repo := new(ReportRepoMock)
	boom := errors.New("db caída")
	repo.On("InventoryByQuantity", mock.Anything).Return(nil, nil)
	repo.On("TotalRevenue", mock.Anything).Return(decimal.Zero, boom)

	uc := usecase.NewReportUseCase(repo, 0, 0)
	_, err := uc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "TopSellingProducts", mock.Anything, mock.Anything)
}

// Reportes sobre el store en memoria con datos reales de ventas.
func TestReports_SobreVentasReales(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sup := f.supplier(t, "TechCorp")
	laptop := f.product(t, sup, "Laptop", 1200, 10)
	mouse := f.product(t, sup, "Mouse", 25, 6)
	cable := f.product(t, sup, "Cable", 5, 4)
	f.product(t, sup, "Monitor", 300, 5)

	for _, s := range []struct {
		id  string
		qty int
	}{{laptop, 2}, {mouse, 3}, {mouse, 1}, {cable, 1}} {
		_, err := f.sales.RegisterSale(ctx, s.id, s.qty)
		require.NoError(t, err)
	}

	revenue, err := f.reports.TotalRevenue(ctx)
	require.NoError(t, err)
	// 2*1200 + 4*25 + 1*5
	assert.True(t, decimal.NewFromInt(2505).Equal(revenue), "total = suma de TotalPrice, got %s", revenue)

	inv, err := f.reports.InventoryByQuantity(ctx)
	require.NoError(t, err)
	require.Len(t, inv, 4)
	assert.Equal(t, "Laptop", inv[0].Name)
	for i := 1; i < len(inv); i++ {
		assert.GreaterOrEqual(t, inv[i-1].Quantity, inv[i].Quantity)
	}

	top, err := f.reports.TopSellingProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Mouse", top[0].Name)
	assert.Equal(t, 4, top[0].UnitsSold)
	assert.Equal(t, "Laptop", top[1].Name)

	low, err := f.reports.LowStock(ctx, 0)
	require.NoError(t, err)
	names := make([]string, 0, len(low.Items))
	for _, it := range low.Items {
		names = append(names, it.Name)
		assert.Less(t, it.Quantity, 5)
	}
	// Mouse 2, Cable 3; Monitor (5) no entra.
	assert.ElementsMatch(t, []string{"Mouse", "Cable"}, names)
}

func TestReportTotalRevenue_SinVentasEsCero(t *testing.T) {
	f := newFixture()
	revenue, err := f.reports.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}
