package inventory_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger/internal/domain"
	"github.com/jhoicas/stockledger/internal/domain/entity"
	"github.com/jhoicas/stockledger/internal/domain/inventory"
)

func TestEnsureNonNegative_PermiteLlegarACero(t *testing.T) {
	next, err := inventory.EnsureNonNegative("p1", 5, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestEnsureNonNegative_SumaPositiva(t *testing.T) {
	next, err := inventory.EnsureNonNegative("p1", 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, next)
}

func TestEnsureNonNegative_RechazaNegativo(t *testing.T) {
	next, err := inventory.EnsureNonNegative("p1", 2, -3)
	require.Error(t, err)
	assert.Equal(t, 2, next, "ante el rechazo se devuelve la cantidad actual")
	assert.ErrorIs(t, err, domain.ErrInsufficientStockForUpdate)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStockForSale)

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "p1", stockErr.ProductID)
	assert.Contains(t, err.Error(), "quedaría con -1 unidades")
}

func TestCheckSaleAvailability(t *testing.T) {
	laptop := &entity.Product{ID: "laptop", Quantity: 8}

	tests := []struct {
		name    string
		qty     int
		wantErr error
	}{
		{name: "stock exacto", qty: 8},
		{name: "menos que el stock", qty: 2},
		{name: "más que el stock", qty: 9, wantErr: domain.ErrInsufficientStockForSale},
		{name: "cantidad cero", qty: 0, wantErr: domain.ErrInvalidInput},
		{name: "cantidad negativa", qty: -1, wantErr: domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := inventory.CheckSaleAvailability(laptop, tt.qty)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 8, laptop.Quantity, "el guard no debe mutar el producto")
}

func TestCheckSaleAvailability_MensajeDescriptivo(t *testing.T) {
	err := inventory.CheckSaleAvailability(&entity.Product{ID: "laptop", Quantity: 8}, 9)
	require.Error(t, err)
	assert.Equal(t, "stock insuficiente para la venta: producto laptop tiene 8 unidades, se solicitaron 9", err.Error())
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, inventory.IsLowStock(4, 5))
	assert.False(t, inventory.IsLowStock(5, 5))
	assert.True(t, inventory.IsLowStock(0, 5))
}

func TestEnsureNonNegative_RangoDeInteger(t *testing.T) {
	next, err := inventory.EnsureNonNegative("p1", 5, entity.MaxQuantity-5)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, next)

	for _, delta := range []int{entity.MaxQuantity - 4, math.MaxInt, math.MinInt} {
		next, err := inventory.EnsureNonNegative("p1", 5, delta)
		require.Error(t, err, "delta %d", delta)
		assert.Equal(t, 5, next)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.NotErrorIs(t, err, domain.ErrInsufficientStock, "un ajuste fuera de rango no es falta de stock")
	}
}
