package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger/internal/application/dto"
	"github.com/jhoicas/stockledger/internal/domain"
)

func TestSupplierCreate_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.suppliers.Create(ctx, dto.CreateSupplierRequest{
		Name: "TechCorp", Contact: "Ana", Email: "ventas@techcorp.com", Address: "Calle 1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)

	_, err = f.suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Bad", Email: "no-es-correo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "email", "el mensaje usa el nombre json del campo")

	_, err = f.suppliers.Create(ctx, dto.CreateSupplierRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.supplier(t, "TechCorp")

	email := "nuevo@techcorp.com"
	out, err := f.suppliers.Update(ctx, id, dto.UpdateSupplierRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, out.Email)
	assert.Equal(t, "TechCorp", out.Name)

	bad := "x"
	_, err = f.suppliers.Update(ctx, id, dto.UpdateSupplierRequest{Email: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing, err := f.suppliers.Update(ctx, "nope", dto.UpdateSupplierRequest{Email: &email})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSupplierDelete_ConProductosEsConflicto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	used := f.supplier(t, "TechCorp")
	unused := f.supplier(t, "Vacío")
	f.product(t, used, "Laptop", 1200, 1)

	assert.ErrorIs(t, f.suppliers.Delete(ctx, used), domain.ErrConflict)
	require.NoError(t, f.suppliers.Delete(ctx, unused))

	list, err := f.suppliers.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "TechCorp", list.Items[0].Name)
	assert.Equal(t, 20, list.Page.Limit, "límite por defecto")
}

func TestCreate_NombresMultibyteDentroDelLimite(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	name := strings.Repeat("ñ", 60)

	sup, err := f.suppliers.Create(ctx, dto.CreateSupplierRequest{Name: name})
	require.NoError(t, err)
	assert.Equal(t, name, sup.Name)

	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: name, Category: "Electrónica", SupplierID: sup.ID})
	require.NoError(t, err)
	assert.Equal(t, name, p.Name)

	_, err = f.products.Create(ctx, dto.CreateProductRequest{Name: "Silla", Category: strings.Repeat("x", 51), SupplierID: sup.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierDelete_Inexistente(t *testing.T) {
	f := newFixture()
	err := f.suppliers.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
