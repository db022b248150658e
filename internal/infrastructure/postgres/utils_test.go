package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockledger/internal/domain"
)

func TestMapInsertError_CodigosPostgres(t *testing.T) {
	wrap := func(code, constraint string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, ConstraintName: constraint})
	}

	assert.ErrorIs(t, mapInsertError(wrap(codeUniqueViolation, "suppliers_pkey"), "insert"), domain.ErrDuplicate)
	assert.ErrorIs(t, mapInsertError(wrap(codeForeignKeyViolation, "products_supplier_fk"), "insert"), domain.ErrNotFound)
	assert.ErrorIs(t, mapInsertError(wrap(codeCheckViolation, quantityCheck), "update"), domain.ErrInsufficientStockForUpdate)

	err := mapInsertError(wrap(codeCheckViolation, "sales_quantity_sold_check"), "insert")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)

	assert.ErrorIs(t, mapInsertError(wrap(codeNumericOutOfRange, ""), "update product quantity"), domain.ErrInvalidInput)
	assert.ErrorIs(t, mapInsertError(wrap(codeStringTooLong, ""), "insert product"), domain.ErrInvalidInput)
}

func TestMapInsertError_OtrosErroresSeEnvuelven(t *testing.T) {
	base := errors.New("conexión cerrada")
	err := mapInsertError(base, "insert sale")
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "insert sale")
}

func TestMapDeleteError_RestrictEsConflicto(t *testing.T) {
	err := mapDeleteError(&pgconn.PgError{Code: codeForeignKeyViolation}, "delete supplier")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, mapDeleteError(&pgconn.PgError{Code: codeInvalidText}, "delete product"), domain.ErrNotFound)

	assert.True(t, isInvalidText(&pgconn.PgError{Code: codeInvalidText}))
	assert.False(t, isInvalidText(errors.New("x")))
}

func TestMigrationNames_OrdenadosYEmbebidos(t *testing.T) {
	names, err := migrationNames()
	assert.NoError(t, err)
	assert.Equal(t, []string{"001_schema.sql"}, names)
}
