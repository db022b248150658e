package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/stockledger/internal/domain"
)

// Códigos SQLSTATE usados.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
	codeNumericOutOfRange   = "22003"
	codeStringTooLong       = "22001"
)

// quantityCheck nombre del CHECK (quantity >= 0) de products (ver migrations/001_schema.sql).
const quantityCheck = "products_quantity_check"

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeForeignKeyViolation
}

// isInvalidText id que no es un UUID válido; para búsquedas equivale a "no existe".
func isInvalidText(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeInvalidText
}

// mapInsertError traduce errores de constraints en INSERT/UPDATE a errores de dominio.
// Una FK rota en escritura significa que el padre no existe.
func mapInsertError(err error, op string) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if pgErr := pgError(err); pgErr != nil {
		switch pgErr.Code {
		case codeCheckViolation:
			if pgErr.ConstraintName == quantityCheck {
				return fmt.Errorf("%s: %w", op, domain.ErrInsufficientStockForUpdate)
			}
			return fmt.Errorf("%s (%s): %w", op, pgErr.ConstraintName, domain.ErrInvalidInput)
		case codeNumericOutOfRange, codeStringTooLong:
			return fmt.Errorf("%s (%s): %w", op, pgErr.Message, domain.ErrInvalidInput)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mapDeleteError: con ON DELETE RESTRICT una FK rota significa que aún hay filas hijas.
func mapDeleteError(err error, op string) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	if isInvalidText(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
