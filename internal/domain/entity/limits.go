package entity

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger/internal/domain"
)

// Límites de las columnas (ver migrations/001_schema.sql).
const (
	MaxNameLength     = 100           // VARCHAR(100)
	MaxCategoryLength = 50            // VARCHAR(50)
	MaxQuantity       = math.MaxInt32 // INTEGER
	MoneyScale        = 2
)

var (
	maxPrice      = decimal.New(1, 8)  // NUMERIC(10,2)
	maxTotalPrice = decimal.New(1, 10) // NUMERIC(12,2)
)

// checkLength compara en caracteres, como VARCHAR(n).
func checkLength(field, value string, n int) error {
	if utf8.RuneCountInString(value) > n {
		return domain.Invalid(field, "excede "+strconv.Itoa(n)+" caracteres")
	}
	return nil
}

// checkMoney rechaza más de dos decimales y valores fuera de la precisión de la columna.
func checkMoney(field string, v, limit decimal.Decimal) error {
	if v.IsNegative() {
		return domain.Invalid(field, "no puede ser negativo")
	}
	if !v.Equal(v.Round(MoneyScale)) {
		return domain.Invalid(field, "admite como máximo 2 decimales")
	}
	if v.GreaterThanOrEqual(limit) {
		return domain.Invalid(field, "excede el máximo permitido")
	}
	return nil
}

func checkQuantity(field string, q int) error {
	if q > MaxQuantity || q < -MaxQuantity {
		return domain.Invalid(field, "fuera de rango")
	}
	return nil
}
