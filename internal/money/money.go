package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Наибольшая сумма в центах, которую можно сохранить в колонке цены
const MaxCents = math.MaxInt32

var (
	ErrNegative   = errors.New("price cannot be negative")
	ErrOutOfRange = errors.New("price is out of range")
)

// ToCents переводит доллары в центы: round(dollars * 100), половина - от нуля
func ToCents(dollars float64) (int64, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, ErrOutOfRange
	}
	if dollars < 0 {
		return 0, ErrNegative
	}

	cents := decimal.NewFromFloat(dollars * 100).Round(0)
	if cents.GreaterThan(decimal.NewFromInt(MaxCents)) {
		return 0, ErrOutOfRange
	}
	return cents.IntPart(), nil
}

// FromCents переводит центы в доллары с точностью до двух знаков
func FromCents(cents int64) float64 {
	return decimal.New(cents, -2).Round(2).InexactFloat64()
}

// ClampTotal ограничивает агрегированную сумму диапазоном [0, MaxCents]
func ClampTotal(cents int64) int64 {
	if cents < 0 {
		return 0
	}
	if cents > MaxCents {
		return MaxCents
	}
	return cents
}

// TotalFromCents - ClampTotal + FromCents для агрегатов аналитики
func TotalFromCents(cents int64) float64 {
	return FromCents(ClampTotal(cents))
}
