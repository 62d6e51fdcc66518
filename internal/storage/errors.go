package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrConnUnavailable - не удалось получить соединение из пула за отведенное время
	ErrConnUnavailable = errors.New("failed to fetch connection")
)

// Имена таблиц для ConstraintError
const (
	TableUsers           = "users"
	TableCategories      = "categories"
	TableProducts        = "products"
	TableProductPrices   = "product_prices"
	TableTags            = "tags"
	TableTransactions    = "transactions"
	TableTransactionTags = "transaction_tags"
)

// ConstraintError - нарушение уникальности (UNIQUE или PRIMARY KEY) в таблице Table
type ConstraintError struct {
	Table string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("unique constraint violated on %s: %v", e.Table, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// AsConstraint возвращает нарушение уникальности из цепочки ошибок
func AsConstraint(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
