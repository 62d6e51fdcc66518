package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TransactionType - направление движения денег.
// В JSON: "Income"/"Expense", в БД: "income"/"expense".
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return TransactionIncome, nil
	case "expense":
		return TransactionExpense, nil
	}
	return "", fmt.Errorf("invalid transaction_type %q: expected Income or Expense", s)
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	switch t {
	case TransactionIncome:
		return json.Marshal("Income")
	case TransactionExpense:
		return json.Marshal("Expense")
	}
	return nil, fmt.Errorf("invalid transaction type %q", string(t))
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("transaction_type must be a string: %w", err)
	}
	parsed, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type Transaction struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	ProductID       int64           `json:"product_id"`
	ProductPriceID  int64           `json:"product_price_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Description     *string         `json:"description"`
	Date            Timestamp       `json:"date"`
}

// TransactionPayload - запрос на создание транзакции.
// Товар задается по id или имени, цена - по id наблюдения или суммой в долларах.
type TransactionPayload struct {
	ProductID       *int64          `json:"product_id,omitempty"`
	ProductName     *string         `json:"product_name,omitempty"`
	ProductPriceID  *int64          `json:"product_price_id,omitempty"`
	Price           *float64        `json:"price,omitempty"`
	TransactionType TransactionType `json:"transaction_type" binding:"required"`
	Description     *string         `json:"description,omitempty"`
	Date            Timestamp       `json:"date"`
	Tags            []Ref           `json:"tags,omitempty" swaggertype:"array,string"`
}

type CreateTransactionResponse struct {
	Transaction  Transaction     `json:"transaction"`
	Product      Product         `json:"product"`
	ProductPrice ProductPriceDto `json:"product_price"`
	Tags         []TagDto        `json:"tags"`
}

// TransactionDto - транзакция со списком id тегов
type TransactionDto struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	ProductID       int64           `json:"product_id"`
	ProductPriceID  int64           `json:"product_price_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Description     *string         `json:"description"`
	Date            Timestamp       `json:"date"`
	Tags            []int64         `json:"tags"`
}

// TransactionTag - строка связи транзакции и тега
type TransactionTag struct {
	TransactionID int64
	TagID         int64
}
