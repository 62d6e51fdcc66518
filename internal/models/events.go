package models

import "time"

const EventTypeTransactionCreated = "transaction_created"

// TransactionCreatedEvent публикуется в Kafka после фиксации транзакции
type TransactionCreatedEvent struct {
	EventID   string                 `json:"event_id"`
	EventType string                 `json:"event_type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      TransactionCreatedData `json:"data"`
}

type TransactionCreatedData struct {
	UserID          int64           `json:"user_id"`
	TransactionID   int64           `json:"transaction_id"`
	ProductID       int64           `json:"product_id"`
	ProductPriceID  int64           `json:"product_price_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          float64         `json:"amount"`
	Date            Timestamp       `json:"date"`
	TagIDs          []int64         `json:"tag_ids"`
}
