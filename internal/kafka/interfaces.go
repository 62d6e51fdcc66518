package kafka

import (
	"context"

	"finance-tracker/internal/models"
)

// Producer определяет интерфейс для отправки событий в Kafka
type Producer interface {
	SendTransactionEvent(event *models.TransactionCreatedEvent) error

	Close() error
}

// Consumer читает события о транзакциях до отмены контекста
type Consumer interface {
	Start(ctx context.Context) error

	Close() error
}

// EventHandler обрабатывает одно событие из топика
type EventHandler func(ctx context.Context, event *models.TransactionCreatedEvent) error
