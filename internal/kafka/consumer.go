package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"finance-tracker/config"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
)

type ConsumerImpl struct {
	consumer sarama.ConsumerGroup
	topic    string
	handler  EventHandler

	closeOnce sync.Once
	closeErr  error
}

func NewConsumer(cfg *config.Config, handler EventHandler) (Consumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true
	config.Version = sarama.V2_8_0_0

	consumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Log.Info("Kafka consumer created",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("group", cfg.Kafka.ConsumerGroupID),
	)
	return &ConsumerImpl{
		consumer: consumer,
		topic:    cfg.Kafka.TransactionTopic,
		handler:  handler,
	}, nil
}

// Start читает топик до отмены ctx или ошибки группы и закрывает группу
func (c *ConsumerImpl) Start(ctx context.Context) error {
	topics := []string{c.topic}
	handler := &consumerGroupHandler{handler: c.handler}

	go func() {
		for {
			select {
			case err, ok := <-c.consumer.Errors():
				if !ok {
					return
				}
				logger.Log.Warn("Consumer error", zap.Error(err))
			case <-ctx.Done():
				return
			}
		}
	}()

	var consumeErr error
	for {
		// Consume возвращается при каждой перебалансировке
		err := c.consumer.Consume(ctx, topics, handler)
		if ctx.Err() != nil {
			logger.Log.Info("Consumer context cancelled, shutting down")
			break
		}
		if err != nil {
			logger.Log.Error("Error from consumer", zap.Error(err))
			consumeErr = err
			break
		}
	}

	if err := c.Close(); err != nil && consumeErr == nil {
		return err
	}
	return consumeErr
}

// Close можно вызывать повторно
func (c *ConsumerImpl) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.consumer.Close()
	})
	return c.closeErr
}

type consumerGroupHandler struct {
	handler EventHandler
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}
			h.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage разбирает и обрабатывает сообщение; битые сообщения пропускаются
func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	var event models.TransactionCreatedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		logger.Log.Warn("Error unmarshaling message", zap.Error(err), zap.Int64("offset", message.Offset))
		return
	}

	if err := h.handler(ctx, &event); err != nil {
		logger.Log.Error("Error handling message", zap.Error(err), zap.String("event_id", event.EventID))
	}
}
