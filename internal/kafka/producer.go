package kafka

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"finance-tracker/config"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
)

type ProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Log.Info("Kafka producer created", zap.Strings("brokers", cfg.Kafka.Brokers))
	return newProducer(producer, cfg.Kafka.TransactionTopic), nil
}

func newProducer(producer sarama.SyncProducer, topic string) *ProducerImpl {
	return &ProducerImpl{producer: producer, topic: topic}
}

// SendTransactionEvent публикует событие; ключ сообщения - id пользователя,
// поэтому события одного пользователя попадают в одну партицию по порядку
func (p *ProducerImpl) SendTransactionEvent(event *models.TransactionCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(strconv.FormatInt(event.Data.UserID, 10)),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	logger.Log.Debug("Message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("event_id", event.EventID),
	)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
