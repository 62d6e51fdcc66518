package worker

import (
	"context"
	"errors"

	"finance-tracker/config"
	"finance-tracker/internal/kafka"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/redis"
	"finance-tracker/internal/services"
	"finance-tracker/internal/storage/sqlite"
)

var (
	ErrKafkaNotConfigured = errors.New("analytics worker requires KAFKA_BROKERS")
	ErrRedisNotConfigured = errors.New("analytics worker requires REDIS_HOST")
)

// Dependencies содержит все зависимости для analytics-worker
type Dependencies struct {
	StorageConn      *sqlite.SQLiteStorage
	RedisClient      *redis.Client
	Consumer         kafka.Consumer
	AnalyticsService services.AnalyticsService
}

// InitializeDependencies инициализирует все зависимости для analytics-worker.
// В отличие от API, без Kafka и Redis воркеру нечего делать.
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	if !cfg.KafkaEnabled() {
		return nil, ErrKafkaNotConfigured
	}
	if !cfg.RedisEnabled() {
		return nil, ErrRedisNotConfigured
	}

	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	deps := &Dependencies{StorageConn: storageConn}

	logger.Log.Info("Connecting to Redis...")
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.RedisClient = redisClient

	deps.AnalyticsService = services.NewAnalyticsService(storageConn, redisClient)

	logger.Log.Info("Connecting to Kafka...")
	consumer, err := kafka.NewConsumer(cfg, func(ctx context.Context, event *models.TransactionCreatedEvent) error {
		return processTransactionEvent(ctx, event, deps.AnalyticsService)
	})
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Consumer = consumer

	return deps, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	var errs []error
	if d.Consumer != nil {
		errs = append(errs, d.Consumer.Close())
	}
	if d.RedisClient != nil {
		errs = append(errs, d.RedisClient.Close())
	}
	if d.StorageConn != nil {
		errs = append(errs, d.StorageConn.Close())
	}
	return errors.Join(errs...)
}
