package api

import (
	"finance-tracker/config"
	"finance-tracker/internal/auth"
	"finance-tracker/internal/kafka"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/redis"
	"finance-tracker/internal/services"
	"finance-tracker/internal/storage/sqlite"

	"go.uber.org/zap"
)

// Dependencies содержит все зависимости для finance-api
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	RedisClient   *redis.Client
	KafkaProducer kafka.Producer

	AuthService        services.AuthService
	CatalogService     services.CatalogService
	PricingService     services.PricingService
	TagService         services.TagService
	TransactionService services.TransactionService
	AnalyticsService   services.AnalyticsService
}

// InitializeDependencies инициализирует все зависимости для finance-api.
// Redis и Kafka необязательны: при ошибке подключения сервис работает без них.
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{StorageConn: storageConn}

	var cache redis.AnalyticsCache
	if cfg.RedisEnabled() {
		logger.Log.Info("Connecting to Redis...")
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			logger.Log.Warn("Redis unavailable, analytics cache disabled", zap.Error(err))
		} else {
			logger.Log.Info("Redis connection established")
			deps.RedisClient = redisClient
			cache = redisClient
		}
	}

	if cfg.KafkaEnabled() {
		logger.Log.Info("Connecting to Kafka...")
		producer, err := kafka.NewProducer(cfg)
		if err != nil {
			logger.Log.Warn("Kafka unavailable, transaction events disabled", zap.Error(err))
		} else {
			logger.Log.Info("Kafka producer connected successfully")
			deps.KafkaProducer = producer
		}
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	deps.AuthService = services.NewAuthService(storageConn, tokens)
	deps.CatalogService = services.NewCatalogService(storageConn)
	deps.PricingService = services.NewPricingService(storageConn, cache)
	deps.TagService = services.NewTagService(storageConn)
	deps.TransactionService = services.NewTransactionService(storageConn, deps.KafkaProducer, cache)
	deps.AnalyticsService = services.NewAnalyticsService(storageConn, cache)

	return deps, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
