package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	DB     DBConfig
	Server ServerConfig
	Auth   AuthConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Log    LogConfig
}

type DBConfig struct {
	DBPath          string // Путь к файлу SQLite
	MaxOpenConns    int
	CheckoutTimeout time.Duration // Сколько ждать свободное соединение из пула
}

type ServerConfig struct {
	Address     string
	GRPCAddress string // Пустая строка отключает gRPC
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type RedisConfig struct {
	Host     string // Пустой хост отключает кэш аналитики
	Port     string
	Password string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Brokers          []string // Пустой список отключает публикацию событий
	TransactionTopic string
	ConsumerGroupID  string
}

type LogConfig struct {
	Level  string
	Format string // json | console
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_URL", "./data/finance.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)
	v.SetDefault("DB_CHECKOUT_TIMEOUT", "5s")
	v.SetDefault("SERVER_ADDRESS", "127.0.0.1:8000")
	v.SetDefault("GRPC_ADDRESS", "127.0.0.1:50051")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("ANALYTICS_CACHE_TTL", "5m")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TRANSACTION_TOPIC", "finance.transactions.created")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "analytics-worker")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load собирает конфигурацию: окружение, затем .env, затем configs/config.yaml, затем значения по умолчанию
func Load() (*Config, error) {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			DBPath:          v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			CheckoutTimeout: v.GetDuration("DB_CHECKOUT_TIMEOUT"),
		},
		Server: ServerConfig{
			Address:     v.GetString("SERVER_ADDRESS"),
			GRPCAddress: v.GetString("GRPC_ADDRESS"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("TOKEN_TTL"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			CacheTTL: v.GetDuration("ANALYTICS_CACHE_TTL"),
		},
		Kafka: KafkaConfig{
			Brokers:          splitList(v.GetString("KAFKA_BROKERS")),
			TransactionTopic: v.GetString("KAFKA_TRANSACTION_TOPIC"),
			ConsumerGroupID:  v.GetString("KAFKA_CONSUMER_GROUP"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.DB.MaxOpenConns <= 0 {
		cfg.DB.MaxOpenConns = 1
	}
	if cfg.DB.CheckoutTimeout <= 0 {
		cfg.DB.CheckoutTimeout = 5 * time.Second
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}

	return cfg, nil
}

// RedisEnabled - задан ли хост Redis
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// KafkaEnabled - заданы ли брокеры Kafka
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
