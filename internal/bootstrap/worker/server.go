package worker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"finance-tracker/config"
	"finance-tracker/internal/logger"
)

// StartAnalyticsWorker читает события транзакций и прогревает кэш до SIGINT/SIGTERM
func StartAnalyticsWorker(cfg *config.Config) error {
	log, err := logger.Init(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	deps, err := InitializeDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		log.Info("Analytics worker started",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.TransactionTopic),
			zap.String("group", cfg.Kafka.ConsumerGroupID))
		done <- deps.Consumer.Start(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("Shutting down analytics worker...")
		cancel()
		err = <-done
	case err = <-done:
	}

	if err != nil {
		log.Error("Consumer stopped with error", zap.Error(err))
		return err
	}
	log.Info("Analytics worker exited")
	return nil
}
