package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
)

const serviceName = "analytics-worker"

// processTransactionEvent прогревает кэш аналитики пользователя после новой транзакции
func processTransactionEvent(ctx context.Context, event *models.TransactionCreatedEvent, analytics services.AnalyticsService) error {
	if event.EventType != models.EventTypeTransactionCreated {
		logger.Log.Debug("Skipping event of unknown type",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType))
		return nil
	}

	data := event.Data
	logger.LogEvent(logger.EventConsumed, serviceName, "kafka", data.UserID, map[string]interface{}{
		"event_id":       event.EventID,
		"transaction_id": data.TransactionID,
		"product_id":     data.ProductID,
	})

	if err := analytics.Refresh(ctx, data.UserID, data.ProductID); err != nil {
		return fmt.Errorf("failed to refresh analytics for user %d: %w", data.UserID, err)
	}

	logger.Log.Info("Transaction event processed",
		zap.String("event_id", event.EventID),
		zap.Int64("user_id", data.UserID),
		zap.Int64("transaction_id", data.TransactionID))
	return nil
}
