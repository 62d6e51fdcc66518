package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/money"
	"finance-tracker/internal/redis"
	"finance-tracker/internal/storage"
)

// Имена представлений аналитики в кэше
const (
	viewSpendingTimeSeries = "spending-time-series"
	viewCategorySpending   = "category-spending"
)

func viewProductPriceData(productID int64) string {
	return fmt.Sprintf("product-price-data:%d", productID)
}

// AnalyticsServiceImpl реализует интерфейс AnalyticsService.
// С кэшем работает как read-through: промах или ошибка Redis ведут в БД.
type AnalyticsServiceImpl struct {
	store storage.Store
	cache redis.AnalyticsCache // может быть nil
}

func NewAnalyticsService(store storage.Store, cache redis.AnalyticsCache) AnalyticsService {
	return &AnalyticsServiceImpl{store: store, cache: cache}
}

func (s *AnalyticsServiceImpl) SpendingTimeSeries(ctx context.Context, userID int64) ([]models.SpendingTimeSeriesEntry, error) {
	seen := analyticsGenerations.current(userID)

	var result []models.SpendingTimeSeriesEntry
	if s.fromCache(ctx, userID, viewSpendingTimeSeries, &result) {
		return result, nil
	}

	result, err := s.loadSpendingTimeSeries(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, userID, seen, viewSpendingTimeSeries, result)
	return result, nil
}

func (s *AnalyticsServiceImpl) CategorySpending(ctx context.Context, userID int64) ([]models.CategorySpending, error) {
	seen := analyticsGenerations.current(userID)

	var result []models.CategorySpending
	if s.fromCache(ctx, userID, viewCategorySpending, &result) {
		return result, nil
	}

	result, err := s.loadCategorySpending(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, userID, seen, viewCategorySpending, result)
	return result, nil
}

// ProductPriceData возвращает историю цены товара пользователя; чужой товар дает пустой список
func (s *AnalyticsServiceImpl) ProductPriceData(ctx context.Context, userID, productID int64) ([]models.ProductPriceData, error) {
	view := viewProductPriceData(productID)
	seen := analyticsGenerations.current(userID)

	var result []models.ProductPriceData
	if s.fromCache(ctx, userID, view, &result) {
		return result, nil
	}

	result, err := s.loadProductPriceData(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, userID, seen, view, result)
	return result, nil
}

// Refresh сбрасывает кэш пользователя и заново заполняет его из БД
func (s *AnalyticsServiceImpl) Refresh(ctx context.Context, userID int64, productIDs ...int64) error {
	if s.cache == nil {
		return nil
	}
	analyticsGenerations.bump(userID)
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to invalidate analytics cache: %w", err)
	}
	seen := analyticsGenerations.current(userID)

	series, err := s.loadSpendingTimeSeries(ctx, userID)
	if err != nil {
		return err
	}
	s.toCache(ctx, userID, seen, viewSpendingTimeSeries, series)

	categories, err := s.loadCategorySpending(ctx, userID)
	if err != nil {
		return err
	}
	s.toCache(ctx, userID, seen, viewCategorySpending, categories)

	for _, productID := range productIDs {
		points, err := s.loadProductPriceData(ctx, userID, productID)
		if err != nil {
			return err
		}
		s.toCache(ctx, userID, seen, viewProductPriceData(productID), points)
	}

	logger.LogEvent(logger.EventAnalyticsWarmed, serviceName, "redis", userID, map[string]interface{}{
		"days":       len(series),
		"categories": len(categories),
		"products":   len(productIDs),
	})
	return nil
}

func (s *AnalyticsServiceImpl) loadSpendingTimeSeries(ctx context.Context, userID int64) ([]models.SpendingTimeSeriesEntry, error) {
	var totals []storage.DailyTotal
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		totals, err = repo.SpendingByDay(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch spending time series")
	}

	result := make([]models.SpendingTimeSeriesEntry, 0, len(totals))
	for _, t := range totals {
		result = append(result, models.SpendingTimeSeriesEntry{
			Date:          t.Date,
			TotalSpending: money.TotalFromCents(t.TotalCents),
		})
	}
	return result, nil
}

func (s *AnalyticsServiceImpl) loadCategorySpending(ctx context.Context, userID int64) ([]models.CategorySpending, error) {
	var totals []storage.CategoryTotal
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		totals, err = repo.SpendingByCategory(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch category spending")
	}

	result := make([]models.CategorySpending, 0, len(totals))
	for _, t := range totals {
		result = append(result, models.CategorySpending{
			CategoryName:  t.CategoryName,
			TotalSpending: money.TotalFromCents(t.TotalCents),
		})
	}
	return result, nil
}

func (s *AnalyticsServiceImpl) loadProductPriceData(ctx context.Context, userID, productID int64) ([]models.ProductPriceData, error) {
	var prices []models.ProductPrice
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		prices, err = repo.ListProductPrices(ctx, userID, &productID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch product price data")
	}

	result := make([]models.ProductPriceData, 0, len(prices))
	for _, p := range prices {
		result = append(result, models.ProductPriceData{
			Date:  p.CreatedAt.Date(),
			Price: money.FromCents(p.Price),
		})
	}
	return result, nil
}

func (s *AnalyticsServiceImpl) fromCache(ctx context.Context, userID int64, view string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.GetView(ctx, userID, view, dest)
	if err != nil {
		logger.Log.Warn("Analytics cache read failed", zap.String("view", view), zap.Int64("user_id", userID), zap.Error(err))
		return false
	}
	return found
}

// toCache сохраняет представление, если кэш пользователя не сбрасывали после seen
func (s *AnalyticsServiceImpl) toCache(ctx context.Context, userID int64, seen uint64, view string, value interface{}) {
	if s.cache == nil {
		return
	}
	var err error
	stored := analyticsGenerations.storeIf(userID, seen, func() {
		err = s.cache.SetView(ctx, userID, view, value)
	})
	if !stored {
		logger.Log.Debug("Analytics view outdated by a concurrent write, not cached", zap.String("view", view), zap.Int64("user_id", userID))
		return
	}
	if err != nil {
		logger.Log.Warn("Analytics cache write failed", zap.String("view", view), zap.Int64("user_id", userID), zap.Error(err))
	}
}

// invalidateAnalytics сбрасывает кэш пользователя после записи; ошибки только логируются
func invalidateAnalytics(ctx context.Context, cache redis.AnalyticsCache, userID int64) {
	if cache == nil {
		return
	}
	analyticsGenerations.bump(userID)
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		logger.Log.Warn("Analytics cache invalidation failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	logger.LogEvent(logger.EventCacheInvalidated, serviceName, "redis", userID, nil)
}
