package mocks

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAnalyticsService является моком для AnalyticsService интерфейса
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) SpendingTimeSeries(ctx context.Context, userID int64) ([]models.SpendingTimeSeriesEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SpendingTimeSeriesEntry), args.Error(1)
}

func (m *MockAnalyticsService) CategorySpending(ctx context.Context, userID int64) ([]models.CategorySpending, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategorySpending), args.Error(1)
}

func (m *MockAnalyticsService) ProductPriceData(ctx context.Context, userID, productID int64) ([]models.ProductPriceData, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductPriceData), args.Error(1)
}

// Refresh мок для Refresh; productIDs передаются одним срезом
func (m *MockAnalyticsService) Refresh(ctx context.Context, userID int64, productIDs ...int64) error {
	args := m.Called(ctx, userID, productIDs)
	return args.Error(0)
}
