package mocks

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPricingService является моком для PricingService интерфейса
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) CreateProductPrice(ctx context.Context, userID int64, payload *models.ProductPricePayload) (*models.CreateProductPriceResponse, error) {
	args := m.Called(ctx, userID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreateProductPriceResponse), args.Error(1)
}

func (m *MockPricingService) ListProductPrices(ctx context.Context, userID int64, productID *int64) ([]models.ProductPriceDto, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductPriceDto), args.Error(1)
}
