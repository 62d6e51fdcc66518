package mocks

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService является моком для CatalogService интерфейса
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, userID int64, payload *models.CategoryPayload) (*models.CreateCategoryResponse, error) {
	args := m.Called(ctx, userID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreateCategoryResponse), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, userID int64, payload *models.ProductPayload) (*models.CreateProductResponse, error) {
	args := m.Called(ctx, userID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreateProductResponse), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, userID int64) ([]models.ProductDto, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductDto), args.Error(1)
}
