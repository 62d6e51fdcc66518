package mocks

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTagService является моком для TagService интерфейса
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) CreateTag(ctx context.Context, userID int64, payload *models.TagPayload) (*models.Tag, error) {
	args := m.Called(ctx, userID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}
