package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAnalyticsCache является моком для redis.AnalyticsCache интерфейса
type MockAnalyticsCache struct {
	mock.Mock
}

// GetView мок для GetView; заполнить dest можно через Run
func (m *MockAnalyticsCache) GetView(ctx context.Context, userID int64, view string, dest interface{}) (bool, error) {
	args := m.Called(ctx, userID, view, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnalyticsCache) SetView(ctx context.Context, userID int64, view string, value interface{}) error {
	args := m.Called(ctx, userID, view, value)
	return args.Error(0)
}

func (m *MockAnalyticsCache) InvalidateUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAnalyticsCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
