package mocks

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionService является моком для TransactionService интерфейса
type MockTransactionService struct {
	mock.Mock
}

// CreateTransaction мок для CreateTransaction
func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID int64, payload *models.TransactionPayload) (*models.CreateTransactionResponse, error) {
	args := m.Called(ctx, userID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreateTransactionResponse), args.Error(1)
}

// ListTransactions мок для ListTransactions
func (m *MockTransactionService) ListTransactions(ctx context.Context, userID int64) ([]models.TransactionDto, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransactionDto), args.Error(1)
}

// GenerateTransaction мок для GenerateTransaction
func (m *MockTransactionService) GenerateTransaction(ctx context.Context, userID int64) (*models.TransactionPayload, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionPayload), args.Error(1)
}
