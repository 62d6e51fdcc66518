package mocks

import (
	"context"

	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockRepository является моком для storage.Repository интерфейса
type MockRepository struct {
	mock.Mock
}

var _ storage.Repository = (*MockRepository)(nil)

func (m *MockRepository) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) CreateCategory(ctx context.Context, userID int64, name string, parentID *int64) (*models.Category, error) {
	args := m.Called(ctx, userID, name, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockRepository) GetCategory(ctx context.Context, userID, id int64) (*models.Category, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockRepository) FindCategoryByName(ctx context.Context, userID int64, name string) (*models.Category, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockRepository) CreateProduct(ctx context.Context, userID int64, name string, categoryID *int64) (*models.Product, error) {
	args := m.Called(ctx, userID, name, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockRepository) GetProduct(ctx context.Context, userID, id int64) (*models.Product, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockRepository) FindProductByName(ctx context.Context, userID int64, name string) (*models.Product, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockRepository) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockRepository) CreateProductPrice(ctx context.Context, productID, cents int64, createdAt models.Timestamp) (*models.ProductPrice, error) {
	args := m.Called(ctx, productID, cents, createdAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductPrice), args.Error(1)
}

func (m *MockRepository) GetProductPrice(ctx context.Context, userID, id int64) (*models.ProductPrice, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductPrice), args.Error(1)
}

func (m *MockRepository) ListProductPrices(ctx context.Context, userID int64, productID *int64) ([]models.ProductPrice, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductPrice), args.Error(1)
}

func (m *MockRepository) CreateTag(ctx context.Context, userID int64, name string) (*models.Tag, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockRepository) GetTag(ctx context.Context, userID, id int64) (*models.Tag, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockRepository) FindTagByName(ctx context.Context, userID int64, name string) (*models.Tag, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockRepository) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockRepository) GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockRepository) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockRepository) AttachTag(ctx context.Context, transactionID, tagID int64) error {
	args := m.Called(ctx, transactionID, tagID)
	return args.Error(0)
}

func (m *MockRepository) ListTransactionTags(ctx context.Context, transactionID int64) ([]models.Tag, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockRepository) ListTransactionTagLinks(ctx context.Context, userID int64) ([]models.TransactionTag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransactionTag), args.Error(1)
}

func (m *MockRepository) SpendingByDay(ctx context.Context, userID int64) ([]storage.DailyTotal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.DailyTotal), args.Error(1)
}

func (m *MockRepository) SpendingByCategory(ctx context.Context, userID int64) ([]storage.CategoryTotal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.CategoryTotal), args.Error(1)
}
