package storage

import (
	"context"

	"finance-tracker/internal/models"
)

// DailyTotal - сумма цен транзакций за календарный день, в центах
type DailyTotal struct {
	Date       string
	TotalCents int64
}

// CategoryTotal - сумма цен транзакций по категории, в центах
type CategoryTotal struct {
	CategoryName string
	TotalCents   int64
}

// Repository - запросы к хранилищу в рамках одной единицы работы.
// Все выборки пользовательских сущностей фильтруются по userID.
// Отсутствующая строка возвращается как ErrNotFound.
type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	CreateCategory(ctx context.Context, userID int64, name string, parentID *int64) (*models.Category, error)
	GetCategory(ctx context.Context, userID, id int64) (*models.Category, error)
	FindCategoryByName(ctx context.Context, userID int64, name string) (*models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)

	CreateProduct(ctx context.Context, userID int64, name string, categoryID *int64) (*models.Product, error)
	GetProduct(ctx context.Context, userID, id int64) (*models.Product, error)
	FindProductByName(ctx context.Context, userID int64, name string) (*models.Product, error)
	ListProducts(ctx context.Context, userID int64) ([]models.Product, error)

	CreateProductPrice(ctx context.Context, productID, cents int64, createdAt models.Timestamp) (*models.ProductPrice, error)
	// GetProductPrice находит цену, принадлежащую товару пользователя
	GetProductPrice(ctx context.Context, userID, id int64) (*models.ProductPrice, error)
	// ListProductPrices возвращает цены товаров пользователя по возрастанию created_at;
	// productID != nil ограничивает выборку одним товаром
	ListProductPrices(ctx context.Context, userID int64, productID *int64) ([]models.ProductPrice, error)

	CreateTag(ctx context.Context, userID int64, name string) (*models.Tag, error)
	GetTag(ctx context.Context, userID, id int64) (*models.Tag, error)
	FindTagByName(ctx context.Context, userID int64, name string) (*models.Tag, error)
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)

	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	AttachTag(ctx context.Context, transactionID, tagID int64) error
	ListTransactionTags(ctx context.Context, transactionID int64) ([]models.Tag, error)
	// ListTransactionTagLinks возвращает все связи транзакций пользователя с тегами одним запросом
	ListTransactionTagLinks(ctx context.Context, userID int64) ([]models.TransactionTag, error)

	SpendingByDay(ctx context.Context, userID int64) ([]DailyTotal, error)
	SpendingByCategory(ctx context.Context, userID int64) ([]CategoryTotal, error)
}

// Store выдает Repository, привязанный к одному соединению из пула
type Store interface {
	// WithTx выполняет fn в одной транзакции БД: ошибка fn откатывает все изменения
	WithTx(ctx context.Context, fn func(Repository) error) error

	// WithConn выполняет fn на одном соединении без транзакции (только чтение)
	WithConn(ctx context.Context, fn func(Repository) error) error

	Close() error
}
