package services

import (
	"context"

	"finance-tracker/internal/models"
)

// AuthService определяет регистрацию, вход и проверку токенов
type AuthService interface {
	// SignUp регистрирует пользователя и возвращает его без хеша пароля
	SignUp(ctx context.Context, creds models.Credentials) (*models.PublicUser, error)

	// Login проверяет пароль и выпускает токен
	Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error)

	// Authenticate возвращает id пользователя из токена
	Authenticate(token string) (int64, error)
}

// CatalogService определяет интерфейс для работы с категориями и товарами
type CatalogService interface {
	CreateCategory(ctx context.Context, userID int64, payload *models.CategoryPayload) (*models.CreateCategoryResponse, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)

	CreateProduct(ctx context.Context, userID int64, payload *models.ProductPayload) (*models.CreateProductResponse, error)
	ListProducts(ctx context.Context, userID int64) ([]models.ProductDto, error)
}

// PricingService определяет интерфейс для истории цен
type PricingService interface {
	CreateProductPrice(ctx context.Context, userID int64, payload *models.ProductPricePayload) (*models.CreateProductPriceResponse, error)

	// ListProductPrices возвращает цены товаров пользователя; productID != nil - только одного товара
	ListProductPrices(ctx context.Context, userID int64, productID *int64) ([]models.ProductPriceDto, error)
}

type TagService interface {
	CreateTag(ctx context.Context, userID int64, payload *models.TagPayload) (*models.Tag, error)
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)
}

// TransactionService определяет интерфейс для работы с транзакциями
type TransactionService interface {
	// CreateTransaction создает транзакцию в одной единице работы вместе с товаром, ценой и тегами
	CreateTransaction(ctx context.Context, userID int64, payload *models.TransactionPayload) (*models.CreateTransactionResponse, error)

	// ListTransactions возвращает все транзакции пользователя с id тегов
	ListTransactions(ctx context.Context, userID int64) ([]models.TransactionDto, error)

	// GenerateTransaction собирает случайный запрос по каталогу пользователя
	GenerateTransaction(ctx context.Context, userID int64) (*models.TransactionPayload, error)
}

// AnalyticsService определяет интерфейс для агрегатов по расходам
type AnalyticsService interface {
	SpendingTimeSeries(ctx context.Context, userID int64) ([]models.SpendingTimeSeriesEntry, error)
	CategorySpending(ctx context.Context, userID int64) ([]models.CategorySpending, error)
	ProductPriceData(ctx context.Context, userID, productID int64) ([]models.ProductPriceData, error)

	// Refresh пересчитывает представления пользователя и кладет их в кэш
	Refresh(ctx context.Context, userID int64, productIDs ...int64) error
}
