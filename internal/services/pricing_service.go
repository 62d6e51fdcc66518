package services

import (
	"context"

	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/money"
	"finance-tracker/internal/redis"
	"finance-tracker/internal/storage"
)

// PricingServiceImpl реализует интерфейс PricingService
type PricingServiceImpl struct {
	store storage.Store
	cache redis.AnalyticsCache // может быть nil
}

func NewPricingService(store storage.Store, cache redis.AnalyticsCache) PricingService {
	return &PricingServiceImpl{store: store, cache: cache}
}

// CreateProductPrice записывает историческую цену товара; товар находится или создается по имени
func (s *PricingServiceImpl) CreateProductPrice(ctx context.Context, userID int64, payload *models.ProductPricePayload) (*models.CreateProductPriceResponse, error) {
	cents, err := money.ToCents(payload.Price)
	if err != nil {
		return nil, validationError("Invalid price: %v", err)
	}
	if payload.CreatedAt.IsZero() {
		return nil, validationError("created_at is required")
	}

	var (
		product *models.Product
		price   *models.ProductPrice
	)
	err = s.store.WithTx(ctx, func(repo storage.Repository) error {
		var err error
		product, err = resolveProduct(ctx, repo, userID, payload.ProductID, payload.ProductName)
		if err != nil {
			return err
		}

		price, err = repo.CreateProductPrice(ctx, product.ID, cents, payload.CreatedAt)
		return err
	})
	if err != nil {
		return nil, storageError(err, "create product price")
	}

	logger.LogEvent(logger.EventPriceRecorded, serviceName, "sqlite", userID, map[string]interface{}{
		"product_id":       product.ID,
		"product_price_id": price.ID,
		"price_cents":      price.Price,
	})
	invalidateAnalytics(ctx, s.cache, userID)

	return &models.CreateProductPriceResponse{
		ProductPrice: priceDto(*price),
		Product:      *product,
	}, nil
}

func (s *PricingServiceImpl) ListProductPrices(ctx context.Context, userID int64, productID *int64) ([]models.ProductPriceDto, error) {
	var prices []models.ProductPrice
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		prices, err = repo.ListProductPrices(ctx, userID, productID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch product prices")
	}

	result := make([]models.ProductPriceDto, 0, len(prices))
	for _, p := range prices {
		result = append(result, priceDto(p))
	}
	return result, nil
}

func priceDto(p models.ProductPrice) models.ProductPriceDto {
	return models.ProductPriceDto{
		ID:        p.ID,
		ProductID: p.ProductID,
		Price:     money.FromCents(p.Price),
		CreatedAt: p.CreatedAt,
	}
}
