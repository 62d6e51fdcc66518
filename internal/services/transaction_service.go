package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"finance-tracker/internal/generator"
	"finance-tracker/internal/kafka"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/money"
	"finance-tracker/internal/redis"
	"finance-tracker/internal/storage"
)

// TransactionServiceImpl реализует интерфейс TransactionService
type TransactionServiceImpl struct {
	store     storage.Store
	producer  kafka.Producer       // может быть nil
	cache     redis.AnalyticsCache // может быть nil
	generator *generator.TransactionGenerator
}

// NewTransactionService создает новый сервис транзакций
func NewTransactionService(store storage.Store, producer kafka.Producer, cache redis.AnalyticsCache) TransactionService {
	return &TransactionServiceImpl{
		store:     store,
		producer:  producer,
		cache:     cache,
		generator: generator.NewTransactionGenerator(),
	}
}

// CreateTransaction выполняет в одной транзакции БД: товар, цена, транзакция, теги, чтение результата.
// Любая ошибка откатывает все шаги.
func (s *TransactionServiceImpl) CreateTransaction(ctx context.Context, userID int64, payload *models.TransactionPayload) (*models.CreateTransactionResponse, error) {
	if payload.Date.IsZero() {
		return nil, validationError("date is required")
	}
	for _, ref := range payload.Tags {
		if ref.IsEmpty() {
			return nil, validationError("Tag name cannot be empty")
		}
	}

	var cents int64
	if payload.ProductPriceID == nil && payload.Price != nil {
		var err error
		if cents, err = money.ToCents(*payload.Price); err != nil {
			return nil, validationError("Invalid price: %v", err)
		}
	}

	var resp models.CreateTransactionResponse
	err := s.store.WithTx(ctx, func(repo storage.Repository) error {
		product, err := resolveProduct(ctx, repo, userID, payload.ProductID, payload.ProductName)
		if err != nil {
			return err
		}

		price, err := s.resolvePrice(ctx, repo, userID, product.ID, payload, cents)
		if err != nil {
			return err
		}

		created, err := repo.CreateTransaction(ctx, &models.Transaction{
			UserID:          userID,
			ProductID:       product.ID,
			ProductPriceID:  price.ID,
			TransactionType: payload.TransactionType,
			Description:     payload.Description,
			Date:            payload.Date,
		})
		if err != nil {
			return err
		}

		if err := attachTags(ctx, repo, userID, created.ID, payload.Tags); err != nil {
			return err
		}

		// Ответ читается в той же транзакции, что и запись
		txn, err := repo.GetTransaction(ctx, userID, created.ID)
		if err != nil {
			return err
		}
		tags, err := repo.ListTransactionTags(ctx, created.ID)
		if err != nil {
			return err
		}

		resp.Transaction = *txn
		resp.Product = *product
		resp.ProductPrice = priceDto(*price)
		resp.Tags = make([]models.TagDto, 0, len(tags))
		for _, tag := range tags {
			resp.Tags = append(resp.Tags, tag.Dto())
		}
		return nil
	})
	if err != nil {
		return nil, storageError(err, "create transaction")
	}

	logger.LogEvent(logger.EventTransactionCreated, serviceName, "sqlite", userID, map[string]interface{}{
		"transaction_id":   resp.Transaction.ID,
		"product_id":       resp.Product.ID,
		"product_price_id": resp.ProductPrice.ID,
		"tags":             len(resp.Tags),
	})
	invalidateAnalytics(ctx, s.cache, userID)
	s.publish(&resp)

	return &resp, nil
}

// resolvePrice использует переданную цену товара или записывает новую на дату транзакции
func (s *TransactionServiceImpl) resolvePrice(ctx context.Context, repo storage.Repository, userID, productID int64, payload *models.TransactionPayload, cents int64) (*models.ProductPrice, error) {
	if payload.ProductPriceID == nil {
		return repo.CreateProductPrice(ctx, productID, cents, payload.Date)
	}

	price, err := repo.GetProductPrice(ctx, userID, *payload.ProductPriceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, validationError("Product price %d not found", *payload.ProductPriceID)
		}
		return nil, err
	}
	if price.ProductID != productID {
		return nil, validationError("Product price %d does not belong to product %d", price.ID, productID)
	}
	return price, nil
}

// attachTags связывает транзакцию с тегами; повторные ссылки на один тег пропускаются
func attachTags(ctx context.Context, repo storage.Repository, userID, transactionID int64, refs []models.Ref) error {
	seen := make(map[int64]struct{}, len(refs))
	for _, ref := range refs {
		tag, err := resolve(ctx, userID, ref, tagFinder(repo))
		if err != nil {
			return err
		}
		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}

		if err := repo.AttachTag(ctx, transactionID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

// publish отправляет событие о транзакции; ошибка Kafka не отменяет уже зафиксированную запись
func (s *TransactionServiceImpl) publish(resp *models.CreateTransactionResponse) {
	if s.producer == nil {
		return
	}

	tagIDs := make([]int64, 0, len(resp.Tags))
	for _, tag := range resp.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	event := &models.TransactionCreatedEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: models.EventTypeTransactionCreated,
		Timestamp: time.Now(),
		Data: models.TransactionCreatedData{
			UserID:          resp.Transaction.UserID,
			TransactionID:   resp.Transaction.ID,
			ProductID:       resp.Product.ID,
			ProductPriceID:  resp.ProductPrice.ID,
			TransactionType: resp.Transaction.TransactionType,
			Amount:          resp.ProductPrice.Price,
			Date:            resp.Transaction.Date,
			TagIDs:          tagIDs,
		},
	}

	if err := s.producer.SendTransactionEvent(event); err != nil {
		logger.Log.Warn("Failed to publish transaction event",
			zap.String("event_id", event.EventID),
			zap.Int64("transaction_id", resp.Transaction.ID),
			zap.Error(err),
		)
		return
	}

	logger.LogEvent(logger.EventPublished, serviceName, "kafka", resp.Transaction.UserID, map[string]interface{}{
		"event_id":       event.EventID,
		"transaction_id": resp.Transaction.ID,
	})
}

// ListTransactions читает транзакции и все их связи с тегами двумя запросами
func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, userID int64) ([]models.TransactionDto, error) {
	var (
		transactions []models.Transaction
		links        []models.TransactionTag
	)
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		if transactions, err = repo.ListTransactions(ctx, userID); err != nil {
			return err
		}
		links, err = repo.ListTransactionTagLinks(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch transactions")
	}

	tagsByTxn := make(map[int64][]int64, len(transactions))
	for _, link := range links {
		tagsByTxn[link.TransactionID] = append(tagsByTxn[link.TransactionID], link.TagID)
	}

	result := make([]models.TransactionDto, 0, len(transactions))
	for _, t := range transactions {
		tags := tagsByTxn[t.ID]
		if tags == nil {
			tags = []int64{}
		}
		result = append(result, models.TransactionDto{
			ID:              t.ID,
			UserID:          t.UserID,
			ProductID:       t.ProductID,
			ProductPriceID:  t.ProductPriceID,
			TransactionType: t.TransactionType,
			Description:     t.Description,
			Date:            t.Date,
			Tags:            tags,
		})
	}
	return result, nil
}

func (s *TransactionServiceImpl) GenerateTransaction(ctx context.Context, userID int64) (*models.TransactionPayload, error) {
	var (
		products []models.Product
		tags     []models.Tag
	)
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		if products, err = repo.ListProducts(ctx, userID); err != nil {
			return err
		}
		tags, err = repo.ListTags(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "load catalog")
	}

	return s.generator.GenerateTransaction(products, tags), nil
}
