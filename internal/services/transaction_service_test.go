package services

import (
	"context"
	"errors"
	"testing"

	kafkamocks "finance-tracker/internal/kafka/mocks"
	"finance-tracker/internal/models"
	redismocks "finance-tracker/internal/redis/mocks"
	"finance-tracker/internal/storage"
	storagemocks "finance-tracker/internal/storage/mocks"
	"finance-tracker/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceSuite struct {
	suite.Suite
	store  *sqlite.SQLiteStorage
	svc    TransactionService
	userID int64
	ctx    context.Context
}

func (s *TransactionServiceSuite) SetupTest() {
	s.store = setupTestStore(s.T())
	s.svc = NewTransactionService(s.store, nil, nil)
	s.userID = signUp(s.T(), s.store, "a@x.com")
	s.ctx = context.Background()
}

func (s *TransactionServiceSuite) payload(product string, price float64, tags ...models.Ref) *models.TransactionPayload {
	return &models.TransactionPayload{
		ProductName:     strPtr(product),
		Price:           float64Ptr(price),
		TransactionType: models.TransactionExpense,
		Date:            ts(s.T(), "2025-01-08T00:00:00"),
		Tags:            tags,
	}
}

func (s *TransactionServiceSuite) countRows(table string) int {
	var n int
	require.NoError(s.T(), s.store.DB.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func (s *TransactionServiceSuite) TestCreate_ByProductName() {
	resp, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99))
	s.Require().NoError(err)

	s.Equal("Milk", resp.Product.Name)
	s.Equal(2.99, resp.ProductPrice.Price)
	s.Equal(resp.Product.ID, resp.ProductPrice.ProductID)
	s.Equal("2025-01-08T00:00:00", resp.ProductPrice.CreatedAt.String())
	s.Equal(models.TransactionExpense, resp.Transaction.TransactionType)
	s.Equal(resp.ProductPrice.ID, resp.Transaction.ProductPriceID)
	s.NotNil(resp.Tags)
	s.Empty(resp.Tags)

	list, err := s.svc.ListTransactions(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(resp.Product.ID, list[0].ProductID)
	s.NotNil(list[0].Tags)
	s.Empty(list[0].Tags)
}

func (s *TransactionServiceSuite) TestCreate_ReusesProductByName() {
	first, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99))
	s.Require().NoError(err)
	second, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 3.10))
	s.Require().NoError(err)

	s.Equal(first.Product.ID, second.Product.ID)
	s.NotEqual(first.ProductPrice.ID, second.ProductPrice.ID)
	s.Equal(1, s.countRows("products"))
}

func (s *TransactionServiceSuite) TestCreate_ThreeTagNames() {
	resp, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99,
		models.RefByName("dairy"), models.RefByName("weekly"), models.RefByName("breakfast")))
	s.Require().NoError(err)

	s.Require().Len(resp.Tags, 3)
	names := make([]string, 0, 3)
	for _, tag := range resp.Tags {
		s.Positive(tag.ID)
		names = append(names, tag.Name)
	}
	s.ElementsMatch([]string{"dairy", "weekly", "breakfast"}, names)
	s.Equal(3, s.countRows("transaction_tags"))

	list, err := s.svc.ListTransactions(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Len(list[0].Tags, 3)
}

func (s *TransactionServiceSuite) TestCreate_DuplicateTagRefsDeduplicated() {
	first, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 1, models.RefByName("dairy")))
	s.Require().NoError(err)
	tagID := first.Tags[0].ID

	resp, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 1,
		models.RefByName("dairy"), models.RefByID(tagID), models.RefByName(" dairy ")))
	s.Require().NoError(err)
	s.Require().Len(resp.Tags, 1)
	s.Equal(tagID, resp.Tags[0].ID)
}

func (s *TransactionServiceSuite) TestCreate_AtomicOnUnknownTag() {
	_, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99,
		models.RefByName("dairy"), models.RefByID(999)))
	se := requireKind(s.T(), err, KindValidation)
	s.Equal("Tag 999 not found", se.Message)

	// Ничего из этого запроса не сохранилось
	s.Equal(0, s.countRows("products"))
	s.Equal(0, s.countRows("product_prices"))
	s.Equal(0, s.countRows("transactions"))
	s.Equal(0, s.countRows("tags"))
	s.Equal(0, s.countRows("transaction_tags"))
}

func (s *TransactionServiceSuite) TestCreate_WithProductPriceID() {
	first, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99))
	s.Require().NoError(err)

	resp, err := s.svc.CreateTransaction(s.ctx, s.userID, &models.TransactionPayload{
		ProductID:       &first.Product.ID,
		ProductPriceID:  &first.ProductPrice.ID,
		TransactionType: models.TransactionIncome,
		Description:     strPtr("refund"),
		Date:            ts(s.T(), "2025-01-09T12:00:00"),
	})
	s.Require().NoError(err)
	s.Equal(first.ProductPrice.ID, resp.ProductPrice.ID)
	s.Equal(2.99, resp.ProductPrice.Price)
	s.Require().NotNil(resp.Transaction.Description)
	s.Equal("refund", *resp.Transaction.Description)
	s.Equal(1, s.countRows("product_prices"))
}

func (s *TransactionServiceSuite) TestCreate_PriceOfOtherProductRejected() {
	milk, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99))
	s.Require().NoError(err)

	_, err = s.svc.CreateTransaction(s.ctx, s.userID, &models.TransactionPayload{
		ProductName:     strPtr("Bread"),
		ProductPriceID:  &milk.ProductPrice.ID,
		TransactionType: models.TransactionExpense,
		Date:            ts(s.T(), "2025-01-09T00:00:00"),
	})
	se := requireKind(s.T(), err, KindValidation)
	s.Contains(se.Message, "does not belong to product")
	s.Equal(1, s.countRows("products"))
}

func (s *TransactionServiceSuite) TestCreate_AbsentPriceIsZero() {
	p := s.payload("Gift", 0)
	p.Price = nil

	resp, err := s.svc.CreateTransaction(s.ctx, s.userID, p)
	s.Require().NoError(err)
	s.Equal(0.0, resp.ProductPrice.Price)
}

func (s *TransactionServiceSuite) TestCreate_Validation() {
	_, err := s.svc.CreateTransaction(s.ctx, s.userID, &models.TransactionPayload{
		Price:           float64Ptr(1),
		TransactionType: models.TransactionExpense,
		Date:            ts(s.T(), "2025-01-09T00:00:00"),
	})
	se := requireKind(s.T(), err, KindValidation)
	s.Equal("Either product_id or product_name must be provided", se.Message)

	p := s.payload("Milk", 1)
	p.ProductName = strPtr("   ")
	_, err = s.svc.CreateTransaction(s.ctx, s.userID, p)
	requireKind(s.T(), err, KindValidation)

	p = s.payload("Milk", -5)
	_, err = s.svc.CreateTransaction(s.ctx, s.userID, p)
	requireKind(s.T(), err, KindValidation)

	p = s.payload("Milk", 1)
	p.Date = models.Timestamp{}
	_, err = s.svc.CreateTransaction(s.ctx, s.userID, p)
	requireKind(s.T(), err, KindValidation)

	_, err = s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 1, models.RefByName("  ")))
	requireKind(s.T(), err, KindValidation)

	s.Equal(0, s.countRows("products"))
}

func (s *TransactionServiceSuite) TestUsersAreIsolated() {
	other := signUp(s.T(), s.store, "b@x.com")

	mine, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99, models.RefByName("dairy")))
	s.Require().NoError(err)

	list, err := s.svc.ListTransactions(s.ctx, other)
	s.Require().NoError(err)
	s.Empty(list)

	// Чужой товар по id не резолвится
	_, err = s.svc.CreateTransaction(s.ctx, other, &models.TransactionPayload{
		ProductID:       &mine.Product.ID,
		Price:           float64Ptr(1),
		TransactionType: models.TransactionExpense,
		Date:            ts(s.T(), "2025-01-09T00:00:00"),
	})
	requireKind(s.T(), err, KindValidation)

	// Одноименный товар другого пользователя - отдельная строка
	theirs, err := s.svc.CreateTransaction(s.ctx, other, s.payload("Milk", 1, models.RefByName("dairy")))
	s.Require().NoError(err)
	s.NotEqual(mine.Product.ID, theirs.Product.ID)
	s.NotEqual(mine.Tags[0].ID, theirs.Tags[0].ID)
}

func (s *TransactionServiceSuite) TestGenerateTransaction() {
	_, err := s.svc.CreateTransaction(s.ctx, s.userID, s.payload("Milk", 2.99, models.RefByName("dairy")))
	s.Require().NoError(err)

	generated, err := s.svc.GenerateTransaction(s.ctx, s.userID)
	s.Require().NoError(err)
	s.False(generated.Date.IsZero())
	s.Require().NotNil(generated.Price)

	// Сгенерированный запрос можно сразу отправить
	_, err = s.svc.CreateTransaction(s.ctx, s.userID, generated)
	s.Require().NoError(err)
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

func TestTransactionService_PublishesEventAndInvalidatesCache(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")

	producer := new(kafkamocks.MockProducer)
	cache := new(redismocks.MockAnalyticsCache)
	svc := NewTransactionService(store, producer, cache)

	var published *models.TransactionCreatedEvent
	producer.On("SendTransactionEvent", mock.AnythingOfType("*models.TransactionCreatedEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(0).(*models.TransactionCreatedEvent)
		}).
		Return(nil)
	cache.On("InvalidateUser", mock.Anything, userID).Return(nil)

	resp, err := svc.CreateTransaction(context.Background(), userID, &models.TransactionPayload{
		ProductName:     strPtr("Milk"),
		Price:           float64Ptr(2.99),
		TransactionType: models.TransactionExpense,
		Date:            ts(t, "2025-01-08T00:00:00"),
		Tags:            []models.Ref{models.RefByName("dairy")},
	})
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, models.EventTypeTransactionCreated, published.EventType)
	assert.Contains(t, published.EventID, "evt_")
	assert.Equal(t, userID, published.Data.UserID)
	assert.Equal(t, resp.Transaction.ID, published.Data.TransactionID)
	assert.Equal(t, 2.99, published.Data.Amount)
	assert.Equal(t, []int64{resp.Tags[0].ID}, published.Data.TagIDs)

	producer.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestTransactionService_KafkaErrorDoesNotFailCommit(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")

	producer := new(kafkamocks.MockProducer)
	producer.On("SendTransactionEvent", mock.Anything).Return(errors.New("kafka error"))
	svc := NewTransactionService(store, producer, nil)

	_, err := svc.CreateTransaction(context.Background(), userID, &models.TransactionPayload{
		ProductName:     strPtr("Milk"),
		Price:           float64Ptr(1),
		TransactionType: models.TransactionExpense,
		Date:            ts(t, "2025-01-08T00:00:00"),
	})
	require.NoError(t, err)

	list, err := svc.ListTransactions(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	producer.AssertExpectations(t)
}

func TestTransactionService_DuplicateTransaction(t *testing.T) {
	repo := new(storagemocks.MockRepository)
	store := storagemocks.NewMockStore(repo)
	producer := new(kafkamocks.MockProducer)
	svc := NewTransactionService(store, producer, nil)
	ctx := context.Background()

	product := &models.Product{ID: 5, UserID: 1, Name: "Milk"}
	price := &models.ProductPrice{ID: 8, ProductID: 5, Price: 299}

	store.On("WithTx", ctx).Return(nil)
	repo.On("GetProduct", ctx, int64(1), int64(5)).Return(product, nil)
	repo.On("CreateProductPrice", ctx, int64(5), int64(299), mock.Anything).Return(price, nil)
	repo.On("CreateTransaction", ctx, mock.AnythingOfType("*models.Transaction")).
		Return(nil, &storage.ConstraintError{Table: storage.TableTransactions, Err: errors.New("UNIQUE constraint failed: transactions.id")})

	_, err := svc.CreateTransaction(ctx, 1, &models.TransactionPayload{
		ProductID:       int64Ptr(5),
		Price:           float64Ptr(2.99),
		TransactionType: models.TransactionExpense,
		Date:            ts(t, "2025-01-08T00:00:00"),
	})
	se := requireKind(t, err, KindConflict)
	assert.Equal(t, MsgDuplicateTxn, se.Message)

	repo.AssertExpectations(t)
	producer.AssertNotCalled(t, "SendTransactionEvent")
}

func TestTransactionService_PoolUnavailable(t *testing.T) {
	repo := new(storagemocks.MockRepository)
	store := storagemocks.NewMockStore(repo)
	svc := NewTransactionService(store, nil, nil)
	ctx := context.Background()

	store.On("WithTx", ctx).Return(storage.ErrConnUnavailable)
	store.On("WithConn", ctx).Return(storage.ErrConnUnavailable)

	_, err := svc.CreateTransaction(ctx, 1, &models.TransactionPayload{
		ProductID:       int64Ptr(5),
		TransactionType: models.TransactionExpense,
		Date:            ts(t, "2025-01-08T00:00:00"),
	})
	se := requireKind(t, err, KindUnavailable)
	assert.Equal(t, MsgPoolUnavailable, se.Message)

	_, err = svc.ListTransactions(ctx, 1)
	requireKind(t, err, KindUnavailable)

	repo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}
