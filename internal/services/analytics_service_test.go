package services

import (
	"context"
	"errors"
	"testing"

	"finance-tracker/internal/models"
	redismocks "finance-tracker/internal/redis/mocks"
	"finance-tracker/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTxn(t *testing.T, store *sqlite.SQLiteStorage, userID int64, product string, category *string, price float64, date string) *models.CreateTransactionResponse {
	t.Helper()
	ctx := context.Background()

	if category != nil {
		_, err := NewCatalogService(store).CreateProduct(ctx, userID, &models.ProductPayload{Name: product, CategoryName: category})
		if KindOf(err) != KindConflict {
			require.NoError(t, err)
		}
	}

	resp, err := NewTransactionService(store, nil, nil).CreateTransaction(ctx, userID, &models.TransactionPayload{
		ProductName:     strPtr(product),
		Price:           float64Ptr(price),
		TransactionType: models.TransactionExpense,
		Date:            ts(t, date),
	})
	require.NoError(t, err)
	return resp
}

func TestAnalyticsService_SpendingTimeSeries(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")
	other := signUp(t, store, "b@x.com")

	createTxn(t, store, userID, "Milk", nil, 2.99, "2025-01-08T08:00:00")
	createTxn(t, store, userID, "Bread", nil, 1.50, "2025-01-08T19:30:00")
	createTxn(t, store, userID, "Milk", nil, 3.10, "2025-01-07T12:00:00")
	createTxn(t, store, other, "Milk", nil, 100, "2025-01-08T08:00:00")

	svc := NewAnalyticsService(store, nil)
	series, err := svc.SpendingTimeSeries(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, []models.SpendingTimeSeriesEntry{
		{Date: "2025-01-07", TotalSpending: 3.10},
		{Date: "2025-01-08", TotalSpending: 4.49},
	}, series)

	empty, err := svc.SpendingTimeSeries(context.Background(), signUp(t, store, "c@x.com"))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAnalyticsService_CategorySpending(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")
	ctx := context.Background()

	createTxn(t, store, userID, "Milk", strPtr("Groceries"), 2.99, "2025-01-08T08:00:00")
	createTxn(t, store, userID, "Milk", strPtr("Groceries"), 3.01, "2025-01-09T08:00:00")
	createTxn(t, store, userID, "Cinema", strPtr("Fun"), 12, "2025-01-09T20:00:00")
	createTxn(t, store, userID, "Gift", nil, 50, "2025-01-09T20:00:00")

	// Категория без транзакций в отчет не попадает
	_, err := NewCatalogService(store).CreateCategory(ctx, userID, &models.CategoryPayload{Name: "Empty"})
	require.NoError(t, err)

	svc := NewAnalyticsService(store, nil)
	spending, err := svc.CategorySpending(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, []models.CategorySpending{
		{CategoryName: "Fun", TotalSpending: 12},
		{CategoryName: "Groceries", TotalSpending: 6},
	}, spending)
}

func TestAnalyticsService_ProductPriceData(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")
	other := signUp(t, store, "b@x.com")

	first := createTxn(t, store, userID, "Milk", nil, 2.99, "2025-01-08T08:00:00")
	createTxn(t, store, userID, "Milk", nil, 3.49, "2025-01-10T08:00:00")

	svc := NewAnalyticsService(store, nil)
	points, err := svc.ProductPriceData(context.Background(), userID, first.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.ProductPriceData{
		{Date: "2025-01-08", Price: 2.99},
		{Date: "2025-01-10", Price: 3.49},
	}, points)

	// Чужой товар не виден
	foreign, err := svc.ProductPriceData(context.Background(), other, first.Product.ID)
	require.NoError(t, err)
	assert.Empty(t, foreign)
}

func TestAnalyticsService_CacheHit(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")
	cache := new(redismocks.MockAnalyticsCache)

	cached := []models.SpendingTimeSeriesEntry{{Date: "2025-01-01", TotalSpending: 42}}
	cache.On("GetView", mock.Anything, userID, viewSpendingTimeSeries, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(3).(*[]models.SpendingTimeSeriesEntry)
			*dest = cached
		}).
		Return(true, nil)

	svc := NewAnalyticsService(store, cache)
	series, err := svc.SpendingTimeSeries(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, cached, series)

	cache.AssertNotCalled(t, "SetView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsService_CacheMissAndFailure(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")
	createTxn(t, store, userID, "Milk", strPtr("Groceries"), 2.99, "2025-01-08T08:00:00")

	cache := new(redismocks.MockAnalyticsCache)
	cache.On("GetView", mock.Anything, userID, viewSpendingTimeSeries, mock.Anything).Return(false, nil)
	cache.On("SetView", mock.Anything, userID, viewSpendingTimeSeries, mock.Anything).Return(nil)
	cache.On("GetView", mock.Anything, userID, viewCategorySpending, mock.Anything).Return(false, errors.New("redis down"))
	cache.On("SetView", mock.Anything, userID, viewCategorySpending, mock.Anything).Return(errors.New("redis down"))

	svc := NewAnalyticsService(store, cache)

	series, err := svc.SpendingTimeSeries(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, series, 1)

	// Недоступный Redis не ломает чтение из БД
	spending, err := svc.CategorySpending(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []models.CategorySpending{{CategoryName: "Groceries", TotalSpending: 2.99}}, spending)

	cache.AssertExpectations(t)
}

func TestAnalyticsService_WriteDuringLoadSkipsCacheFill(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")
	createTxn(t, store, userID, "Milk", strPtr("Groceries"), 2.99, "2025-01-08T08:00:00")

	cache := new(redismocks.MockAnalyticsCache)
	cache.On("InvalidateUser", mock.Anything, userID).Return(nil)
	// Запись другого запроса сбрасывает кэш, пока чтение идет в БД
	cache.On("GetView", mock.Anything, userID, viewCategorySpending, mock.Anything).
		Run(func(args mock.Arguments) {
			invalidateAnalytics(context.Background(), cache, userID)
		}).
		Return(false, nil)

	svc := NewAnalyticsService(store, cache)
	spending, err := svc.CategorySpending(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, spending, 1)

	cache.AssertNotCalled(t, "SetView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// Следующее чтение без конкурирующей записи снова заполняет кэш
	cache2 := new(redismocks.MockAnalyticsCache)
	cache2.On("GetView", mock.Anything, userID, viewCategorySpending, mock.Anything).Return(false, nil)
	cache2.On("SetView", mock.Anything, userID, viewCategorySpending, mock.Anything).Return(nil).Once()

	_, err = NewAnalyticsService(store, cache2).CategorySpending(context.Background(), userID)
	require.NoError(t, err)
	cache2.AssertExpectations(t)
}

func TestAnalyticsService_Refresh(t *testing.T) {
	store := setupTestStore(t)
	userID := signUp(t, store, "a@x.com")
	resp := createTxn(t, store, userID, "Milk", nil, 2.99, "2025-01-08T08:00:00")

	cache := new(redismocks.MockAnalyticsCache)
	cache.On("InvalidateUser", mock.Anything, userID).Return(nil).Once()
	cache.On("SetView", mock.Anything, userID, viewSpendingTimeSeries, mock.Anything).Return(nil).Once()
	cache.On("SetView", mock.Anything, userID, viewCategorySpending, mock.Anything).Return(nil).Once()
	cache.On("SetView", mock.Anything, userID, viewProductPriceData(resp.Product.ID), mock.Anything).Return(nil).Once()

	svc := NewAnalyticsService(store, cache)
	require.NoError(t, svc.Refresh(context.Background(), userID, resp.Product.ID))
	cache.AssertExpectations(t)

	// Без кэша Refresh ничего не делает
	require.NoError(t, NewAnalyticsService(store, nil).Refresh(context.Background(), userID))
}
