package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	servicemocks "finance-tracker/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "test-token"

type testMocks struct {
	auth         *servicemocks.MockAuthService
	catalog      *servicemocks.MockCatalogService
	pricing      *servicemocks.MockPricingService
	tags         *servicemocks.MockTagService
	transactions *servicemocks.MockTransactionService
	analytics    *servicemocks.MockAnalyticsService
}

func newTestMocks() *testMocks {
	m := &testMocks{
		auth:         new(servicemocks.MockAuthService),
		catalog:      new(servicemocks.MockCatalogService),
		pricing:      new(servicemocks.MockPricingService),
		tags:         new(servicemocks.MockTagService),
		transactions: new(servicemocks.MockTransactionService),
		analytics:    new(servicemocks.MockAnalyticsService),
	}
	m.auth.On("Authenticate", testToken).Return(int64(1), nil).Maybe()
	return m
}

func setupTestRouter(m *testMocks) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handlers := NewHandlers(Services{
		Auth:         m.auth,
		Catalog:      m.catalog,
		Pricing:      m.pricing,
		Tags:         m.tags,
		Transactions: m.transactions,
		Analytics:    m.analytics,
	})
	return SetupRouter(handlers, zap.NewNop())
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reader = bytes.NewBuffer(nil)
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestHandlers_SignUp(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	creds := models.Credentials{Email: "a@x.com", PasswordHash: "pw"}
	m.auth.On("SignUp", mock.Anything, creds).Return(&models.PublicUser{ID: 1, Email: "a@x.com"}, nil).Once()
	m.auth.On("SignUp", mock.Anything, creds).Return(nil, &services.Error{Kind: services.KindConflict, Message: services.MsgDuplicateUser}).Once()

	w := doRequest(router, http.MethodPost, "/api/users", creds)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"email":"a@x.com"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/users", creds)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgDuplicateUser, errorBody(t, w))

	m.auth.AssertExpectations(t)
}

func TestHandlers_SignUp_BadBody(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	w := doRequest(router, http.MethodPost, "/api/users", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, errorBody(t, w))

	w = doRequest(router, http.MethodPost, "/api/users", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.auth.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestHandlers_Login(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	good := models.Credentials{Email: "a@x.com", PasswordHash: "pw"}
	bad := models.Credentials{Email: "a@x.com", PasswordHash: "wrong"}
	m.auth.On("Login", mock.Anything, good).Return(&models.TokenResponse{Token: "jwt"}, nil)
	m.auth.On("Login", mock.Anything, bad).Return(nil, &services.Error{Kind: services.KindUnauthorized, Message: services.MsgInvalidCredentials})

	w := doRequest(router, http.MethodPost, "/api/login", good)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/login", bad)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, services.MsgInvalidCredentials, errorBody(t, w))
}

func TestHandlers_CreateCategory(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	resp := &models.CreateCategoryResponse{Category: models.Category{ID: 1, Name: "Groceries", UserID: 1}}
	m.catalog.On("CreateCategory", mock.Anything, int64(1), &models.CategoryPayload{Name: "Groceries"}).Return(resp, nil)

	w := doRequest(router, http.MethodPost, "/api/categories", map[string]string{"name": "Groceries"})
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.CreateCategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.Category.ID)
	assert.Nil(t, got.Parent)
	m.catalog.AssertExpectations(t)
}

func TestHandlers_ListProducts(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	m.catalog.On("ListProducts", mock.Anything, int64(1)).Return([]models.ProductDto{{ID: 1, Name: "Milk"}}, nil)

	w := doRequest(router, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"category_id":null,"name":"Milk"}]`, w.Body.String())
}

func TestHandlers_ListProductPrices_Filter(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	productID := int64(4)
	m.pricing.On("ListProductPrices", mock.Anything, int64(1), &productID).Return([]models.ProductPriceDto{}, nil)
	m.pricing.On("ListProductPrices", mock.Anything, int64(1), (*int64)(nil)).Return([]models.ProductPriceDto{}, nil)

	w := doRequest(router, http.MethodGet, "/api/product_prices?product_id=4", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/product_prices", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/product_prices?product_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.pricing.AssertExpectations(t)
}

func TestHandlers_CreateTransaction(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	resp := &models.CreateTransactionResponse{
		Transaction:  models.Transaction{ID: 3, UserID: 1, ProductID: 1, ProductPriceID: 2, TransactionType: models.TransactionExpense},
		Product:      models.Product{ID: 1, UserID: 1, Name: "Milk"},
		ProductPrice: models.ProductPriceDto{ID: 2, ProductID: 1, Price: 2.99},
		Tags:         []models.TagDto{},
	}
	m.transactions.On("CreateTransaction", mock.Anything, int64(1), mock.MatchedBy(func(p *models.TransactionPayload) bool {
		return p.ProductName != nil && *p.ProductName == "Milk" && p.Price != nil && *p.Price == 2.99 && len(p.Tags) == 2
	})).Return(resp, nil)

	body := `{"product_name":"Milk","price":2.99,"transaction_type":"Expense","date":"2025-01-08T00:00:00","tags":["dairy",5]}`
	w := doRequest(router, http.MethodPost, "/api/transactions", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 2.99, got["product_price"].(map[string]interface{})["price"])
	assert.Equal(t, "Expense", got["transaction"].(map[string]interface{})["transaction_type"])

	m.transactions.AssertExpectations(t)
}

func TestHandlers_CreateTransaction_Errors(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	// Неизвестный тип транзакции отсекается при разборе тела
	w := doRequest(router, http.MethodPost, "/api/transactions", `{"product_name":"Milk","transaction_type":"Transfer","date":"2025-01-08T00:00:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.transactions.On("CreateTransaction", mock.Anything, int64(1), mock.Anything).
		Return(nil, &services.Error{Kind: services.KindConflict, Message: services.MsgDuplicateTxn}).Once()
	w = doRequest(router, http.MethodPost, "/api/transactions", `{"product_id":1,"transaction_type":"Income","date":"2025-01-08T00:00:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgDuplicateTxn, errorBody(t, w))

	m.transactions.On("CreateTransaction", mock.Anything, int64(1), mock.Anything).
		Return(nil, &services.Error{Kind: services.KindUnavailable, Message: services.MsgPoolUnavailable}).Once()
	w = doRequest(router, http.MethodPost, "/api/transactions", `{"product_id":1,"transaction_type":"Income","date":"2025-01-08T00:00:00"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	m.transactions.On("CreateTransaction", mock.Anything, int64(1), mock.Anything).
		Return(nil, errors.New("boom")).Once()
	w = doRequest(router, http.MethodPost, "/api/transactions", `{"product_id":1,"transaction_type":"Income","date":"2025-01-08T00:00:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "boom", errorBody(t, w))
}

func TestHandlers_GenerateTransaction(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	name := "Coffee"
	price := 3.5
	m.transactions.On("GenerateTransaction", mock.Anything, int64(1)).Return(&models.TransactionPayload{
		ProductName:     &name,
		Price:           &price,
		TransactionType: models.TransactionExpense,
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/transactions/generate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"product_name":"Coffee"`)
}

func TestHandlers_ListTransactions(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	m.transactions.On("ListTransactions", mock.Anything, int64(1)).Return([]models.TransactionDto{
		{ID: 1, UserID: 1, ProductID: 1, ProductPriceID: 1, TransactionType: models.TransactionExpense, Tags: []int64{}},
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/transactions", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.TransactionDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Tags)
	assert.True(t, strings.Contains(w.Body.String(), `"tags":[]`))
}

func TestHandlers_Analytics(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	m.analytics.On("SpendingTimeSeries", mock.Anything, int64(1)).Return([]models.SpendingTimeSeriesEntry{{Date: "2025-01-08", TotalSpending: 4.49}}, nil)
	m.analytics.On("CategorySpending", mock.Anything, int64(1)).Return([]models.CategorySpending{{CategoryName: "Fun", TotalSpending: 12}}, nil)
	m.analytics.On("ProductPriceData", mock.Anything, int64(1), int64(9)).Return([]models.ProductPriceData{{Date: "2025-01-08", Price: 2.99}}, nil)

	w := doRequest(router, http.MethodGet, "/api/spending-time-series", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2025-01-08","total_spending":4.49}]`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/category-spending", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"category_name":"Fun","total_spending":12}]`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/product-price-data?product_id=9", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2025-01-08","price":2.99}]`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/product-price-data", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.analytics.AssertExpectations(t)
}

func TestHandlers_Tags(t *testing.T) {
	m := newTestMocks()
	router := setupTestRouter(m)

	m.tags.On("CreateTag", mock.Anything, int64(1), &models.TagPayload{Name: ""}).
		Return(nil, &services.Error{Kind: services.KindValidation, Message: "Tag name cannot be empty"})
	m.tags.On("ListTags", mock.Anything, int64(1)).Return([]models.Tag{{ID: 1, Name: "weekly", UserID: 1}}, nil)

	w := doRequest(router, http.MethodPost, "/api/tags", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tag name cannot be empty", errorBody(t, w))

	w = doRequest(router, http.MethodGet, "/api/tags", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"weekly","user_id":1}]`, w.Body.String())
}
