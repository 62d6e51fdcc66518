package rest

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers содержит обработчики REST API
type Handlers struct {
	authService        services.AuthService
	catalogService     services.CatalogService
	pricingService     services.PricingService
	tagService         services.TagService
	transactionService services.TransactionService
	analyticsService   services.AnalyticsService
}

// Services - набор сервисов, которые нужны обработчикам
type Services struct {
	Auth         services.AuthService
	Catalog      services.CatalogService
	Pricing      services.PricingService
	Tags         services.TagService
	Transactions services.TransactionService
	Analytics    services.AnalyticsService
}

// Создает новые обработчики REST API
func NewHandlers(svc Services) *Handlers {
	return &Handlers{
		authService:        svc.Auth,
		catalogService:     svc.Catalog,
		pricingService:     svc.Pricing,
		tagService:         svc.Tags,
		transactionService: svc.Transactions,
		analyticsService:   svc.Analytics,
	}
}

// currentUser возвращает id пользователя, положенный AuthMiddleware
func currentUser(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// bindJSON разбирает тело запроса; при ошибке отвечает 400
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// queryInt64 читает необязательный положительный целый параметр запроса
func queryInt64(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &v, true
}
