package rest

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// CORSMiddleware возвращает middleware для обработки CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру.
// events и stats отдают только события текущего пользователя.
func SetupCommonEndpoints(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	journal := router.Group("/api", authMiddleware)

	// Events endpoint
	journal.GET("/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}
		events := logger.GetEvents(currentUser(c), limit)
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	// Stats endpoint
	journal.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, logger.GetStats(currentUser(c)))
	})
}

// SetupRouter настраивает маршруты REST API
func SetupRouter(handlers *Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(RequestID(), RequestLogger(log), gin.Recovery())

	// CORS middleware
	router.Use(CORSMiddleware())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	authMiddleware := AuthMiddleware(handlers.authService)
	registerAPIRoutes(router, handlers, authMiddleware)

	// Общие endpoints (health, events, stats)
	SetupCommonEndpoints(router, authMiddleware)

	return router
}

func registerAPIRoutes(router *gin.Engine, handlers *Handlers, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")
	{
		api.POST("/users", handlers.SignUp)
		api.POST("/login", handlers.Login)
	}

	protected := api.Group("", authMiddleware)
	{
		protected.POST("/categories", handlers.CreateCategory)
		protected.GET("/categories", handlers.ListCategories)

		protected.POST("/products", handlers.CreateProduct)
		protected.GET("/products", handlers.ListProducts)

		protected.POST("/product_prices", handlers.CreateProductPrice)
		protected.GET("/product_prices", handlers.ListProductPrices)

		protected.POST("/tags", handlers.CreateTag)
		protected.GET("/tags", handlers.ListTags)

		protected.POST("/transactions", handlers.CreateTransaction)
		protected.GET("/transactions", handlers.ListTransactions)
		protected.GET("/transactions/generate", handlers.GenerateTransaction)

		protected.GET("/spending-time-series", handlers.SpendingTimeSeries)
		protected.GET("/category-spending", handlers.CategorySpending)
		protected.GET("/product-price-data", handlers.ProductPriceData)
	}
}
