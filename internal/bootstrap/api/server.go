package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-tracker/config"
	_ "finance-tracker/docs" // Swagger docs
	"finance-tracker/internal/api/rest"
	"finance-tracker/internal/grpc"
	"finance-tracker/internal/logger"
)

// StartFinanceAPI запускает HTTP и gRPC серверы и ждет SIGINT/SIGTERM
func StartFinanceAPI(cfg *config.Config) error {
	log, err := logger.Init(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	gin.SetMode(gin.ReleaseMode)

	// Инициализация зависимостей
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	// Настройка REST API
	handlers := rest.NewHandlers(rest.Services{
		Auth:         deps.AuthService,
		Catalog:      deps.CatalogService,
		Pricing:      deps.PricingService,
		Tags:         deps.TagService,
		Transactions: deps.TransactionService,
		Analytics:    deps.AnalyticsService,
	})
	router := rest.SetupRouter(handlers, log)

	// Запуск HTTP сервера
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 2)
	go func() {
		log.Info("Finance API starting", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Запуск gRPC сервера в отдельной горутине
	grpcServer := grpc.NewGRPCServer(deps.AuthService, grpc.NewAnalyticsGRPCServer(deps.AnalyticsService))
	if cfg.Server.GRPCAddress != "" {
		go func() {
			if err := grpc.StartGRPCServer(cfg, grpcServer); err != nil {
				serverErr <- err
			}
		}()
	} else {
		log.Info("gRPC server disabled")
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		log.Info("Shutting down server...")
	case runErr = <-serverErr:
		log.Error("Server failed", zap.Error(runErr))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		if runErr == nil {
			runErr = err
		}
	}

	log.Info("Server exited")
	return runErr
}
