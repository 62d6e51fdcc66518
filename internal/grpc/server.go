package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"finance-tracker/config"
	"finance-tracker/internal/api"
	"finance-tracker/internal/auth"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/services"
)

// AnalyticsGRPCServer отдает агрегаты аналитики через gRPC
type AnalyticsGRPCServer struct {
	analytics services.AnalyticsService
}

var _ api.AnalyticsGRPCHandler = (*AnalyticsGRPCServer)(nil)

func NewAnalyticsGRPCServer(analytics services.AnalyticsService) *AnalyticsGRPCServer {
	return &AnalyticsGRPCServer{analytics: analytics}
}

func (s *AnalyticsGRPCServer) SpendingTimeSeries(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	series, err := s.analytics.SpendingTimeSeries(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	items := make([]interface{}, 0, len(series))
	for _, e := range series {
		items = append(items, map[string]interface{}{"date": e.Date, "total_spending": e.TotalSpending})
	}
	return toListValue(items)
}

func (s *AnalyticsGRPCServer) CategorySpending(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	spending, err := s.analytics.CategorySpending(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	items := make([]interface{}, 0, len(spending))
	for _, c := range spending {
		items = append(items, map[string]interface{}{"category_name": c.CategoryName, "total_spending": c.TotalSpending})
	}
	return toListValue(items)
}

func (s *AnalyticsGRPCServer) ProductPriceData(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "product_id must be positive")
	}

	points, err := s.analytics.ProductPriceData(ctx, userID, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	items := make([]interface{}, 0, len(points))
	for _, p := range points {
		items = append(items, map[string]interface{}{"date": p.Date, "price": p.Price})
	}
	return toListValue(items)
}

func userFromContext(ctx context.Context) (int64, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "missing user")
	}
	return userID, nil
}

func toListValue(items []interface{}) (*structpb.ListValue, error) {
	list, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return list, nil
}

// toStatus переводит ошибку сервиса в gRPC-статус
func toStatus(err error) error {
	var se *services.Error
	if !errors.As(err, &se) {
		return status.Error(codes.Internal, err.Error())
	}

	switch se.Kind {
	case services.KindValidation, services.KindConflict:
		return status.Error(codes.InvalidArgument, se.Message)
	case services.KindUnauthorized:
		return status.Error(codes.Unauthenticated, se.Message)
	case services.KindUnavailable:
		return status.Error(codes.Unavailable, se.Message)
	default:
		return status.Error(codes.Internal, se.Message)
	}
}

// NewGRPCServer создает gRPC сервер с перехватчиком авторизации
func NewGRPCServer(authSvc services.AuthService, handler api.AnalyticsGRPCHandler) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(AuthInterceptor(authSvc)))
	RegisterAnalyticsServer(s, handler)

	// Включаем reflection API для grpcurl и других инструментов
	reflection.Register(s)
	return s
}

// StartGRPCServer слушает cfg.Server.GRPCAddress и блокируется до остановки сервера
func StartGRPCServer(cfg *config.Config, s *grpc.Server) error {
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddress)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger.Log.Info("gRPC server listening", zap.String("address", cfg.Server.GRPCAddress))
	if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}
