package api

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AnalyticsGRPCHandler определяет интерфейс gRPC-сервиса financetracker.v1.Analytics.
// Пользователь берется из контекста, куда его кладет перехватчик авторизации.
type AnalyticsGRPCHandler interface {
	// SpendingTimeSeries возвращает список {date, total_spending}
	SpendingTimeSeries(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)

	// CategorySpending возвращает список {category_name, total_spending}
	CategorySpending(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)

	// ProductPriceData возвращает список {date, price} для товара req.Value
	ProductPriceData(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error)
}
