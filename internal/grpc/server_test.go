package grpc

import (
	"context"
	"net"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	servicemocks "finance-tracker/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func setupTestServer(t *testing.T, authSvc services.AuthService, analytics services.AnalyticsService) *AnalyticsClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := NewGRPCServer(authSvc, NewAnalyticsGRPCServer(analytics))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewAnalyticsClient(conn)
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestAnalyticsGRPC_SpendingTimeSeries(t *testing.T) {
	authSvc := new(servicemocks.MockAuthService)
	analytics := new(servicemocks.MockAnalyticsService)
	client := setupTestServer(t, authSvc, analytics)

	authSvc.On("Authenticate", "good").Return(int64(7), nil)
	analytics.On("SpendingTimeSeries", mock.Anything, int64(7)).Return([]models.SpendingTimeSeriesEntry{
		{Date: "2025-01-08", TotalSpending: 4.49},
	}, nil)

	list, err := client.SpendingTimeSeries(withToken("good"))
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 1)

	entry := list.GetValues()[0].GetStructValue().AsMap()
	assert.Equal(t, "2025-01-08", entry["date"])
	assert.Equal(t, 4.49, entry["total_spending"])

	analytics.AssertExpectations(t)
}

func TestAnalyticsGRPC_CategorySpending(t *testing.T) {
	authSvc := new(servicemocks.MockAuthService)
	analytics := new(servicemocks.MockAnalyticsService)
	client := setupTestServer(t, authSvc, analytics)

	authSvc.On("Authenticate", "good").Return(int64(7), nil)
	analytics.On("CategorySpending", mock.Anything, int64(7)).Return([]models.CategorySpending{
		{CategoryName: "Fun", TotalSpending: 12},
		{CategoryName: "Groceries", TotalSpending: 6},
	}, nil)

	list, err := client.CategorySpending(withToken("good"))
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 2)
	assert.Equal(t, "Groceries", list.GetValues()[1].GetStructValue().AsMap()["category_name"])
}

func TestAnalyticsGRPC_ProductPriceData(t *testing.T) {
	authSvc := new(servicemocks.MockAuthService)
	analytics := new(servicemocks.MockAnalyticsService)
	client := setupTestServer(t, authSvc, analytics)

	authSvc.On("Authenticate", "good").Return(int64(7), nil)
	analytics.On("ProductPriceData", mock.Anything, int64(7), int64(3)).Return([]models.ProductPriceData{
		{Date: "2025-01-08", Price: 2.99},
	}, nil)

	list, err := client.ProductPriceData(withToken("good"), 3)
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 1)
	assert.Equal(t, 2.99, list.GetValues()[0].GetStructValue().AsMap()["price"])

	_, err = client.ProductPriceData(withToken("good"), 0)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAnalyticsGRPC_Unauthenticated(t *testing.T) {
	authSvc := new(servicemocks.MockAuthService)
	analytics := new(servicemocks.MockAnalyticsService)
	client := setupTestServer(t, authSvc, analytics)

	authSvc.On("Authenticate", "bad").Return(int64(0), &services.Error{Kind: services.KindUnauthorized, Message: "Unauthorized"})

	_, err := client.SpendingTimeSeries(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.SpendingTimeSeries(withToken("bad"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	analytics.AssertNotCalled(t, "SpendingTimeSeries", mock.Anything, mock.Anything)
}

func TestAnalyticsGRPC_ServiceErrors(t *testing.T) {
	authSvc := new(servicemocks.MockAuthService)
	analytics := new(servicemocks.MockAnalyticsService)
	client := setupTestServer(t, authSvc, analytics)

	authSvc.On("Authenticate", "good").Return(int64(7), nil)
	analytics.On("SpendingTimeSeries", mock.Anything, int64(7)).
		Return(nil, &services.Error{Kind: services.KindUnavailable, Message: services.MsgPoolUnavailable})

	_, err := client.SpendingTimeSeries(withToken("good"))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())
	assert.Equal(t, services.MsgPoolUnavailable, st.Message())
}
