package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"finance-tracker/internal/api"
)

const AnalyticsServiceName = "financetracker.v1.Analytics"

const (
	methodSpendingTimeSeries = "/" + AnalyticsServiceName + "/SpendingTimeSeries"
	methodCategorySpending   = "/" + AnalyticsServiceName + "/CategorySpending"
	methodProductPriceData   = "/" + AnalyticsServiceName + "/ProductPriceData"
)

// AnalyticsServiceDesc описывает сервис на well-known типах protobuf, без сгенерированного кода
var AnalyticsServiceDesc = grpc.ServiceDesc{
	ServiceName: AnalyticsServiceName,
	HandlerType: (*api.AnalyticsGRPCHandler)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SpendingTimeSeries", Handler: spendingTimeSeriesHandler},
		{MethodName: "CategorySpending", Handler: categorySpendingHandler},
		{MethodName: "ProductPriceData", Handler: productPriceDataHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "financetracker/v1/analytics.proto",
}

func RegisterAnalyticsServer(s grpc.ServiceRegistrar, srv api.AnalyticsGRPCHandler) {
	s.RegisterService(&AnalyticsServiceDesc, srv)
}

func spendingTimeSeriesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(api.AnalyticsGRPCHandler).SpendingTimeSeries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSpendingTimeSeries}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(api.AnalyticsGRPCHandler).SpendingTimeSeries(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func categorySpendingHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(api.AnalyticsGRPCHandler).CategorySpending(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCategorySpending}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(api.AnalyticsGRPCHandler).CategorySpending(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func productPriceDataHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(api.AnalyticsGRPCHandler).ProductPriceData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodProductPriceData}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(api.AnalyticsGRPCHandler).ProductPriceData(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// AnalyticsClient - клиент сервиса financetracker.v1.Analytics
type AnalyticsClient struct {
	cc grpc.ClientConnInterface
}

func NewAnalyticsClient(cc grpc.ClientConnInterface) *AnalyticsClient {
	return &AnalyticsClient{cc: cc}
}

func (c *AnalyticsClient) SpendingTimeSeries(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodSpendingTimeSeries, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AnalyticsClient) CategorySpending(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodCategorySpending, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AnalyticsClient) ProductPriceData(ctx context.Context, productID int64, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodProductPriceData, wrapperspb.Int64(productID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
