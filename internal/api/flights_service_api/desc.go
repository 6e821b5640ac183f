package flights_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "flightsinfo.v1.FlightsService"

// FlightsServiceServer is the server API for flightsinfo.v1.FlightsService.
// Messages are protobuf well-known types so no generated code is needed.
type FlightsServiceServer interface {
	ListFlights(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetFlight(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	AddFlight(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditFlight(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveFlight(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	ListAirports(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListAircraft(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

func RegisterFlightsServiceServer(s grpc.ServiceRegistrar, srv FlightsServiceServer) {
	s.RegisterService(&FlightsServiceDesc, srv)
}

var FlightsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListFlights", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s FlightsServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.ListFlights(ctx, in)
			}),
		unary("GetFlight", func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
			func(s FlightsServiceServer, ctx context.Context, in *wrapperspb.Int64Value) (proto.Message, error) {
				return s.GetFlight(ctx, in)
			}),
		unary("AddFlight", func() *structpb.Struct { return new(structpb.Struct) },
			func(s FlightsServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.AddFlight(ctx, in)
			}),
		unary("EditFlight", func() *structpb.Struct { return new(structpb.Struct) },
			func(s FlightsServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.EditFlight(ctx, in)
			}),
		unary("RemoveFlight", func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
			func(s FlightsServiceServer, ctx context.Context, in *wrapperspb.Int64Value) (proto.Message, error) {
				return s.RemoveFlight(ctx, in)
			}),
		unary("ListAirports", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s FlightsServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.ListAirports(ctx, in)
			}),
		unary("ListAircraft", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s FlightsServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.ListAircraft(ctx, in)
			}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flightsinfo/v1/flights.proto",
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary[Req proto.Message](name string, newReq func() Req, call func(FlightsServiceServer, context.Context, Req) (proto.Message, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(FlightsServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(FlightsServiceServer), ctx, req.(Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
