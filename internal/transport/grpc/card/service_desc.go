package card

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "catalog.card.v1.CardService"

const (
	RenderCardMethod  = "/" + ServiceName + "/RenderCard"
	RenderCardsMethod = "/" + ServiceName + "/RenderCards"
	GetBadgeMethod    = "/" + ServiceName + "/GetBadge"
)

// CardServiceServer is the server API for the card service.
//
// Products and cards travel as google.protobuf.Struct with the same field
// names as the JSON API, so no generated message types are needed.
type CardServiceServer interface {
	// RenderCard takes a product object and returns a card object.
	RenderCard(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// RenderCards takes {"products": [...]} and returns {"cards": [...]}.
	RenderCards(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// GetBadge takes a variant name and returns {"label", "emphasis"}.
	GetBadge(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// ServiceDesc describes the card service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RenderCard", Handler: renderCardHandler},
		{MethodName: "RenderCards", Handler: renderCardsHandler},
		{MethodName: "GetBadge", Handler: getBadgeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/card/v1/card_service.proto",
}

// Register attaches srv to s.
func Register(s grpc.ServiceRegistrar, srv CardServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func renderCardHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardServiceServer).RenderCard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderCardMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardServiceServer).RenderCard(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func renderCardsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardServiceServer).RenderCards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderCardsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardServiceServer).RenderCards(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getBadgeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardServiceServer).GetBadge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetBadgeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardServiceServer).GetBadge(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Client is a thin client for the card service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) RenderCard(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RenderCardMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RenderCards(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RenderCardsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBadge(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetBadgeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
