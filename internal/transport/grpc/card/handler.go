package card

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_card"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_cards"
)

// Queries groups the card read handlers.
type Queries struct {
	Render *render_card.Handler
	Batch  *render_cards.Handler
}

// Handler is a thin gRPC transport adapter.
// It maps Struct messages to application DTOs and delegates to the queries.
type Handler struct {
	queries Queries
}

var _ CardServiceServer = (*Handler)(nil)

func NewHandler(q Queries) *Handler {
	return &Handler{queries: q}
}

func (h *Handler) RenderCard(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := mapProduct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	card, err := h.queries.Render.Execute(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}
	return replyStruct(card)
}

func (h *Handler) RenderCards(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	products, ok := req.GetFields()["products"]
	if !ok || products.GetListValue() == nil {
		return nil, status.Error(codes.InvalidArgument, "products must be a list")
	}
	values := products.GetListValue().GetValues()
	if len(values) > render_cards.MaxBatchSize {
		return nil, status.Error(codes.InvalidArgument,
			fmt.Sprintf("too many products in batch: %d > %d", len(values), render_cards.MaxBatchSize))
	}

	in, err := mapProducts(values)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	cards, err := h.queries.Batch.Execute(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}
	return replyStruct(map[string]any{"cards": cards})
}

func (h *Handler) GetBadge(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	v, err := domain.ParseVariant(req.GetValue())
	if err != nil {
		return nil, mapError(err)
	}

	badge, ok := domain.BadgeFor(v)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "variant %s has no badge", v)
	}
	return replyStruct(badge)
}

func replyStruct(v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
