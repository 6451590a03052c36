package render_card

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/murkotick/shoe-card-service/internal/app/card/contracts"
	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
	"github.com/murkotick/shoe-card-service/internal/app/card/domain/services"
	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
)

// Handler assembles a card: variant, presentation, badge, style and link.
type Handler struct {
	Resolver  *services.VariantResolver
	Presenter *services.Presenter
	Styler    *services.Styler
	Links     contracts.LinkBuilder
	Logger    *zap.Logger
}

// NewHandler constructs the handler. A nil logger is replaced by a no-op one.
func NewHandler(
	resolver *services.VariantResolver,
	presenter *services.Presenter,
	styler *services.Styler,
	links contracts.LinkBuilder,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Resolver:  resolver,
		Presenter: presenter,
		Styler:    styler,
		Links:     links,
		Logger:    logger,
	}
}

// Execute renders in, failing with an InvalidInputError for bad input.
func (h *Handler) Execute(ctx context.Context, in dto.ProductDTO) (*dto.CardDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	product, err := MapProduct(in)
	if err != nil {
		return nil, err
	}

	variant := h.Resolver.Resolve(product)

	presentation, err := h.Presenter.BuildPresentation(product, variant)
	if err != nil {
		return nil, err
	}

	var badge *domain.Badge
	if b, ok := domain.BadgeFor(variant); ok {
		badge = &b
	}

	style, err := h.Styler.Style(variant, badge)
	if err != nil {
		return nil, err
	}

	return &dto.CardDTO{
		Slug:         product.Slug(),
		Href:         h.Links.Build(product.Slug()),
		Name:         product.Name(),
		ImageSrc:     product.ImageSrc(),
		Variant:      variant,
		Presentation: &presentation,
		Badge:        badge,
		Style:        style,
	}, nil
}

// ExecuteOrFallback never fails on bad input: it logs the problem and
// returns a default-variant card without price text. Context errors are
// still returned.
func (h *Handler) ExecuteOrFallback(ctx context.Context, in dto.ProductDTO) (*dto.CardDTO, error) {
	card, err := h.Execute(ctx, in)
	if err == nil {
		return card, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	h.Logger.Warn("card render failed, using fallback",
		zap.String("slug", in.Slug),
		zap.Error(err))

	return h.fallback(in, err), nil
}

func (h *Handler) fallback(in dto.ProductDTO, cause error) *dto.CardDTO {
	// The default variant carries no badge, so styling cannot fail here.
	style, _ := h.Styler.Style(domain.VariantDefault(), nil)
	slug := strings.TrimSpace(in.Slug)
	return &dto.CardDTO{
		Slug:     slug,
		Href:     h.Links.Build(slug),
		Name:     strings.TrimSpace(in.Name),
		ImageSrc: in.ImageSrc,
		Variant:  domain.VariantDefault(),
		Style:    style,
		Error:    cause.Error(),
	}
}
