package render_cards

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_card"
)

const (
	// DefaultConcurrency bounds how many cards render at once.
	DefaultConcurrency = 8

	// MaxBatchSize caps the products accepted by one transport request.
	MaxBatchSize = 500
)

// Handler renders a page of cards. Each card is independent, so they are
// rendered in parallel; the output keeps the input order.
type Handler struct {
	single      *render_card.Handler
	concurrency int
}

// NewHandler wraps a single-card handler. concurrency <= 0 selects
// DefaultConcurrency.
func NewHandler(single *render_card.Handler, concurrency int) *Handler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Handler{single: single, concurrency: concurrency}
}

// Execute renders every product. Invalid products become fallback cards;
// only context cancellation aborts the batch.
func (h *Handler) Execute(ctx context.Context, products []dto.ProductDTO) ([]*dto.CardDTO, error) {
	out := make([]*dto.CardDTO, len(products))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)

	for i := range products {
		g.Go(func() error {
			card, err := h.single.ExecuteOrFallback(gctx, products[i])
			if err != nil {
				return err
			}
			out[i] = card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
