package services

import (
	"time"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
	"github.com/murkotick/shoe-card-service/internal/pkg/clock"
)

// DefaultNewReleaseWindow is how long after its release a product still
// counts as a new release.
const DefaultNewReleaseWindow = 30 * 24 * time.Hour

// VariantResolver is a domain service that classifies a product into exactly
// one card variant. When a product is both discounted and newly released,
// on-sale wins.
type VariantResolver struct {
	clock  clock.Clock
	window time.Duration
}

// NewVariantResolver creates a resolver evaluating "now" through clk.
// A non-positive window selects DefaultNewReleaseWindow.
func NewVariantResolver(clk clock.Clock, window time.Duration) *VariantResolver {
	if window <= 0 {
		window = DefaultNewReleaseWindow
	}
	return &VariantResolver{clock: clk, window: window}
}

// Resolve returns the variant of p at the clock's current time.
func (r *VariantResolver) Resolve(p *domain.Product) domain.Variant {
	return r.ResolveAt(p, r.clock.Now())
}

// ResolveAt returns the variant of p evaluated at now.
//
// The window is inclusive: a product released exactly window ago is still a
// new release. Release dates in the future are treated as new releases.
func (r *VariantResolver) ResolveAt(p *domain.Product, now time.Time) domain.Variant {
	// Presence, not value: a zero sale price is still a sale.
	if p.HasSalePrice() {
		return domain.VariantOnSale()
	}

	if p.ReleasedWithin(now, r.window) {
		return domain.VariantNewRelease()
	}

	return domain.VariantDefault()
}

// Window returns the configured new-release window.
func (r *VariantResolver) Window() time.Duration {
	return r.window
}
