package services

import (
	"fmt"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

// Badge geometry, in CSS pixels.
const (
	badgeFontSizePx     = 14
	badgeTopPx          = 12
	badgeRightPx        = -4
	badgePaddingPx      = 8
	badgeBorderRadiusPx = 2
	badgeFontWeight     = 700
)

// Styler maps a variant and its badge to rendering hints using an injected
// palette.
type Styler struct {
	palette domain.Palette
}

// NewStyler creates a Styler over palette.
func NewStyler(palette domain.Palette) *Styler {
	return &Styler{palette: palette}
}

// Style returns the StyleParams for a card of variant v.
// badge is the result of domain.BadgeFor(v); nil means no badge.
func (s *Styler) Style(v domain.Variant, badge *domain.Badge) (domain.StyleParams, error) {
	out := domain.StyleParams{
		NameColor:      s.palette.Gray900,
		NameWeight:     s.palette.Weights.Medium,
		ColorInfoColor: s.palette.Gray700,
	}

	switch v {
	case domain.VariantOnSale():
		out.PriceColor = s.palette.Gray700
		out.PriceStrikethrough = true
		out.SalePriceColor = s.palette.Primary
		out.SalePriceWeight = s.palette.Weights.Medium
	case domain.VariantNewRelease(), domain.VariantDefault():
	default:
		return domain.StyleParams{}, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, v.String())
	}

	if badge != nil {
		bg, err := s.emphasisColor(badge.Emphasis)
		if err != nil {
			return domain.StyleParams{}, err
		}
		out.Badge = &domain.BadgeStyle{
			Label:        badge.Label,
			Background:   bg,
			Foreground:   s.palette.White,
			FontWeight:   badgeFontWeight,
			FontSizePx:   badgeFontSizePx,
			TopPx:        badgeTopPx,
			RightPx:      badgeRightPx,
			PaddingPx:    badgePaddingPx,
			BorderRadius: badgeBorderRadiusPx,
		}
	}

	return out, nil
}

func (s *Styler) emphasisColor(e domain.Emphasis) (string, error) {
	switch e {
	case domain.EmphasisPrimary:
		return s.palette.Primary, nil
	case domain.EmphasisSecondary:
		return s.palette.Secondary, nil
	default:
		return "", fmt.Errorf("styler: unknown badge emphasis %q", e)
	}
}
