package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

func styleFor(t *testing.T, s *Styler, v domain.Variant) domain.StyleParams {
	t.Helper()
	var badge *domain.Badge
	if b, ok := domain.BadgeFor(v); ok {
		badge = &b
	}
	out, err := s.Style(v, badge)
	require.NoError(t, err)
	return out
}

func TestStyle_OnSale(t *testing.T) {
	pal := domain.DefaultPalette()
	out := styleFor(t, NewStyler(pal), domain.VariantOnSale())

	require.NotNil(t, out.Badge)
	assert.Equal(t, "Sale", out.Badge.Label)
	assert.Equal(t, pal.Primary, out.Badge.Background)
	assert.Equal(t, pal.White, out.Badge.Foreground)
	assert.Equal(t, 700, out.Badge.FontWeight)
	assert.Equal(t, 14, out.Badge.FontSizePx)

	assert.True(t, out.PriceStrikethrough)
	assert.Equal(t, pal.Gray700, out.PriceColor)
	assert.Equal(t, pal.Primary, out.SalePriceColor)
	assert.Equal(t, pal.Weights.Medium, out.SalePriceWeight)
}

func TestStyle_NewRelease(t *testing.T) {
	pal := domain.DefaultPalette()
	out := styleFor(t, NewStyler(pal), domain.VariantNewRelease())

	require.NotNil(t, out.Badge)
	assert.Equal(t, "Just Released!", out.Badge.Label)
	assert.Equal(t, pal.Secondary, out.Badge.Background)
	assert.False(t, out.PriceStrikethrough)
	assert.Empty(t, out.SalePriceColor)
}

func TestStyle_Default(t *testing.T) {
	pal := domain.DefaultPalette()
	out := styleFor(t, NewStyler(pal), domain.VariantDefault())

	assert.Nil(t, out.Badge)
	assert.False(t, out.PriceStrikethrough)
	assert.Equal(t, pal.Gray900, out.NameColor)
	assert.Equal(t, pal.Gray700, out.ColorInfoColor)
}

func TestStyle_InjectedPalette(t *testing.T) {
	pal := domain.DefaultPalette()
	pal.Primary = "#ff0000"
	out := styleFor(t, NewStyler(pal), domain.VariantOnSale())

	assert.Equal(t, "#ff0000", out.Badge.Background)
	assert.Equal(t, "#ff0000", out.SalePriceColor)
}

func TestStyle_Errors(t *testing.T) {
	s := NewStyler(domain.DefaultPalette())

	_, err := s.Style(domain.Variant{}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	_, err = s.Style(domain.VariantOnSale(), &domain.Badge{Label: "Sale", Emphasis: "loud"})
	assert.Error(t, err)
}
