package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var released = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(14800)
	require.NoError(t, err)
	assert.Equal(t, int64(14800), m.Subunits())
	assert.Equal(t, "148", m.Decimal(2).String())

	zero, err := NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero.Subunits())

	_, err = NewMoney(-1)
	assert.ErrorIs(t, err, ErrNegativePrice)

	assert.Panics(t, func() { MustMoney(-5) })
}

func TestNewProduct_Validation(t *testing.T) {
	price := MustMoney(100)

	_, err := NewProduct("s", "n", "", nil, nil, released, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewProduct("s", "n", "", price, nil, time.Time{}, 1)
	assert.ErrorIs(t, err, ErrMissingReleaseDate)

	_, err = NewProduct("s", "n", "", price, nil, released, -1)
	require.Error(t, err)
	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "numOfColors", invalid.Field)
	assert.ErrorIs(t, err, ErrNegativeColorCount)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "invalid numOfColors: color count cannot be negative", err.Error())
}

func TestProduct_SalePricePresence(t *testing.T) {
	p, err := NewProduct(" slug ", " Name ", "img", MustMoney(100), MustMoney(0), released, 0)
	require.NoError(t, err)
	assert.True(t, p.HasSalePrice())
	assert.Equal(t, "slug", p.Slug())
	assert.Equal(t, "Name", p.Name())

	p, err = NewProduct("slug", "Name", "img", MustMoney(100), nil, released, 0)
	require.NoError(t, err)
	assert.False(t, p.HasSalePrice())
	assert.Nil(t, p.SalePrice())
}

func TestProduct_ReleasedWithin(t *testing.T) {
	p, err := NewProduct("s", "n", "", MustMoney(1), nil, released, 0)
	require.NoError(t, err)

	assert.True(t, p.ReleasedWithin(released.Add(time.Hour), time.Hour))
	assert.False(t, p.ReleasedWithin(released.Add(time.Hour+time.Nanosecond), time.Hour))
	assert.True(t, p.ReleasedWithin(released.Add(-time.Hour), time.Hour))
}

func TestVariant_Parse(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseVariant("clearance")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.False(t, Variant{}.IsValid())
}

func TestVariant_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		V Variant `json:"variant"`
	}{VariantNewRelease()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"new-release"}`, string(b))

	var in struct {
		V Variant `json:"variant"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"variant":"on-sale"}`), &in))
	assert.Equal(t, VariantOnSale(), in.V)

	assert.Error(t, json.Unmarshal([]byte(`{"variant":"bogus"}`), &in))
}

func TestBadgeFor(t *testing.T) {
	b, ok := BadgeFor(VariantOnSale())
	require.True(t, ok)
	assert.Equal(t, Badge{Label: "Sale", Emphasis: EmphasisPrimary}, b)

	b, ok = BadgeFor(VariantNewRelease())
	require.True(t, ok)
	assert.Equal(t, Badge{Label: "Just Released!", Emphasis: EmphasisSecondary}, b)

	_, ok = BadgeFor(VariantDefault())
	assert.False(t, ok)

	assert.Panics(t, func() { BadgeFor(Variant{}) })
}

func TestVariant_AccessorsAreStable(t *testing.T) {
	assert.Equal(t, VariantOnSale(), VariantOnSale())
	assert.Equal(t, "on-sale", VariantOnSale().String())

	seen := map[Variant]bool{}
	for _, v := range Variants() {
		assert.True(t, v.IsValid())
		assert.False(t, seen[v], "duplicate variant %s", v)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}
