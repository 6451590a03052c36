package domain

import (
	"strings"
	"time"
)

// Product is the immutable catalog entry a card is rendered for.
// Slug and ImageSrc are opaque to the card logic.
type Product struct {
	slug        string
	name        string
	imageSrc    string
	price       *Money
	salePrice   *Money
	releaseDate time.Time
	colorCount  int
}

// NewProduct validates and builds a Product.
// salePrice is nil when the product is not discounted; a zero sale price is
// still a sale price.
func NewProduct(slug, name, imageSrc string, price, salePrice *Money, releaseDate time.Time, colorCount int) (*Product, error) {
	if price == nil {
		return nil, NewInvalidInput("price", ErrMalformedAmount)
	}
	if releaseDate.IsZero() {
		return nil, NewInvalidInput("releaseDate", ErrMissingReleaseDate)
	}
	if colorCount < 0 {
		return nil, NewInvalidInput("numOfColors", ErrNegativeColorCount)
	}

	return &Product{
		slug:        strings.TrimSpace(slug),
		name:        strings.TrimSpace(name),
		imageSrc:    imageSrc,
		price:       price,
		salePrice:   salePrice,
		releaseDate: releaseDate.UTC(),
		colorCount:  colorCount,
	}, nil
}

// Getters

func (p *Product) Slug() string {
	return p.slug
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) ImageSrc() string {
	return p.imageSrc
}

func (p *Product) Price() *Money {
	return p.price
}

// SalePrice returns nil when the product is not discounted.
func (p *Product) SalePrice() *Money {
	return p.salePrice
}

func (p *Product) ReleaseDate() time.Time {
	return p.releaseDate
}

func (p *Product) ColorCount() int {
	return p.colorCount
}

// HasSalePrice reports whether a sale price is present, including zero.
func (p *Product) HasSalePrice() bool {
	return p.salePrice != nil
}

// ReleasedWithin reports whether now - releaseDate <= window.
// A release date in the future always satisfies the check.
func (p *Product) ReleasedWithin(now time.Time, window time.Duration) bool {
	return now.Sub(p.releaseDate) <= window
}
