package dto

import (
	"bytes"
	"encoding/json"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

// ProductDTO is the wire form of a product handed to the card renderer.
// Prices and the color count are kept as json.Number until validated.
//
// Decoding never fails on a badly typed field. The first such field is
// recorded and reported by DecodeErr, so one bad item in a list does not
// reject its siblings.
type ProductDTO struct {
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	ImageSrc    string       `json:"imageSrc"`
	Price       json.Number  `json:"price"`
	SalePrice   *json.Number `json:"salePrice,omitempty"`
	ReleaseDate string       `json:"releaseDate"`
	NumOfColors json.Number  `json:"numOfColors"`

	decodeErr error
}

// DecodeErr returns the *domain.InvalidInputError for the first field that
// could not be decoded, or nil.
func (p *ProductDTO) DecodeErr() error {
	return p.decodeErr
}

func (p *ProductDTO) UnmarshalJSON(b []byte) error {
	*p = ProductDTO{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		p.decodeErr = domain.NewInvalidInput("product", domain.ErrMalformedProduct)
		return nil
	}

	p.field(fields, "slug", &p.Slug, domain.ErrMalformedText)
	p.field(fields, "name", &p.Name, domain.ErrMalformedText)
	p.field(fields, "imageSrc", &p.ImageSrc, domain.ErrMalformedText)
	p.field(fields, "price", &p.Price, domain.ErrMalformedAmount)
	p.field(fields, "releaseDate", &p.ReleaseDate, domain.ErrMalformedDate)
	p.field(fields, "numOfColors", &p.NumOfColors, domain.ErrMalformedColorCount)

	if raw, ok := fields["salePrice"]; ok && !isNull(raw) {
		var sale json.Number
		if p.decode(raw, &sale, "salePrice", domain.ErrMalformedAmount) {
			p.SalePrice = &sale
		}
	}
	return nil
}

func (p *ProductDTO) field(fields map[string]json.RawMessage, key string, dst any, reason error) {
	if raw, ok := fields[key]; ok {
		p.decode(raw, dst, key, reason)
	}
}

func (p *ProductDTO) decode(raw json.RawMessage, dst any, field string, reason error) bool {
	if err := json.Unmarshal(raw, dst); err != nil {
		if p.decodeErr == nil {
			p.decodeErr = domain.NewInvalidInput(field, reason)
		}
		return false
	}
	return true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// CardDTO is a fully derived card, ready for a rendering layer.
//
// When the product could not be rendered, Variant is "default",
// Presentation and Badge are nil, and Error explains why.
type CardDTO struct {
	Slug     string `json:"slug"`
	Href     string `json:"href"`
	Name     string `json:"name"`
	ImageSrc string `json:"imageSrc"`
	ImageAlt string `json:"imageAlt"` // always empty; the image is decorative

	Variant      domain.Variant       `json:"variant"`
	Presentation *domain.Presentation `json:"presentation,omitempty"`
	Badge        *domain.Badge        `json:"badge,omitempty"`
	Style        domain.StyleParams   `json:"style"`

	Error string `json:"error,omitempty"`
}

// Failed reports whether the card is a fallback for an invalid product.
func (c *CardDTO) Failed() bool {
	return c.Error != ""
}
