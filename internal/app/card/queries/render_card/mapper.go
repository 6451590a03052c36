package render_card

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
	"github.com/murkotick/shoe-card-service/internal/app/card/utils"
)

// MapProduct validates the wire product and builds the domain aggregate.
// Every failure is a *domain.InvalidInputError.
func MapProduct(in dto.ProductDTO) (*domain.Product, error) {
	if err := in.DecodeErr(); err != nil {
		return nil, err
	}

	price, err := parseAmount("price", in.Price)
	if err != nil {
		return nil, err
	}

	var sale *domain.Money
	if in.SalePrice != nil {
		sale, err = parseAmount("salePrice", *in.SalePrice)
		if err != nil {
			return nil, err
		}
	}

	if in.ReleaseDate == "" {
		return nil, domain.NewInvalidInput("releaseDate", domain.ErrMissingReleaseDate)
	}
	released, ok := utils.ParseReleaseDate(in.ReleaseDate)
	if !ok {
		return nil, domain.NewInvalidInput("releaseDate", domain.ErrMalformedDate)
	}

	colors, err := parseCount("numOfColors", in.NumOfColors)
	if err != nil {
		return nil, err
	}

	return domain.NewProduct(in.Slug, in.Name, in.ImageSrc, price, sale, released, colors)
}

// parseAmount accepts integral subunit values only. "14800" and "14800.0"
// are fine; "148.5", "abc" and negatives are not.
func parseAmount(field string, n json.Number) (*domain.Money, error) {
	if n == "" {
		return nil, domain.NewInvalidInput(field, domain.ErrMalformedAmount)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return nil, domain.NewInvalidInput(field, domain.ErrMalformedAmount)
	}
	m, err := domain.NewMoney(d.IntPart())
	if err != nil {
		return nil, domain.NewInvalidInput(field, err)
	}
	return m, nil
}

// parseCount accepts whole numbers; an absent count is zero. The sign is
// checked by domain.NewProduct.
func parseCount(field string, n json.Number) (int, error) {
	if n == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, domain.NewInvalidInput(field, domain.ErrMalformedColorCount)
	}
	v := d.IntPart()
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, domain.NewInvalidInput(field, domain.ErrMalformedColorCount)
	}
	return int(v), nil
}
