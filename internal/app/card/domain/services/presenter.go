package services

import (
	"fmt"

	"github.com/murkotick/shoe-card-service/internal/app/card/contracts"
	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

// ColorNoun is the noun counted in the color label.
const ColorNoun = "Color"

// Presenter turns a product and its variant into display strings and flags.
// It is stateless; concurrent use is safe if the collaborators are.
type Presenter struct {
	currency  contracts.CurrencyFormatter
	inflector contracts.Inflector
}

// NewPresenter creates a Presenter.
func NewPresenter(cf contracts.CurrencyFormatter, inf contracts.Inflector) *Presenter {
	return &Presenter{currency: cf, inflector: inf}
}

// FormatCurrency renders an amount of subunits, e.g. 14800 -> "$148.00".
func (pr *Presenter) FormatCurrency(m *domain.Money) string {
	return pr.currency.Format(m)
}

// PluralizeLabel returns "{count} {noun}", adding an "s" unless count is 1.
func (pr *Presenter) PluralizeLabel(noun string, count int) string {
	return pr.inflector.Pluralize(noun, count)
}

// BuildPresentation derives the display model for p rendered as variant v.
// It fails with an InvalidInputError when v is on-sale but p has no sale price.
func (pr *Presenter) BuildPresentation(p *domain.Product, v domain.Variant) (domain.Presentation, error) {
	out := domain.Presentation{
		FormattedPrice: pr.FormatCurrency(p.Price()),
		ColorLabel:     pr.PluralizeLabel(ColorNoun, p.ColorCount()),
	}

	switch v {
	case domain.VariantOnSale():
		if !p.HasSalePrice() {
			return domain.Presentation{}, domain.NewInvalidInput("salePrice", domain.ErrMissingSalePrice)
		}
		sale := pr.FormatCurrency(p.SalePrice())
		out.FormattedSalePrice = &sale
		out.ShowStrikethroughPrice = true
		out.ShowSaleBadge = true
	case domain.VariantNewRelease(), domain.VariantDefault():
	default:
		return domain.Presentation{}, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, v.String())
	}

	return out, nil
}
