package contracts

import "github.com/murkotick/shoe-card-service/internal/app/card/domain"

// CurrencyFormatter renders an amount of currency subunits for display,
// e.g. 14800 -> "$148.00". Implementations must be deterministic.
type CurrencyFormatter interface {
	Format(m *domain.Money) string
}

// Inflector builds a counted label such as "3 Colors".
type Inflector interface {
	Pluralize(noun string, count int) string
}
