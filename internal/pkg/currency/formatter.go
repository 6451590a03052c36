// Package currency renders integer subunit amounts as display strings.
package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

// Formatter formats Money for a single currency and locale.
// Safe for concurrent use once constructed.
type Formatter struct {
	symbol  string
	scale   int32
	printer *message.Printer
	decSep  string
}

// New builds a Formatter for the ISO 4217 code (e.g. "USD") in the given
// BCP 47 locale (e.g. "en-US"). An empty symbol falls back to the locale's
// symbol for the currency.
func New(code, symbol, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("currency: parse code %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("currency: parse locale %q: %w", locale, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)

	if symbol == "" {
		symbol = p.Sprint(currency.Symbol(unit))
	}

	return &Formatter{
		symbol:  symbol,
		scale:   int32(scale),
		printer: p,
		decSep:  decimalSeparator(p),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(code, symbol, locale string) *Formatter {
	f, err := New(code, symbol, locale)
	if err != nil {
		panic(err)
	}
	return f
}

// USD is the stock US dollar formatter.
func USD() *Formatter {
	return MustNew("USD", "$", "en-US")
}

// Format renders m, e.g. 14800 -> "$148.00", 148000 -> "$1,480.00".
func (f *Formatter) Format(m *domain.Money) string {
	d := m.Decimal(f.scale)

	var b strings.Builder
	b.WriteString(f.symbol)
	b.WriteString(f.printer.Sprintf("%d", d.IntPart()))

	if f.scale > 0 {
		fixed := d.StringFixed(f.scale)
		if i := strings.IndexByte(fixed, '.'); i >= 0 {
			b.WriteString(f.decSep)
			b.WriteString(fixed[i+1:])
		}
	}
	return b.String()
}

func decimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%.1f", 1.5)
	if len(s) < 3 {
		return "."
	}
	return s[1 : len(s)-1]
}
