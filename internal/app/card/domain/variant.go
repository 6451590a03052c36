package domain

import "fmt"

// Variant is the mutually exclusive presentation category of a card.
// The set is closed: the zero Variant is invalid, and the only valid values
// are the ones returned by the accessors below.
type Variant struct {
	name string
}

var (
	variantDefault    = Variant{name: "default"}
	variantOnSale     = Variant{name: "on-sale"}
	variantNewRelease = Variant{name: "new-release"}
)

// VariantDefault is used when no other variant applies.
func VariantDefault() Variant { return variantDefault }

// VariantOnSale applies whenever a sale price is present.
func VariantOnSale() Variant { return variantOnSale }

// VariantNewRelease applies to products released within the new-release window.
func VariantNewRelease() Variant { return variantNewRelease }

// Variants lists every valid variant in resolution priority order.
func Variants() []Variant {
	return []Variant{VariantOnSale(), VariantNewRelease(), VariantDefault()}
}

// ParseVariant maps a wire name back to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if v.name == s {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// String returns the wire name ("on-sale", "new-release", "default").
func (v Variant) String() string {
	return v.name
}

// IsValid is false only for the zero Variant.
func (v Variant) IsValid() bool {
	return v.name != ""
}

func (v Variant) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, ErrUnknownVariant
	}
	return []byte(v.name), nil
}

func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
