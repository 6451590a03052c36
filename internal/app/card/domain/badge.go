package domain

import "fmt"

// Emphasis selects which palette color a badge is drawn with.
type Emphasis string

const (
	EmphasisPrimary   Emphasis = "primary"
	EmphasisSecondary Emphasis = "secondary"
)

// Badge is the short call-out label shown on on-sale and new-release cards.
type Badge struct {
	Label    string   `json:"label"`
	Emphasis Emphasis `json:"emphasis"`
}

// BadgeFor returns the badge metadata for v.
// ok is false for VariantDefault, which carries no badge.
func BadgeFor(v Variant) (badge Badge, ok bool) {
	switch v {
	case VariantOnSale():
		return Badge{Label: "Sale", Emphasis: EmphasisPrimary}, true
	case VariantNewRelease():
		return Badge{Label: "Just Released!", Emphasis: EmphasisSecondary}, true
	case VariantDefault():
		return Badge{}, false
	default:
		panic(fmt.Sprintf("domain: unhandled variant %q", v.String()))
	}
}
