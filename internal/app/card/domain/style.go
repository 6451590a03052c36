package domain

// Palette holds the visual constants a card is styled with.
// It is injected into the styler so the card rules stay independent of any
// particular rendering technology.
type Palette struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	White     string `yaml:"white" json:"white"`
	Gray700   string `yaml:"gray700" json:"gray700"`
	Gray900   string `yaml:"gray900" json:"gray900"`

	Weights Weights `yaml:"weights" json:"weights"`
}

// Weights are font weights used by the card.
type Weights struct {
	Normal int `yaml:"normal" json:"normal"`
	Medium int `yaml:"medium" json:"medium"`
	Bold   int `yaml:"bold" json:"bold"`
}

// DefaultPalette returns the stock catalog palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   "#C62A5E",
		Secondary: "#6868D9",
		White:     "#FFFFFF",
		Gray700:   "#61646B",
		Gray900:   "#313335",
		Weights: Weights{
			Normal: 500,
			Medium: 600,
			Bold:   800,
		},
	}
}

// StyleParams are the rendering hints for a single card.
type StyleParams struct {
	Badge *BadgeStyle `json:"badge,omitempty"`

	NameColor  string `json:"nameColor"`
	NameWeight int    `json:"nameWeight"`

	PriceColor         string `json:"priceColor,omitempty"`
	PriceStrikethrough bool   `json:"priceStrikethrough"`

	SalePriceColor  string `json:"salePriceColor,omitempty"`
	SalePriceWeight int    `json:"salePriceWeight,omitempty"`

	ColorInfoColor string `json:"colorInfoColor"`
}

// BadgeStyle describes the badge overlay drawn in the card corner.
type BadgeStyle struct {
	Label        string `json:"label"`
	Background   string `json:"background"`
	Foreground   string `json:"foreground"`
	FontWeight   int    `json:"fontWeight"`
	FontSizePx   int    `json:"fontSizePx"`
	TopPx        int    `json:"topPx"`
	RightPx      int    `json:"rightPx"`
	PaddingPx    int    `json:"paddingPx"`
	BorderRadius int    `json:"borderRadiusPx"`
}
