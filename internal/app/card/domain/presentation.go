package domain

// Presentation is the display model derived from a Product and its Variant.
// It holds no state of its own and is rebuilt whenever the Product changes.
//
// ShowSaleBadge is true iff the variant is on-sale, and FormattedSalePrice is
// non-nil iff the variant is on-sale.
type Presentation struct {
	FormattedPrice         string  `json:"formattedPrice"`
	FormattedSalePrice     *string `json:"formattedSalePrice,omitempty"`
	ShowStrikethroughPrice bool    `json:"showStrikethroughPrice"`
	ShowSaleBadge          bool    `json:"showSaleBadge"`
	ColorLabel             string  `json:"colorLabel"`
}
