// Package inflect holds the counted-noun rule used for card labels.
package inflect

import "strconv"

// English applies the naive English rule: singular only for exactly one.
type English struct{}

// Pluralize returns "1 Color" for count 1 and "{count} Colors" otherwise,
// including zero.
func (English) Pluralize(noun string, count int) string {
	return Pluralize(noun, count)
}

// Pluralize is the package-level form of English.Pluralize.
func Pluralize(noun string, count int) string {
	label := strconv.Itoa(count) + " " + noun
	if count == 1 {
		return label
	}
	return label + "s"
}
