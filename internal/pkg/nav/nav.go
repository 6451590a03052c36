// Package nav builds navigation targets for catalog cards.
package nav

import (
	"net/url"
	"strings"
)

// DefaultTemplate is the product detail path.
const DefaultTemplate = "/shoe/{slug}"

// PathBuilder substitutes the escaped slug into a path template.
type PathBuilder struct {
	template string
}

// NewPathBuilder returns a builder for template. The template must contain
// the "{slug}" placeholder; an empty template selects DefaultTemplate.
func NewPathBuilder(template string) *PathBuilder {
	if template == "" || !strings.Contains(template, "{slug}") {
		template = DefaultTemplate
	}
	return &PathBuilder{template: template}
}

// Build returns the navigation target for slug.
func (b *PathBuilder) Build(slug string) string {
	return strings.ReplaceAll(b.template, "{slug}", url.PathEscape(slug))
}
