package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		noun  string
		count int
		want  string
	}{
		{"Color", 0, "0 Colors"},
		{"Color", 1, "1 Color"},
		{"Color", 2, "2 Colors"},
		{"Size", 12, "12 Sizes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pluralize(tt.noun, tt.count))
		assert.Equal(t, tt.want, English{}.Pluralize(tt.noun, tt.count))
	}
}
