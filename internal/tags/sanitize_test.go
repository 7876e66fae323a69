package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii unchanged", "Track One", "Track One"},
		{"unicode unchanged", "Café Ünïcødé 日本", "Café Ünïcødé 日本"},
		{"tab kept", "a\tb", "a\tb"},
		{"nul removed", "Artist\x00", "Artist"},
		{"newline removed", "two\nlines", "twolines"},
		{"escape removed", "\x1b[31mred", "[31mred"},
		{"delete removed", "a\x7fb", "ab"},
		{"c1 control removed", "a\u0085b", "ab"},
		{"invalid byte removed", "a\xffb", "ab"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}
