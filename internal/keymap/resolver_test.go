//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	})

	require.NotNil(t, r)
	assert.Equal(t, ActionQuit, r.Resolve("q"))
	assert.Equal(t, []string{"q", "ctrl+c"}, r.KeysFor(ActionQuit))
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(ForScreen(ContextPlayer))

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"space", ActionPlayPause},
		{"right", ActionNextTrack},
		{"left", ActionPrevTrack},
		{"f1", ActionToggleShuffle},
		{"f2", ActionToggleLoop},
		{"+", ActionVolumeUp},
		{"=", ActionVolumeUp},
		{"-", ActionVolumeDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.key))
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"ctrl+c"}, "Quit", ContextGlobal},
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextPlayer},
		{ActionNextTrack, []string{"right"}, "Next", ContextPlayer},
	})

	assert.Equal(t, []string{"ctrl+c", "q"}, r.KeysFor(ActionQuit), "keys are deduplicated in order")
	assert.Equal(t, []string{"right"}, r.KeysFor(ActionNextTrack))
	assert.Nil(t, r.KeysFor(ActionToggleLoop))
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionNextTrack, []string{"n"}, "Next", ContextPlayer},
		{ActionToggleLoop, []string{"n"}, "Loop", ContextPlayer},
	})

	assert.Equal(t, ActionToggleLoop, r.Resolve("n"))
	assert.Empty(t, r.KeysFor(ActionNextTrack), "overridden key is no longer listed")
	assert.Equal(t, []string{"n"}, r.KeysFor(ActionToggleLoop))
}

func TestResolver_Hint(t *testing.T) {
	r := NewResolver(ForScreen(ContextPlayer))

	tests := []struct {
		action Action
		want   string
	}{
		{ActionToggleShuffle, "F1"},
		{ActionToggleLoop, "F2"},
		{ActionPlayPause, "Space"},
		{ActionNextTrack, "Right"},
		{ActionQuit, "Ctrl+C"},
		{ActionVolumeUp, "+"},
		{Action("unbound"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, r.Hint(tt.action))
		})
	}
}
