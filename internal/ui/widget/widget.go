// Package widget provides the immediate-mode widgets the player screens are
// built from: labels, text boxes, sliders, progress bars and image buttons.
//
// Every widget implements Widget. The owner forwards each input Event to all
// widgets of the active screen, calls Update once per frame and Draw onto a
// fresh canvas; widgets ignore events that do not concern them.
package widget

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/cadence/internal/ui/canvas"
)

// Widget is the contract shared by all widgets.
type Widget interface {
	HandleEvent(ev Event)
	Update(f Frame)
	Draw(c *canvas.Canvas)
}

// EventKind identifies an input event.
type EventKind int

const (
	EventKey EventKind = iota + 1
	EventMouseDown
	EventMouseUp
	EventMouseMotion
)

// Event is one input event, in cell coordinates for pointer events.
type Event struct {
	Kind EventKind

	// Key is the key name ("enter", "backspace", "ctrl+v", "a", ...).
	Key string
	// Runes holds typed or pasted text; empty for non-text keys.
	Runes []rune
	// Paste is set for bracketed paste from the terminal.
	Paste bool

	X, Y int
}

// Pointer is the pointer state sampled at frame time.
type Pointer struct {
	X, Y int
	Held bool
}

// Frame carries the per-frame inputs for Update.
type Frame struct {
	Now     time.Time
	Pointer Pointer
}

// Palette holds the interaction colours shared by the widgets.
type Palette struct {
	Active   colorful.Color
	Hover    colorful.Color
	Inactive colorful.Color
	Text     colorful.Color
	Prompt   colorful.Color
	Trough   colorful.Color
}

// DefaultPalette returns the stock purple palette.
func DefaultPalette() Palette {
	return Palette{
		Active:   canvas.RGB(91, 36, 180),
		Hover:    canvas.RGB(171, 0, 255),
		Inactive: canvas.RGB(224, 0, 204),
		Text:     canvas.RGB(0, 0, 0),
		Prompt:   canvas.RGB(30, 30, 30),
		Trough:   canvas.RGB(50, 50, 50),
	}
}

// Static provides no-op event handling and update for display-only widgets.
type Static struct{}

// HandleEvent implements Widget.
func (Static) HandleEvent(Event) {}

// Update implements Widget.
func (Static) Update(Frame) {}

// Group dispatches to a list of widgets in order.
type Group []Widget

// HandleEvent forwards ev to every widget.
func (g Group) HandleEvent(ev Event) {
	for _, w := range g {
		w.HandleEvent(ev)
	}
}

// Update forwards f to every widget.
func (g Group) Update(f Frame) {
	for _, w := range g {
		w.Update(f)
	}
}

// Draw draws every widget, later widgets on top.
func (g Group) Draw(c *canvas.Canvas) {
	for _, w := range g {
		w.Draw(c)
	}
}

var (
	_ Widget = Group(nil)
	_ Widget = (*Label)(nil)
	_ Widget = (*TextBox)(nil)
	_ Widget = (*Slider)(nil)
	_ Widget = (*ProgressBar)(nil)
	_ Widget = (*Button)(nil)
)
