package widget

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/cadence/internal/ui/canvas"
)

// ProgressBarOptions configures a ProgressBar.
type ProgressBarOptions struct {
	Width  int // defaults to 20
	Height int // defaults to 3
	Min    float64
	Max    float64 // defaults to 100 when not above Min
	Value  float64
	Colour colorful.Color
}

// ProgressBar displays a value as a filled proportion of its width.
type ProgressBar struct {
	Static

	rect     canvas.Rect
	min, max float64
	value    float64
	colour   colorful.Color
	palette  Palette
}

// NewProgressBar creates a progress bar with its top-left corner at (x, y).
func NewProgressBar(x, y int, opts ProgressBarOptions) *ProgressBar {
	if opts.Width <= 0 {
		opts.Width = 20
	}
	if opts.Height <= 0 {
		opts.Height = 3
	}
	if opts.Max <= opts.Min {
		opts.Max = opts.Min + 100
	}
	p := &ProgressBar{
		rect:    canvas.Rect{X: x, Y: y, W: opts.Width, H: opts.Height},
		min:     opts.Min,
		max:     opts.Max,
		colour:  opts.Colour,
		palette: DefaultPalette(),
	}
	if p.colour == (colorful.Color{}) {
		p.colour = p.palette.Inactive
	}
	p.SetValue(opts.Value)
	return p
}

// SetPalette replaces the trough and border colours.
func (p *ProgressBar) SetPalette(pal Palette) { p.palette = pal }

// SetColour replaces the fill colour.
func (p *ProgressBar) SetColour(c colorful.Color) { p.colour = c }

// Value returns the stored value.
func (p *ProgressBar) Value() float64 { return p.value }

// SetValue stores v clamped to [min, max].
func (p *ProgressBar) SetValue(v float64) {
	p.value = max(p.min, min(v, p.max))
}

// SetRect moves and resizes the bar.
func (p *ProgressBar) SetRect(r canvas.Rect) { p.rect = r }

// Rect returns the bar geometry.
func (p *ProgressBar) Rect() canvas.Rect { return p.rect }

// FillWidth returns the number of filled columns.
func (p *ProgressBar) FillWidth() int {
	return int((p.value - p.min) / (p.max - p.min) * float64(p.rect.W))
}

// Draw implements Widget.
func (p *ProgressBar) Draw(c *canvas.Canvas) {
	c.FillRect(p.rect, p.palette.Trough)
	fill := p.rect
	fill.W = p.FillWidth()
	c.FillRect(fill, p.colour)
	c.StrokeRect(p.rect, p.palette.Active)
}
