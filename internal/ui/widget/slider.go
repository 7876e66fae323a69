package widget

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/cadence/internal/ui/canvas"
)

// SliderOptions configures a Slider.
type SliderOptions struct {
	Length  int // track length in columns, defaults to 20
	Min     int
	Max     int // defaults to 100 when not above Min
	Default int
}

// Slider is a horizontal value picker driven by click and drag.
type Slider struct {
	rect     canvas.Rect
	min, max int
	value    int
	held     bool
	palette  Palette

	// OnChange is called with the new value whenever it changes.
	OnChange func(value int)
}

// NewSlider creates a slider whose track starts at (x, y).
func NewSlider(x, y int, opts SliderOptions) *Slider {
	if opts.Length <= 0 {
		opts.Length = 20
	}
	if opts.Max <= opts.Min {
		opts.Max = opts.Min + 100
	}
	s := &Slider{
		rect:    canvas.Rect{X: x, Y: y, W: opts.Length, H: 1},
		min:     opts.Min,
		max:     opts.Max,
		palette: DefaultPalette(),
	}
	s.value = s.clamp(opts.Default)
	return s
}

// Value returns the current value.
func (s *Slider) Value() int { return s.value }

// Held reports whether the knob is being dragged.
func (s *Slider) Held() bool { return s.held }

// SetPalette replaces the interaction colours.
func (s *Slider) SetPalette(p Palette) { s.palette = p }

// Rect returns the track geometry.
func (s *Slider) Rect() canvas.Rect { return s.rect }

// SetPos moves the track.
func (s *Slider) SetPos(x, y int) {
	s.rect.X, s.rect.Y = x, y
}

// SetValue sets the value, clamped to the range.
func (s *Slider) SetValue(v int) {
	v = s.clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) clamp(v int) int {
	return max(s.min, min(v, s.max))
}

// HandleEvent implements Widget.
func (s *Slider) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventMouseDown:
		s.held = s.rect.Contains(ev.X, ev.Y)
		if s.held {
			s.SetValue(s.valueAt(ev.X))
		}
	case EventMouseMotion:
		if s.held {
			s.SetValue(s.valueAt(ev.X))
		}
	case EventMouseUp:
		s.held = false
	}
}

// valueAt maps column x onto the range, clamped to the track.
func (s *Slider) valueAt(x int) int {
	last := s.rect.Right() - 1
	x = max(s.rect.X, min(x, last))
	if last == s.rect.X {
		return s.min
	}
	pct := float64(x-s.rect.X) / float64(last-s.rect.X)
	return s.min + int(math.Round(pct*float64(s.max-s.min)))
}

// Update implements Widget.
func (s *Slider) Update(Frame) {}

func (s *Slider) colour() colorful.Color {
	if s.held {
		return s.palette.Active
	}
	return s.palette.Inactive
}

// Draw implements Widget.
func (s *Slider) Draw(c *canvas.Canvas) {
	colour := s.colour()
	c.Text(s.rect.X, s.rect.Y, strings.Repeat("─", s.rect.W), canvas.TextStyle{Fg: colour})

	pct := float64(s.value-s.min) / float64(s.max-s.min)
	knob := s.rect.X + int(math.Round(pct*float64(s.rect.W-1)))
	c.Text(knob, s.rect.Y, "●", canvas.TextStyle{Fg: colour, Bold: true})
}
