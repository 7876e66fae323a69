package widget

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/cadence/internal/ui/canvas"
)

// Label is a word-wrapped line of text.
type Label struct {
	Static

	x, y     int
	text     string
	colour   colorful.Color
	bold     bool
	maxWidth int
	lines    []string
}

// LabelOption configures a Label.
type LabelOption func(*Label)

// WithColour overrides the text colour.
func WithColour(c colorful.Color) LabelOption {
	return func(l *Label) { l.colour = c }
}

// WithScale renders the label emphasised when scale > 1.
func WithScale(scale int) LabelOption {
	return func(l *Label) { l.bold = scale > 1 }
}

// WithMaxWidth sets the wrap width. Zero wraps at the canvas edge.
func WithMaxWidth(w int) LabelOption {
	return func(l *Label) { l.maxWidth = w }
}

// NewLabel creates a label at (x, y).
func NewLabel(x, y int, text string, opts ...LabelOption) *Label {
	l := &Label{x: x, y: y, text: text, colour: DefaultPalette().Text}
	for _, opt := range opts {
		opt(l)
	}
	l.relayout()
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and re-wraps it.
func (l *Label) SetText(text string) {
	l.text = text
	l.relayout()
}

// Colour returns the text colour.
func (l *Label) Colour() colorful.Color { return l.colour }

// SetColour replaces the colour and re-wraps the text.
func (l *Label) SetColour(c colorful.Color) {
	l.colour = c
	l.relayout()
}

// SetMaxWidth changes the wrap width.
func (l *Label) SetMaxWidth(w int) {
	l.maxWidth = w
	l.relayout()
}

// Lines returns the wrapped lines.
func (l *Label) Lines() []string { return l.lines }

// Pos returns the top-left corner.
func (l *Label) Pos() (int, int) { return l.x, l.y }

// SetPos moves the label.
func (l *Label) SetPos(x, y int) {
	l.x, l.y = x, y
}

// Width returns the width of the widest wrapped line.
func (l *Label) Width() int {
	w := 0
	for _, line := range l.lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

// CentreX centres the label horizontally within width columns.
func (l *Label) CentreX(width int) {
	l.x = max((width-l.Width())/2, 0)
}

// AlignRight puts the label's right edge margin columns from the right of width.
func (l *Label) AlignRight(width, margin int) {
	l.x = max(width-l.Width()-margin, 0)
}

func (l *Label) relayout() {
	l.lines = Wrap(l.text, l.maxWidth, runewidth.StringWidth)
}

// Draw implements Widget.
func (l *Label) Draw(c *canvas.Canvas) {
	lines := l.lines
	if l.maxWidth == 0 {
		lines = Wrap(l.text, c.Width()-l.x, runewidth.StringWidth)
	}
	style := canvas.TextStyle{Fg: l.colour, Bold: l.bold}
	for i, line := range lines {
		c.Text(l.x, l.y+i, line, style)
	}
}

// Wrap breaks text into lines greedily: words are added to the current line
// while its measured width stays within maxWidth. A word wider than maxWidth
// gets a line of its own. A non-positive maxWidth disables wrapping.
func Wrap(text string, maxWidth int, measure func(string) int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
