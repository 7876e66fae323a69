package widget

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/cadence/internal/ui/canvas"
)

// textPadding is the border plus one blank column on each side.
const textPadding = 4

// TextBoxOptions configures a TextBox.
type TextBoxOptions struct {
	Width  int // minimum width, defaults to 30
	Height int // defaults to 3
	MaxLen int // maximum runes, 0 for unbounded
	Prompt string
	Text   string
	Filled bool
}

// TextBox is a single-line text entry. Clicking inside focuses it; while
// focused it accepts typing, backspace, paste and Enter, which commits the
// text and defocuses.
type TextBox struct {
	rect      canvas.Rect
	minWidth  int
	maxLen    int
	prompt    string
	filled    bool
	text      string
	committed string
	active    bool
	hover     bool
	palette   Palette

	// readClipboard is swapped in tests.
	readClipboard func() (string, error)
}

// NewTextBox creates a text box with its top-left corner at (x, y).
func NewTextBox(x, y int, opts TextBoxOptions) *TextBox {
	if opts.Width <= 0 {
		opts.Width = 30
	}
	if opts.Height <= 0 {
		opts.Height = 3
	}
	return &TextBox{
		rect:          canvas.Rect{X: x, Y: y, W: opts.Width, H: opts.Height},
		minWidth:      opts.Width,
		maxLen:        max(opts.MaxLen, 0),
		prompt:        opts.Prompt,
		filled:        opts.Filled,
		text:          opts.Text,
		palette:       DefaultPalette(),
		readClipboard: clipboard.ReadAll,
	}
}

// Text returns the live, uncommitted text.
func (b *TextBox) Text() string { return b.text }

// Committed returns the text captured by the last Enter.
func (b *TextBox) Committed() string { return b.committed }

// TakeCommitted returns the committed text and clears it, so each commit
// is seen once.
func (b *TextBox) TakeCommitted() string {
	s := b.committed
	b.committed = ""
	return s
}

// Focus gives the box keyboard focus.
func (b *TextBox) Focus() {
	b.active = true
	b.hover = false
}

// SetPos moves the box, keeping its size.
func (b *TextBox) SetPos(x, y int) {
	b.rect.X, b.rect.Y = x, y
}

// Active reports whether the box has focus.
func (b *TextBox) Active() bool { return b.active }

// Hovered reports whether the pointer is over the unfocused box.
func (b *TextBox) Hovered() bool { return b.hover }

// Rect returns the box geometry.
func (b *TextBox) Rect() canvas.Rect { return b.rect }

// SetPalette replaces the interaction colours.
func (b *TextBox) SetPalette(p Palette) { b.palette = p }

// Colour returns the border colour for the current interaction state.
func (b *TextBox) Colour() colorful.Color {
	switch {
	case b.active:
		return b.palette.Active
	case b.hover:
		return b.palette.Hover
	default:
		return b.palette.Inactive
	}
}

// HandleEvent implements Widget.
func (b *TextBox) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventMouseDown:
		b.active = b.rect.Contains(ev.X, ev.Y)
		if b.active {
			b.hover = false
		}

	case EventMouseMotion:
		if !b.active {
			b.hover = b.rect.Contains(ev.X, ev.Y)
		}

	case EventKey:
		if b.active {
			b.handleKey(ev)
		}
	}
}

func (b *TextBox) handleKey(ev Event) {
	if ev.Paste {
		b.insert(string(ev.Runes))
		return
	}
	switch ev.Key {
	case "enter":
		b.committed = b.text
		b.text = ""
		b.active = false
	case "backspace":
		b.text = dropLastGrapheme(b.text)
	case "ctrl+v":
		b.paste()
	default:
		b.insert(string(ev.Runes))
	}
}

// paste appends clipboard text. Clipboard failures leave the text unchanged.
func (b *TextBox) paste() {
	s, err := b.readClipboard()
	if err != nil {
		return
	}
	b.insert(s)
}

// insert appends the printable runes of s while the length limit allows.
func (b *TextBox) insert(s string) {
	var sb strings.Builder
	sb.WriteString(b.text)
	n := utf8.RuneCountInString(b.text)
	for _, r := range s {
		if !unicode.IsPrint(r) {
			continue
		}
		if b.maxLen > 0 && n >= b.maxLen {
			break
		}
		sb.WriteRune(r)
		n++
	}
	b.text = sb.String()
}

func dropLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}

// Update implements Widget. The box grows to fit its text, never narrower
// than its minimum and never wider than MaxLen runes need.
func (b *TextBox) Update(Frame) {
	w := max(b.minWidth, runewidth.StringWidth(b.text)+textPadding)
	if b.maxLen > 0 {
		w = min(w, max(b.minWidth, b.maxLen+textPadding))
	}
	b.rect.W = w
}

// Draw implements Widget.
func (b *TextBox) Draw(c *canvas.Canvas) {
	colour := b.Colour()
	if b.filled {
		c.FillRect(b.rect, colour)
	} else {
		c.StrokeRect(b.rect, colour)
	}

	x, y := b.rect.X+2, b.rect.Y+b.rect.H/2
	if b.text == "" && b.prompt != "" {
		c.Text(x, y, b.prompt, canvas.TextStyle{Fg: b.palette.Prompt})
		return
	}
	c.Text(x, y, b.text, canvas.TextStyle{Fg: b.palette.Text})
}
