package widget

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cadence/internal/ui/canvas"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     []string
	}{
		{"two words per line", "a b c", 3, []string{"a b", "c"}},
		{"two words per line with slack", "a b c", 4, []string{"a b", "c"}},
		{"everything fits", "a b c", 10, []string{"a b c"}},
		{"long word on its own line", "tiny enormousword x", 6, []string{"tiny", "enormousword", "x"}},
		{"collapses spaces", "a   b", 10, []string{"a b"}},
		{"empty", "", 10, nil},
		{"no wrapping", "a b c", 0, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.maxWidth, runewidth.StringWidth))
		})
	}
}

func TestLabel_SetTextRewraps(t *testing.T) {
	l := NewLabel(0, 0, "one", WithMaxWidth(5))
	assert.Equal(t, []string{"one"}, l.Lines())

	l.SetText("one two three")

	assert.Equal(t, []string{"one", "two", "three"}, l.Lines())
	assert.Equal(t, "one two three", l.Text())
}

func TestLabel_SetColour(t *testing.T) {
	red := canvas.RGB(255, 0, 0)
	l := NewLabel(0, 0, "x")

	l.SetColour(red)

	assert.Equal(t, red, l.Colour())
}

func TestLabel_Draw(t *testing.T) {
	l := NewLabel(1, 0, "ab cd", WithMaxWidth(2))
	c := canvas.New(4, 2)

	l.Draw(c)

	assert.Equal(t, " ab \n cd ", c.String())
}

func TestLabel_DrawWrapsAtCanvasEdge(t *testing.T) {
	l := NewLabel(0, 0, "ab cd")
	c := canvas.New(3, 2)

	l.Draw(c)

	assert.Equal(t, "ab \ncd ", c.String())
}

func TestLabel_Alignment(t *testing.T) {
	l := NewLabel(0, 3, "abcd")

	l.CentreX(10)
	x, y := l.Pos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 3, y)

	l.AlignRight(10, 1)
	x, _ = l.Pos()
	assert.Equal(t, 5, x)
}

func TestProgressBar_SetValueClamps(t *testing.T) {
	tests := []struct {
		min, max, value float64
		want            float64
	}{
		{0, 100, 50, 50},
		{0, 100, -5, 0},
		{0, 100, 150, 100},
		{10, 20, 15, 15},
		{10, 20, 0, 10},
		{10, 20, 25, 20},
		{-10, 10, 0, 0},
	}

	for _, tt := range tests {
		p := NewProgressBar(0, 0, ProgressBarOptions{Min: tt.min, Max: tt.max})
		p.SetValue(tt.value)
		assert.InDelta(t, tt.want, p.Value(), 1e-9, "min=%v max=%v value=%v", tt.min, tt.max, tt.value)
	}
}

func TestProgressBar_FillWidth(t *testing.T) {
	p := NewProgressBar(0, 0, ProgressBarOptions{Width: 40, Value: 25})
	assert.Equal(t, 10, p.FillWidth())

	p.SetValue(100)
	assert.Equal(t, 40, p.FillWidth())

	p.SetValue(0)
	assert.Equal(t, 0, p.FillWidth())
}

func TestProgressBar_Draw(t *testing.T) {
	fill := canvas.RGB(224, 0, 204)
	p := NewProgressBar(0, 0, ProgressBarOptions{Width: 10, Value: 50, Colour: fill})
	c := canvas.New(10, 3)

	p.Draw(c)

	assert.Equal(t, fill, c.At(2, 1).Bg)
	assert.Equal(t, p.palette.Trough, c.At(7, 1).Bg)
	assert.Equal(t, "╭", c.At(0, 0).Glyph)
}

func TestSlider_DragMapsPosition(t *testing.T) {
	s := NewSlider(10, 5, SliderOptions{Length: 11, Min: 0, Max: 100, Default: 50})
	assert.Equal(t, 50, s.Value())

	s.HandleEvent(Event{Kind: EventMouseDown, X: 10, Y: 5})
	assert.True(t, s.Held())
	assert.Equal(t, 0, s.Value())

	s.HandleEvent(Event{Kind: EventMouseMotion, X: 15, Y: 9})
	assert.Equal(t, 50, s.Value())

	s.HandleEvent(Event{Kind: EventMouseMotion, X: 99, Y: 5})
	assert.Equal(t, 100, s.Value(), "clamped to the right end")

	s.HandleEvent(Event{Kind: EventMouseMotion, X: -4, Y: 5})
	assert.Equal(t, 0, s.Value(), "clamped to the left end")

	s.HandleEvent(Event{Kind: EventMouseUp, X: 12, Y: 5})
	assert.False(t, s.Held())

	s.HandleEvent(Event{Kind: EventMouseMotion, X: 20, Y: 5})
	assert.Equal(t, 0, s.Value(), "release stops tracking")
}

func TestSlider_DragIsMonotonicAndInRange(t *testing.T) {
	s := NewSlider(3, 0, SliderOptions{Length: 17, Min: -20, Max: 35})
	s.HandleEvent(Event{Kind: EventMouseDown, X: 3, Y: 0})

	prev := s.Value()
	for x := -5; x < 30; x++ {
		s.HandleEvent(Event{Kind: EventMouseMotion, X: x, Y: 0})
		v := s.Value()
		assert.GreaterOrEqual(t, v, -20)
		assert.LessOrEqual(t, v, 35)
		assert.GreaterOrEqual(t, v, prev, "x=%d", x)
		prev = v
	}
}

func TestSlider_PressOutsideDoesNotTrack(t *testing.T) {
	s := NewSlider(0, 0, SliderOptions{Length: 10, Default: 30})

	s.HandleEvent(Event{Kind: EventMouseDown, X: 5, Y: 3})
	s.HandleEvent(Event{Kind: EventMouseMotion, X: 9, Y: 0})

	assert.False(t, s.Held())
	assert.Equal(t, 30, s.Value())
}

func TestSlider_OnChange(t *testing.T) {
	s := NewSlider(0, 0, SliderOptions{Length: 11, Default: 0})
	var got []int
	s.OnChange = func(v int) { got = append(got, v) }

	s.SetValue(40)
	s.SetValue(40)
	s.SetValue(500)

	assert.Equal(t, []int{40, 100}, got)
}

func TestSlider_Draw(t *testing.T) {
	s := NewSlider(0, 0, SliderOptions{Length: 5, Default: 100})
	c := canvas.New(5, 1)

	s.Draw(c)

	assert.Equal(t, "────●", c.String())
}

func solidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestButton_Geometry(t *testing.T) {
	b := NewButton(2, 3, solidImage(4, 4), 1, nil)
	assert.Equal(t, canvas.Rect{X: 2, Y: 3, W: 4, H: 2}, b.Rect())

	scaled := NewButton(0, 0, solidImage(4, 4), 2, nil)
	assert.Equal(t, 8, scaled.Rect().W)
	assert.Equal(t, 4, scaled.Rect().H)

	scaled.CentreX(20)
	scaled.CentreY(10)
	assert.Equal(t, 16, scaled.Rect().X)
	assert.Equal(t, 8, scaled.Rect().Y)
}

func TestButton_Debounce(t *testing.T) {
	fired := 0
	b := NewButton(0, 0, solidImage(4, 4), 1, func() { fired++ })
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	held := Pointer{X: 1, Y: 1, Held: true}

	b.Update(Frame{Now: t0, Pointer: held})
	assert.Equal(t, 1, fired, "first press fires immediately")

	b.Update(Frame{Now: t0.Add(100 * time.Millisecond), Pointer: held})
	b.Update(Frame{Now: t0.Add(499 * time.Millisecond), Pointer: held})
	assert.Equal(t, 1, fired, "held button does not repeat within the delay")

	b.Update(Frame{Now: t0.Add(500 * time.Millisecond), Pointer: held})
	assert.Equal(t, 2, fired)
}

func TestButton_RequiresHeldPointerInside(t *testing.T) {
	fired := 0
	b := NewButton(0, 0, solidImage(4, 4), 1, func() { fired++ })
	now := time.Now()

	b.Update(Frame{Now: now, Pointer: Pointer{X: 1, Y: 1}})
	b.Update(Frame{Now: now, Pointer: Pointer{X: 10, Y: 10, Held: true}})

	assert.Equal(t, 0, fired)
}

func TestButton_SetImage(t *testing.T) {
	b := NewButton(0, 0, solidImage(4, 4), 1, nil)

	b.SetImage(solidImage(6, 2))

	assert.Equal(t, 6, b.Rect().W)
	assert.Equal(t, 1, b.Rect().H)
}

func TestButton_Draw(t *testing.T) {
	b := NewButton(1, 0, solidImage(2, 2), 1, nil)
	c := canvas.New(4, 1)

	b.Draw(c)

	assert.Equal(t, " ▀▀ ", c.String())
}

func TestGroup_Dispatch(t *testing.T) {
	box := NewTextBox(0, 0, TextBoxOptions{Width: 10})
	label := NewLabel(0, 4, "hello")
	g := Group{box, label}

	g.HandleEvent(Event{Kind: EventMouseDown, X: 1, Y: 1})
	typeText(g, "hey")
	g.Update(Frame{})
	c := canvas.New(12, 5)
	g.Draw(c)

	assert.Equal(t, "hey", box.Text())
	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "hey")
	assert.Contains(t, lines[4], "hello")
}

func TestFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want Event
		ok   bool
	}{
		{
			name: "rune key",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}},
			want: Event{Kind: EventKey, Key: "a", Runes: []rune{'a'}},
			ok:   true,
		},
		{
			name: "enter",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: Event{Kind: EventKey, Key: "enter"},
			ok:   true,
		},
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: Event{Kind: EventMouseDown, X: 3, Y: 4},
			ok:   true,
		},
		{
			name: "right press ignored",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			ok:   false,
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionRelease},
			want: Event{Kind: EventMouseUp, X: 1, Y: 2},
			ok:   true,
		},
		{
			name: "motion",
			msg:  tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionMotion},
			want: Event{Kind: EventMouseMotion, X: 5, Y: 6},
			ok:   true,
		},
		{
			name: "window size ignored",
			msg:  tea.WindowSizeMsg{Width: 10, Height: 10},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTea(tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFromTea_SpaceCarriesRune(t *testing.T) {
	ev, ok := FromTea(tea.KeyMsg{Type: tea.KeySpace})

	assert.True(t, ok)
	assert.Equal(t, []rune{' '}, ev.Runes)
}

func TestPointer_Track(t *testing.T) {
	var p Pointer

	p = p.Track(Event{Kind: EventMouseDown, X: 2, Y: 3})
	assert.Equal(t, Pointer{X: 2, Y: 3, Held: true}, p)

	p = p.Track(Event{Kind: EventMouseMotion, X: 4, Y: 5})
	assert.Equal(t, Pointer{X: 4, Y: 5, Held: true}, p)

	p = p.Track(Event{Kind: EventMouseUp, X: 4, Y: 5})
	assert.False(t, p.Held)

	p = p.Track(Event{Kind: EventKey, Key: "a"})
	assert.Equal(t, Pointer{X: 4, Y: 5}, p)
}
