// Package canvas provides an immediate-mode drawing surface made of terminal
// cells. Widgets draw onto a fresh canvas every frame; Render turns the grid
// into styled lines for the terminal.
package canvas

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is one terminal cell.
type Cell struct {
	Glyph string
	Fg    colorful.Color
	Bg    colorful.Color
	HasFg bool
	HasBg bool
	Bold  bool

	// cont marks the right half of a double-width glyph.
	cont bool
}

// TextStyle controls how Text draws a string.
type TextStyle struct {
	Fg   colorful.Color
	Bold bool
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	w, h  int
	cells []Cell
}

// New allocates a blank canvas. Negative sizes are treated as zero.
func New(w, h int) *Canvas {
	w = max(w, 0)
	h = max(h, 0)
	c := &Canvas{w: w, h: h, cells: make([]Cell, w*h)}
	for i := range c.cells {
		c.cells[i].Glyph = " "
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.h }

// Bounds returns the canvas area as a Rect anchored at the origin.
func (c *Canvas) Bounds() Rect { return Rect{W: c.w, H: c.h} }

// At returns the cell at (x, y). Out-of-range coordinates yield a zero Cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[y*c.w+x]
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *Canvas) cell(x, y int) *Cell {
	if !c.inside(x, y) {
		return nil
	}
	return &c.cells[y*c.w+x]
}

// Fill paints the whole canvas background.
func (c *Canvas) Fill(bg colorful.Color) {
	c.FillRect(c.Bounds(), bg)
}

// FillRect paints the background of every cell in r and clears its glyph.
func (c *Canvas) FillRect(r Rect, bg colorful.Color) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			cell := c.cell(x, y)
			*cell = Cell{Glyph: " ", Bg: bg, HasBg: true}
		}
	}
}

// StrokeRect draws a rounded border along the edge of r, keeping the
// backgrounds underneath. Rects smaller than 2x2 are ignored.
func (c *Canvas) StrokeRect(r Rect, fg colorful.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	b := lipgloss.RoundedBorder()
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		c.setGlyph(x, r.Y, b.Top, fg)
		c.setGlyph(x, bottom, b.Bottom, fg)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.setGlyph(r.X, y, b.Left, fg)
		c.setGlyph(right, y, b.Right, fg)
	}
	c.setGlyph(r.X, r.Y, b.TopLeft, fg)
	c.setGlyph(right, r.Y, b.TopRight, fg)
	c.setGlyph(r.X, bottom, b.BottomLeft, fg)
	c.setGlyph(right, bottom, b.BottomRight, fg)
}

func (c *Canvas) setGlyph(x, y int, glyph string, fg colorful.Color) {
	cell := c.cell(x, y)
	if cell == nil {
		return
	}
	cell.Glyph = glyph
	cell.Fg = fg
	cell.HasFg = true
	cell.Bold = false
	cell.cont = false
}

// FillCircle paints a filled circle centred on (cx, cy). The radius is in
// columns; rows count double so the circle looks round in a terminal.
func (c *Canvas) FillCircle(cx, cy, radius int, bg colorful.Color) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius / 2; dy <= radius/2; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+4*dy*dy > r2 {
				continue
			}
			if cell := c.cell(cx+dx, cy+dy); cell != nil {
				*cell = Cell{Glyph: " ", Bg: bg, HasBg: true}
			}
		}
	}
}

// Text draws s starting at (x, y), clipped to the canvas, and returns the
// number of columns it occupies. Control characters are skipped.
func (c *Canvas) Text(x, y int, s string, style TextStyle) int {
	col := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if isControl(cluster) {
			continue
		}
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if cell := c.cell(col, y); cell != nil && (w == 1 || c.inside(col+1, y)) {
			cell.Glyph = cluster
			cell.Fg = style.Fg
			cell.HasFg = true
			cell.Bold = style.Bold
			cell.cont = false
			if w == 2 {
				next := c.cell(col+1, y)
				next.Glyph = ""
				next.cont = true
				next.Bg, next.HasBg = cell.Bg, cell.HasBg
			}
		}
		col += w
	}
	return col - x
}

func isControl(cluster string) bool {
	for _, r := range cluster {
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			return true
		}
	}
	return false
}

// Image draws img with its top-left corner at cell (x, y). Every cell holds
// two vertically stacked pixels; pixels below half opacity are transparent.
func (c *Canvas) Image(x, y int, img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		row := y + (py-b.Min.Y)/2
		for px := b.Min.X; px < b.Max.X; px++ {
			cell := c.cell(x+px-b.Min.X, row)
			if cell == nil {
				continue
			}
			top, topOK := pixel(img, px, py)
			var bottom colorful.Color
			var bottomOK bool
			if py+1 < b.Max.Y {
				bottom, bottomOK = pixel(img, px, py+1)
			}
			switch {
			case topOK && bottomOK:
				cell.Glyph, cell.Fg, cell.Bg = "▀", top, bottom
				cell.HasFg, cell.HasBg = true, true
			case topOK:
				cell.Glyph, cell.Fg, cell.HasFg = "▀", top, true
			case bottomOK:
				cell.Glyph, cell.Fg, cell.HasFg = "▄", bottom, true
			default:
				continue
			}
			cell.Bold = false
			cell.cont = false
		}
	}
}

func pixel(img image.Image, x, y int) (colorful.Color, bool) {
	px := img.At(x, y)
	_, _, _, a := px.RGBA()
	if a < 0x8000 {
		return colorful.Color{}, false
	}
	col, _ := colorful.MakeColor(px)
	return col, true
}

// Render returns the canvas as newline-separated styled lines. Adjacent
// cells sharing a style are rendered together.
func (c *Canvas) Render() string {
	var out strings.Builder
	for y := range c.h {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		var runCell Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(styleFor(runCell).Render(run.String()))
			run.Reset()
		}
		for x := range c.w {
			cell := c.cells[y*c.w+x]
			if cell.cont {
				continue
			}
			if run.Len() > 0 && !sameStyle(runCell, cell) {
				flush()
			}
			if run.Len() == 0 {
				runCell = cell
			}
			run.WriteString(cell.Glyph)
		}
		flush()
	}
	return out.String()
}

// String returns the canvas glyphs without any styling.
func (c *Canvas) String() string {
	var out strings.Builder
	for y := range c.h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := range c.w {
			out.WriteString(c.cells[y*c.w+x].Glyph)
		}
	}
	return out.String()
}

func sameStyle(a, b Cell) bool {
	return a.HasFg == b.HasFg && a.HasBg == b.HasBg && a.Bold == b.Bold &&
		(!a.HasFg || a.Fg == b.Fg) && (!a.HasBg || a.Bg == b.Bg)
}

func styleFor(cell Cell) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(cell.Bold)
	if cell.HasFg {
		s = s.Foreground(lipgloss.Color(cell.Fg.Hex()))
	}
	if cell.HasBg {
		s = s.Background(lipgloss.Color(cell.Bg.Hex()))
	}
	return s
}
