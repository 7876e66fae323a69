package widget

import (
	"image"
	"time"

	"github.com/nfnt/resize"

	"github.com/llehouerou/cadence/internal/ui/canvas"
)

// DefaultButtonDelay is the minimum time between two triggers of a held button.
const DefaultButtonDelay = 500 * time.Millisecond

// Button is an image that runs an action while the primary pointer button is
// held over it. It is polled every frame rather than driven by events; Delay
// keeps a held button from firing on every frame.
type Button struct {
	rect   canvas.Rect
	scale  float64
	image  image.Image
	action func()
	last   time.Time

	Delay time.Duration
}

// NewButton creates a button at (x, y) showing img scaled by scale.
func NewButton(x, y int, img image.Image, scale float64, action func()) *Button {
	if scale <= 0 {
		scale = 1
	}
	b := &Button{
		rect:   canvas.Rect{X: x, Y: y},
		scale:  scale,
		action: action,
		Delay:  DefaultButtonDelay,
	}
	b.SetImage(img)
	return b
}

// SetImage swaps the icon, keeping the top-left corner in place.
func (b *Button) SetImage(img image.Image) {
	b.image = scaleImage(img, b.scale)
	if b.image == nil {
		b.rect.W, b.rect.H = 0, 0
		return
	}
	size := b.image.Bounds().Size()
	b.rect.W = size.X
	b.rect.H = (size.Y + 1) / 2
}

// Image returns the scaled icon.
func (b *Button) Image() image.Image { return b.image }

// Rect returns the button geometry in cells.
func (b *Button) Rect() canvas.Rect { return b.rect }

// SetPos moves the button.
func (b *Button) SetPos(x, y int) {
	b.rect.X, b.rect.Y = x, y
}

// CentreX centres the button on column cx.
func (b *Button) CentreX(cx int) {
	b.rect.X = cx - b.rect.W/2
}

// CentreY centres the button on row cy.
func (b *Button) CentreY(cy int) {
	b.rect.Y = cy - b.rect.H/2
}

// HandleEvent implements Widget. Buttons poll the pointer in Update instead.
func (b *Button) HandleEvent(Event) {}

// Update implements Widget.
func (b *Button) Update(f Frame) {
	if !f.Pointer.Held || !b.rect.Contains(f.Pointer.X, f.Pointer.Y) {
		return
	}
	if !b.last.IsZero() && f.Now.Sub(b.last) < b.Delay {
		return
	}
	b.last = f.Now
	if b.action != nil {
		b.action()
	}
}

// Draw implements Widget.
func (b *Button) Draw(c *canvas.Canvas) {
	c.Image(b.rect.X, b.rect.Y, b.image)
}

func scaleImage(img image.Image, scale float64) image.Image {
	if img == nil {
		return nil
	}
	if scale == 1 {
		return img
	}
	size := img.Bounds().Size()
	w := max(uint(float64(size.X)*scale), 1)
	h := max(uint(float64(size.Y)*scale), 1)
	return resize.Resize(w, h, img, resize.NearestNeighbor)
}
