package icons

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// ImageSize is the edge length of the built-in transport icons, in pixels.
const ImageSize = 16

// Images holds the transport button icons. Play is shown while paused and
// Pause while playing.
type Images struct {
	Play    image.Image
	Pause   image.Image
	Back    image.Image
	Forward image.Image
}

// Transport draws the built-in transport icons in fg on a transparent
// background.
func Transport(fg color.Color) Images {
	play := blank()
	fillTriangle(play, 4, 13, fg)

	pause := blank()
	fillBar(pause, 3, 6, fg)
	fillBar(pause, 9, 12, fg)

	back := blank()
	fillBar(back, 2, 3, fg)
	fillTriangle(back, 13, 4, fg)

	forward := blank()
	fillTriangle(forward, 2, 11, fg)
	fillBar(forward, 12, 13, fg)

	return Images{Play: play, Pause: pause, Back: back, Forward: forward}
}

// imageFiles maps override file names to the icon they replace.
var imageFiles = []struct {
	name string
	set  func(*Images, image.Image)
}{
	{"play.png", func(i *Images, img image.Image) { i.Play = img }},
	{"pause.png", func(i *Images, img image.Image) { i.Pause = img }},
	{"back.png", func(i *Images, img image.Image) { i.Back = img }},
	{"forward.png", func(i *Images, img image.Image) { i.Forward = img }},
}

// LoadImages replaces icons in base with PNG files found in dir. Files that
// do not exist keep the base icon. An empty dir returns base unchanged.
func LoadImages(dir string, base Images) (Images, error) {
	if dir == "" {
		return base, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return base, fmt.Errorf("icons dir: %w", err)
	}
	if !info.IsDir() {
		return base, fmt.Errorf("icons dir %s: not a directory", dir)
	}

	out := base
	for _, f := range imageFiles {
		img, err := loadPNG(filepath.Join(dir, f.name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return base, err
		}
		f.set(&out, img)
	}
	return out, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func blank() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ImageSize, ImageSize))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return img
}

// fillBar paints a full-height vertical bar between columns x0 and x1.
func fillBar(img *image.RGBA, x0, x1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, 2, x1+1, ImageSize-2), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillTriangle paints a triangle with its vertical base at column base and
// its tip at column tip.
func fillTriangle(img *image.RGBA, base, tip int, c color.Color) {
	const cy, half = 7.5, 6.0
	step := 1
	if tip < base {
		step = -1
	}
	n := (tip - base) * step
	for i := 0; i <= n; i++ {
		x := base + i*step
		h := half * float64(n-i) / float64(n)
		for y := int(math.Ceil(cy - h)); y <= int(math.Floor(cy+h)); y++ {
			img.Set(x, y, c)
		}
	}
}
