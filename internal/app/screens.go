package app

import (
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/ui/canvas"
	"github.com/llehouerou/cadence/internal/ui/widget"
)

const (
	setupPrompt   = "Enter the path to your playlist folder:"
	pathBoxWidth  = 40
	buttonSpacing = 12
	sliderLength  = 21
	volumeStep    = 5
	barMargin     = 4
)

var errorColour = canvas.RGB(220, 40, 40)

type setupScreen struct {
	version  *widget.Label
	prompt   *widget.Label
	path     *widget.TextBox
	errLabel *widget.Label
}

func newSetupScreen(opts Options) *setupScreen {
	text := widget.WithColour(opts.Colours.SetupText)
	s := &setupScreen{
		version:  widget.NewLabel(1, 0, opts.Version, text),
		prompt:   widget.NewLabel(0, 0, setupPrompt, text, widget.WithScale(2)),
		path:     widget.NewTextBox(0, 0, widget.TextBoxOptions{Width: pathBoxWidth, Prompt: "~/Music", Filled: true}),
		errLabel: widget.NewLabel(0, 0, opts.SetupError, widget.WithColour(errorColour)),
	}
	s.path.SetPalette(opts.Colours.Palette)
	s.path.Focus()
	return s
}

func (s *setupScreen) widgets() widget.Group {
	return widget.Group{s.version, s.prompt, s.path, s.errLabel}
}

func (s *setupScreen) layout(w, h int) {
	cy := h / 2
	s.prompt.SetPos(0, cy-3)
	s.prompt.CentreX(w)
	s.path.SetPos(max((w-s.path.Rect().W)/2, 0), cy-1)
	s.errLabel.SetMaxWidth(max(w-4, 1))
	s.errLabel.SetPos(0, cy+3)
	s.errLabel.CentreX(w)
}

type playerScreen struct {
	version  *widget.Label
	errLabel *widget.Label
	shuffle  *widget.Label
	loop     *widget.Label
	name     *widget.Label
	artist   *widget.Label
	track    *widget.Label
	progress *widget.ProgressBar
	elapsed  *widget.Label
	total    *widget.Label
	back     *widget.Button
	pause    *widget.Button
	forward  *widget.Button
	volume   *widget.Label
	slider   *widget.Slider
}

// newPlayerScreen wires the transport buttons to push actions onto pending,
// which the model drains after each frame update.
func newPlayerScreen(ctrl *playback.Controller, opts Options, pending *[]keymap.Action) *playerScreen {
	push := func(a keymap.Action) func() {
		return func() { *pending = append(*pending, a) }
	}
	text := widget.WithColour(opts.Colours.Palette.Text)

	p := &playerScreen{
		version:  widget.NewLabel(1, 0, opts.Version, text),
		errLabel: widget.NewLabel(1, 1, "", widget.WithColour(errorColour)),
		shuffle:  widget.NewLabel(1, 2, "", text),
		loop:     widget.NewLabel(1, 3, "", text),
		name:     widget.NewLabel(0, 0, "", text, widget.WithScale(2)),
		artist:   widget.NewLabel(0, 0, "", text),
		track:    widget.NewLabel(0, 0, "", text),
		progress: widget.NewProgressBar(0, 0, widget.ProgressBarOptions{Colour: opts.Colours.Palette.Inactive}),
		elapsed:  widget.NewLabel(0, 0, "", text),
		total:    widget.NewLabel(0, 0, "", text),
		back:     widget.NewButton(0, 0, opts.Images.Back, opts.ButtonScale, push(keymap.ActionPrevTrack)),
		pause:    widget.NewButton(0, 0, opts.Images.Pause, opts.ButtonScale, push(keymap.ActionPlayPause)),
		forward:  widget.NewButton(0, 0, opts.Images.Forward, opts.ButtonScale, push(keymap.ActionNextTrack)),
		volume:   widget.NewLabel(0, 0, "", text),
		slider: widget.NewSlider(0, 0, widget.SliderOptions{
			Length:  sliderLength,
			Max:     100,
			Default: ctrl.Volume(),
		}),
	}
	p.progress.SetPalette(opts.Colours.Palette)
	p.slider.SetPalette(opts.Colours.Palette)
	p.slider.OnChange = ctrl.SetVolume
	for _, b := range []*widget.Button{p.back, p.pause, p.forward} {
		b.Delay = opts.ButtonDelay
	}
	return p
}

func (p *playerScreen) widgets() widget.Group {
	return widget.Group{
		p.version, p.errLabel, p.shuffle, p.loop,
		p.name, p.artist, p.track,
		p.progress, p.elapsed, p.total,
		p.back, p.pause, p.forward,
		p.volume, p.slider,
	}
}

func (p *playerScreen) layout(w, h int) {
	top := max(h/2-9, 5)
	cx := w / 2

	p.errLabel.SetMaxWidth(max(w-2, 1))

	for i, l := range []*widget.Label{p.name, p.artist, p.track} {
		l.SetMaxWidth(max(w-4, 1))
		l.SetPos(0, top+i)
		l.CentreX(w)
	}

	p.progress.SetRect(canvas.Rect{X: barMargin, Y: top + 4, W: max(w-2*barMargin, 10), H: 3})
	p.elapsed.SetPos(barMargin, top+7)
	p.total.SetPos(0, top+7)
	p.total.AlignRight(w, barMargin)

	for i, b := range []*widget.Button{p.back, p.pause, p.forward} {
		b.SetPos(0, top+9)
		b.CentreX(cx + (i-1)*buttonSpacing)
	}

	p.volume.SetPos(0, top+14)
	p.volume.CentreX(w)
	p.slider.SetPos(cx-sliderLength/2, top+15)
}
