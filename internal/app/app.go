// internal/app/app.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cadence/internal/config"
	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/icons"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/notify"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/state"
	"github.com/llehouerou/cadence/internal/ui/widget"
)

// Screen identifies the active top-level screen.
type Screen int

const (
	ScreenSetup Screen = iota
	ScreenPlayer
)

// Remote mirrors playback to an external controller. Publish is called once
// per frame.
type Remote interface {
	Publish(s playback.Snapshot)
}

// Options carries what the model needs besides the playback controller.
type Options struct {
	Version       string
	Colours       config.Colours
	Images        icons.Images
	ButtonScale   float64
	ButtonDelay   time.Duration
	FrameInterval time.Duration
	// Session is the session restored at startup; its track id is reused
	// when setup picks the same folder again.
	Session state.Session
	// SetupError is shown on the setup screen, e.g. when the saved folder
	// could not be loaded.
	SetupError string
	// Notifier announces track changes; nil disables notifications.
	Notifier notify.Notifier
	// Remote receives a snapshot each frame; nil disables it.
	Remote Remote
}

// Model is the root application model.
type Model struct {
	Playback *playback.Controller
	Screen   Screen
	Pointer  widget.Pointer
	ErrorMsg string
	Quitting bool
	Width    int
	Height   int

	opts    Options
	keys    map[Screen]*keymap.Resolver
	setup   *setupScreen
	player  *playerScreen
	pending *[]keymap.Action
	paused  bool // paused state shown by the pause button

	announced string // path of the last track announced
	notifyID  uint32
}

// New builds both screens. A controller that is already Ready (restored
// from the session) starts on the player screen with its track loaded and
// paused; otherwise the setup screen asks for a folder.
func New(ctrl *playback.Controller, opts Options) Model {
	if opts.ButtonScale <= 0 {
		opts.ButtonScale = 0.5
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 30
	}

	pending := &[]keymap.Action{}
	m := Model{
		Playback: ctrl,
		Screen:   ScreenSetup,
		opts:     opts,
		keys: map[Screen]*keymap.Resolver{
			ScreenSetup:  keymap.NewResolver(keymap.ForScreen(keymap.ContextSetup)),
			ScreenPlayer: keymap.NewResolver(keymap.ForScreen(keymap.ContextPlayer)),
		},
		setup:   newSetupScreen(opts),
		player:  newPlayerScreen(ctrl, opts, pending),
		pending: pending,
	}

	if ctrl.Status() == playback.StatusReady {
		if !ctrl.State().Paused {
			ctrl.TogglePause()
		}
		m.Screen = ScreenPlayer
		if err := ctrl.PlayTrack(ctrl.State().TrackID); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(FrameCmd(m.opts.FrameInterval), WatchStderr())
}

// activeWidgets returns the widgets of the active screen.
func (m Model) activeWidgets() widget.Group {
	if m.Screen == ScreenPlayer {
		return m.player.widgets()
	}
	return m.setup.widgets()
}
