// internal/app/update.go
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/icons"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/notify"
	"github.com/llehouerou/cadence/internal/ui/widget"
)

var (
	errPathMissing  = errors.New("path does not exist")
	errNotDirectory = errors.New("not a directory")
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case StderrMsg:
		log.Printf("audio: %s", msg.Line)
		return m, WatchStderr()

	case ActionMsg:
		return m.handleAction(keymap.Action(msg))

	case VolumeMsg:
		if m.Screen == ScreenPlayer {
			m.Playback.SetVolume(int(msg))
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		if action := m.keys[m.Screen].Resolve(msg.String()); action != "" {
			return m.handleAction(action)
		}
		return m.handleEvent(msg)

	case tea.MouseMsg:
		return m.handleEvent(msg)
	}
	return m, nil
}

// handleEvent forwards an input message to the widgets of the active screen.
func (m Model) handleEvent(msg tea.Msg) (tea.Model, tea.Cmd) {
	ev, ok := widget.FromTea(msg)
	if !ok {
		return m, nil
	}
	m.Pointer = m.Pointer.Track(ev)
	m.activeWidgets().HandleEvent(ev)

	if m.Screen == ScreenSetup {
		if path := strings.TrimSpace(m.setup.path.TakeCommitted()); path != "" {
			m.commitPath(path)
		}
	}
	m.layout()
	return m, nil
}

// handleFrame runs the per-frame work: widget polling, playback tick and
// label refresh. It schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.activeWidgets().Update(widget.Frame{Now: now, Pointer: m.Pointer})

	cmds := []tea.Cmd{FrameCmd(m.opts.FrameInterval)}
	for _, action := range m.takePending() {
		next, cmd := m.handleAction(action)
		m = next.(Model)
		cmds = append(cmds, cmd)
	}

	if m.Screen == ScreenPlayer {
		if err := m.Playback.Tick(); err != nil {
			log.Printf("app: advance: %v", err)
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	}
	m.refresh()
	m.layout()
	m.announce()
	if m.opts.Remote != nil {
		m.opts.Remote.Publish(m.Playback.Snapshot())
	}
	return m, tea.Batch(cmds...)
}

// announce sends a desktop notification when a new track is playing. Each
// notification replaces the previous one.
func (m *Model) announce() {
	if m.opts.Notifier == nil || m.Screen != ScreenPlayer {
		return
	}
	pl, st := m.Playback.Playlist(), m.Playback.State()
	if pl == nil || st.Paused {
		return
	}
	t := pl.Track(st.TrackID)
	if t == nil || t.Path == m.announced {
		return
	}
	m.announced = t.Path

	info := m.Playback.Info()
	n := notify.NowPlaying(info.Name, info.Artist, t.Path)
	n.ReplacesID = m.notifyID
	id, err := m.opts.Notifier.Notify(n)
	if err != nil {
		log.Printf("app: notify: %v", err)
		return
	}
	m.notifyID = id
}

func (m Model) takePending() []keymap.Action {
	actions := *m.pending
	*m.pending = nil
	return actions
}

// handleAction applies a resolved key or button action.
func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	if action == keymap.ActionQuit {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Screen != ScreenPlayer {
		return m, nil
	}

	ctrl := m.Playback
	var err error
	switch action {
	case keymap.ActionPlayPause:
		ctrl.TogglePause()
	case keymap.ActionNextTrack:
		err = ctrl.Advance(1)
	case keymap.ActionPrevTrack:
		if ctrl.State().TrackID == 0 {
			return m, nil
		}
		err = ctrl.Advance(-1)
	case keymap.ActionToggleShuffle:
		ctrl.ToggleShuffle()
	case keymap.ActionToggleLoop:
		ctrl.ToggleLoop()
	case keymap.ActionVolumeUp:
		ctrl.SetVolume(ctrl.Volume() + volumeStep)
	case keymap.ActionVolumeDown:
		ctrl.SetVolume(ctrl.Volume() - volumeStep)
	}

	switch {
	case err != nil:
		log.Printf("app: %s: %v", action, err)
		m.ErrorMsg = errmsg.Format(errmsg.OpTrackChange, err)
	case action == keymap.ActionNextTrack || action == keymap.ActionPrevTrack:
		m.ErrorMsg = ""
	}
	m.refresh()
	return m, nil
}

// commitPath validates the folder typed on the setup screen and, when it
// holds playable files, switches to the player screen and starts playing.
// Otherwise the error is shown and setup stays active.
func (m *Model) commitPath(path string) {
	path = expandHome(path)
	if err := checkDir(path); err != nil {
		m.setupError(path, err)
		return
	}

	lastID := 0
	if m.opts.Session.PlaylistPath == path {
		lastID = m.opts.Session.SongInfo.ID
	}
	if err := m.Playback.Load(path, lastID); err != nil {
		m.setupError(path, err)
		return
	}

	m.setup.errLabel.SetText("")
	m.Screen = ScreenPlayer
	m.ErrorMsg = ""
	if err := m.Playback.PlayTrack(m.Playback.State().TrackID); err != nil {
		log.Printf("app: start playback: %v", err)
		m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
	}
	m.refresh()
}

func (m *Model) setupError(path string, err error) {
	log.Printf("app: setup %s: %v", path, err)
	m.setup.errLabel.SetText(errmsg.FormatWith(errmsg.OpPlaylistLoad, path, err))
	m.setup.path.Focus()
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return errPathMissing
	case err != nil:
		return err
	case !info.IsDir():
		return errNotDirectory
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

// refresh recomputes the player labels from the controller and keeps the
// pause button icon in sync with the paused flag.
func (m *Model) refresh() {
	p, ctrl := m.player, m.Playback
	st, info := ctrl.State(), ctrl.Info()

	p.errLabel.SetText(m.ErrorMsg)
	keys := m.keys[ScreenPlayer]
	p.shuffle.SetText(strings.TrimSpace(fmt.Sprintf("%s Shuffling [%s Toggle]: %t",
		icons.Shuffle(), keys.Hint(keymap.ActionToggleShuffle), st.Shuffle)))
	p.loop.SetText(strings.TrimSpace(fmt.Sprintf("%s Looping [%s Toggle]: %t",
		icons.Loop(), keys.Hint(keymap.ActionToggleLoop), st.Loop)))
	p.volume.SetText(fmt.Sprintf("Volume: %d%%", ctrl.Volume()))
	if !p.slider.Held() {
		p.slider.SetValue(ctrl.Volume())
	}

	if pl := ctrl.Playlist(); pl != nil {
		p.name.SetText(icons.FormatTitle(info.Name))
		p.artist.SetText(info.Artist)
		p.track.SetText(fmt.Sprintf("Track %d of %d", st.TrackID+1, pl.Len()))
	}
	p.progress.SetValue(ctrl.Progress())
	p.elapsed.SetText(ctrl.ElapsedString())
	p.total.SetText(fmt.Sprintf("-%s / %s", ctrl.RemainingString(), info.Length))

	if st.Paused != m.paused {
		m.paused = st.Paused
		if m.paused {
			p.pause.SetImage(m.opts.Images.Play)
		} else {
			p.pause.SetImage(m.opts.Images.Pause)
		}
	}
}

func (m *Model) layout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	m.setup.layout(m.Width, m.Height)
	m.player.layout(m.Width, m.Height)
}
