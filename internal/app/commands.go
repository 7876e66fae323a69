package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/stderr"
)

// FrameMsg drives the per-frame update.
type FrameMsg time.Time

// StderrMsg is sent when the audio output writes to stderr.
type StderrMsg struct {
	Line string
}

// ActionMsg carries an action requested from outside the terminal, such as
// a desktop media key.
type ActionMsg keymap.Action

// VolumeMsg sets the volume percentage from outside the terminal.
type VolumeMsg int

// FrameCmd schedules the next frame after interval.
func FrameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// WatchStderr returns a command that waits for the next captured stderr line.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}
