// internal/playback/state.go
package playback

import (
	"fmt"
	"time"
)

// NoTrack is the track id of a controller with no playlist.
const NoTrack = -1

// UnknownArtist is shown for tracks without an artist tag.
const UnknownArtist = "Unknown Artist"

// Status is the controller lifecycle state.
type Status int

const (
	StatusUninitialized Status = iota
	StatusReady
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "Uninitialized"
	case StatusReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// State is the playback state owned by the controller. TrackID is a valid
// index into the playlist while Ready and NoTrack otherwise.
type State struct {
	TrackID  int
	Paused   bool
	Elapsed  time.Duration
	Duration time.Duration
	Shuffle  bool
	Loop     bool
}

// Info holds the display strings of the current track.
type Info struct {
	Name   string
	Artist string
	Length string
}

// FormatClock formats d as HH:MM:SS, truncating to whole seconds.
func FormatClock(d time.Duration) string {
	total := max(int(d/time.Second), 0)
	hours, rem := total/3600, total%3600
	return fmt.Sprintf("%02d:%02d:%02d", hours, rem/60, rem%60)
}
