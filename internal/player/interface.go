package player

import "time"

// Interface is what the playback controller needs from an audio backend.
type Interface interface {
	// Play stops the current stream and starts path from the beginning.
	Play(path string) error
	Stop()
	Pause()
	Resume()
	State() State
	Position() time.Duration
	Duration() time.Duration
	// SetVolume sets the volume in percent and keeps it for later tracks.
	SetVolume(pct int)
	// FinishedChan receives once each time a stream plays to its end.
	FinishedChan() <-chan struct{}
}

var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
