// Package mpris exposes playback over the MPRIS D-Bus interface so desktop
// media keys and applets can drive the player.
package mpris

import (
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/playback"
)

// Sink receives the commands of MPRIS clients. Calls arrive on the D-Bus
// goroutine, so implementations must hand them over to the UI loop.
type Sink interface {
	Action(a keymap.Action)
	SetVolume(pct int)
}

// backend is the platform service behind an Adapter.
type backend interface {
	publish(s playback.Snapshot)
	stop() error
}

// Adapter mirrors playback to MPRIS clients. Without a D-Bus backend every
// method does nothing.
type Adapter struct {
	b backend
}

// New registers the player on the session bus and starts serving in the
// background. Commands from MPRIS clients are forwarded to sink.
func New(sink Sink) *Adapter {
	return &Adapter{b: serve(sink)}
}

// Publish replaces the state reported to MPRIS clients.
func (a *Adapter) Publish(s playback.Snapshot) {
	if a.b != nil {
		a.b.publish(s)
	}
}

// Close stops serving and releases the bus name.
func (a *Adapter) Close() error {
	if a.b == nil {
		return nil
	}
	return a.b.stop()
}
