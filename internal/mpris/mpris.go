//go:build linux

package mpris

import (
	"log"

	"github.com/quarckster/go-mpris-server/pkg/server"
)

const busName = "cadence"

type busBackend struct {
	*playerAdapter
	srv *server.Server
}

func (b *busBackend) stop() error { return b.srv.Stop() }

func serve(sink Sink) backend {
	pa := &playerAdapter{sink: sink}
	b := &busBackend{
		playerAdapter: pa,
		srv:           server.NewServer(busName, rootAdapter{}, pa),
	}
	go func() {
		if err := b.srv.Listen(); err != nil {
			log.Printf("mpris: %v", err)
		}
	}()
	return b
}

// rootAdapter answers the org.mpris.MediaPlayer2 properties. The terminal
// owns the window and the process, so raise and quit are refused.
type rootAdapter struct{}

func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) Quit() error                 { return nil }
func (rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return "Cadence", nil }

//nolint:revive // name fixed by the MPRIS adapter interface
func (rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}
