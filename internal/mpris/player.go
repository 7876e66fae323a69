//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"math"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/notify"
	"github.com/llehouerou/cadence/internal/playback"
)

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter plus the
// optional loop and shuffle interfaces. Reads come from the last published
// snapshot; writes become sink commands.
type playerAdapter struct {
	sink Sink

	mu   sync.Mutex
	snap playback.Snapshot
}

func (p *playerAdapter) publish(s playback.Snapshot) {
	p.mu.Lock()
	p.snap = s
	p.mu.Unlock()
}

func (p *playerAdapter) snapshot() playback.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

func (p *playerAdapter) ready() bool {
	return p.snapshot().Status == playback.StatusReady
}

func (p *playerAdapter) Next() error {
	p.sink.Action(keymap.ActionNextTrack)
	return nil
}

func (p *playerAdapter) Previous() error {
	p.sink.Action(keymap.ActionPrevTrack)
	return nil
}

func (p *playerAdapter) Pause() error {
	if s := p.snapshot(); s.Status == playback.StatusReady && !s.State.Paused {
		p.sink.Action(keymap.ActionPlayPause)
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.sink.Action(keymap.ActionPlayPause)
	return nil
}

// Stop pauses; there is no stopped state once a playlist is loaded.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	if s := p.snapshot(); s.Status == playback.StatusReady && s.State.Paused {
		p.sink.Action(keymap.ActionPlayPause)
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.snapshot()
	switch {
	case s.Status != playback.StatusReady:
		return types.PlaybackStatusStopped, nil
	case s.State.Paused:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusPlaying, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.snapshot()
	if s.Track == nil {
		return types.Metadata{}, nil
	}

	title := s.Track.Title
	if title == "" {
		title = s.Info.Name
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.Track.Path)),
		Length:  types.Microseconds(s.State.Duration.Microseconds()),
		Title:   title,
		Artist:  []string{s.Info.Artist},
	}
	if art := notify.FindAlbumArt(s.Track.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.snapshot().Volume) / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.sink.SetVolume(int(math.Round(v * 100)))
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.snapshot().State.Elapsed.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) {
	s := p.snapshot()
	if s.Status != playback.StatusReady {
		return false, nil
	}
	return s.State.Loop || s.State.Shuffle || s.State.TrackID < s.Len-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	s := p.snapshot()
	return s.Status == playback.StatusReady && s.State.TrackID > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) { return p.ready(), nil }

func (p *playerAdapter) CanPause() (bool, error) { return p.ready(), nil }

func (p *playerAdapter) CanSeek() (bool, error) { return false, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus. Only
// whole-playlist looping exists.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.snapshot().State.Loop {
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Track looping is treated as playlist looping.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	if want := status != types.LoopStatusNone; want != p.snapshot().State.Loop {
		p.sink.Action(keymap.ActionToggleLoop)
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.snapshot().State.Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if shuffle != p.snapshot().State.Shuffle {
		p.sink.Action(keymap.ActionToggleShuffle)
	}
	return nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
