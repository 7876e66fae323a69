package playback

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"

	"github.com/llehouerou/cadence/internal/player"
	"github.com/llehouerou/cadence/internal/playlist"
	"github.com/llehouerou/cadence/internal/tags"
)

var (
	// ErrTrackOutOfRange is returned when a track id is not in the playlist.
	ErrTrackOutOfRange = errors.New("track not in playlist")
	// ErrNotReady is returned by track operations before a playlist is loaded.
	ErrNotReady = errors.New("no playlist loaded")
)

// Loader reads a playlist directory.
type Loader interface {
	Load(dir string) (*playlist.Playlist, error)
}

// Controller owns the playlist and playback state and drives the player.
type Controller struct {
	player   player.Interface
	loader   Loader
	readTags func(path string) (*tags.Tag, error)
	intn     func(n int) int

	playlist *playlist.Playlist
	status   Status
	state    State
	info     Info
	volume   int
}

// Option configures a Controller.
type Option func(*Controller)

// WithTagReader replaces the artist lookup done on every track change.
func WithTagReader(fn func(path string) (*tags.Tag, error)) Option {
	return func(c *Controller) { c.readTags = fn }
}

// WithRand replaces the source of shuffle picks. intn returns a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(c *Controller) { c.intn = intn }
}

// New creates an uninitialized controller.
func New(p player.Interface, loader Loader, opts ...Option) *Controller {
	c := &Controller{
		player:   p,
		loader:   loader,
		readTags: tags.Read,
		intn:     rand.IntN,
		status:   StatusUninitialized,
		state:    State{TrackID: NoTrack},
		volume:   100,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load enumerates dir into the playlist and selects lastID, or the first
// track when lastID is out of range. Nothing is played. On error the
// controller keeps its previous playlist and status.
func (c *Controller) Load(dir string, lastID int) error {
	pl, err := c.loader.Load(dir)
	if err != nil {
		return err
	}

	c.player.Stop()
	c.playlist = pl
	c.status = StatusReady

	id := lastID
	if !pl.Valid(id) {
		id = 0
	}
	t := pl.Track(id)
	c.state.TrackID = id
	c.state.Elapsed = 0
	c.state.Duration = t.Duration
	c.info = Info{Name: t.Name, Artist: artistOrUnknown(t.Artist), Length: FormatClock(t.Duration)}
	return nil
}

// PlayTrack stops the current track and plays track id, keeping the paused
// flag. The track id only changes when playback starts.
func (c *Controller) PlayTrack(id int) error {
	if c.status != StatusReady {
		return ErrNotReady
	}
	if !c.playlist.Valid(id) {
		log.Printf("playback: track %d not in playlist of %d", id, c.playlist.Len())
		return fmt.Errorf("%w: %d", ErrTrackOutOfRange, id)
	}

	t := c.playlist.Track(id)
	c.player.Stop()
	if err := c.player.Play(t.Path); err != nil {
		return fmt.Errorf("play %s: %w", t.Name, err)
	}
	if c.state.Paused {
		c.player.Pause()
	}

	duration := c.player.Duration()
	if duration <= 0 {
		duration = t.Duration
	}
	c.state.TrackID = id
	c.state.Duration = duration
	c.state.Elapsed = c.player.Position()
	c.info = Info{Name: t.Name, Artist: c.artist(t), Length: FormatClock(duration)}
	return nil
}

// artist re-reads the artist tag, falling back to the value read when the
// playlist was loaded.
func (c *Controller) artist(t *playlist.Track) string {
	if c.readTags != nil {
		tag, err := c.readTags(t.Path)
		if err == nil && tag.Artist != "" {
			return tag.Artist
		}
		if err != nil {
			log.Printf("playback: tags of %s: %v", filepath.Base(t.Path), err)
		}
	}
	return artistOrUnknown(t.Artist)
}

func artistOrUnknown(artist string) string {
	if artist == "" {
		return UnknownArtist
	}
	return artist
}

// Advance moves dir (+1 or -1) tracks and plays the result.
//
// With shuffle on, a random track other than the current one is picked
// instead. Past the last track playback wraps to the first when looping and
// otherwise stays on the last track, paused. Before the first track it wraps
// to the last when looping and otherwise stays on the first.
func (c *Controller) Advance(dir int) error {
	if c.status != StatusReady {
		return ErrNotReady
	}
	return c.PlayTrack(c.next(dir))
}

func (c *Controller) next(dir int) int {
	n := c.playlist.Len()
	id := c.state.TrackID

	if c.state.Shuffle {
		if n < 2 {
			return id
		}
		pick := c.intn(n - 1)
		if pick >= id {
			pick++
		}
		return pick
	}

	id += dir
	switch {
	case id > n-1:
		if c.state.Loop {
			return 0
		}
		c.setPaused(true)
		return n - 1
	case id < 0:
		if c.state.Loop {
			return n - 1
		}
		return 0
	}
	return id
}

// TogglePause flips the paused flag and pauses or resumes the audio.
func (c *Controller) TogglePause() {
	c.setPaused(!c.state.Paused)
}

func (c *Controller) setPaused(paused bool) {
	c.state.Paused = paused
	if paused {
		c.player.Pause()
	} else {
		c.player.Resume()
	}
}

// Tick samples the playback position and advances to the next track when
// the current one has ended. A failed automatic advance pauses playback.
func (c *Controller) Tick() error {
	if c.status != StatusReady {
		return nil
	}
	c.state.Elapsed = c.player.Position()
	if !c.trackEnded() {
		return nil
	}
	if err := c.Advance(1); err != nil {
		c.setPaused(true)
		return err
	}
	return nil
}

func (c *Controller) trackEnded() bool {
	select {
	case <-c.player.FinishedChan():
		return true
	default:
	}
	return c.player.State() == player.Playing &&
		c.state.Duration > 0 && c.state.Elapsed >= c.state.Duration
}

// ToggleShuffle flips shuffle and returns the new value.
func (c *Controller) ToggleShuffle() bool {
	c.state.Shuffle = !c.state.Shuffle
	return c.state.Shuffle
}

// ToggleLoop flips looping and returns the new value.
func (c *Controller) ToggleLoop() bool {
	c.state.Loop = !c.state.Loop
	return c.state.Loop
}

// SetShuffle sets shuffle.
func (c *Controller) SetShuffle(on bool) { c.state.Shuffle = on }

// SetLoop sets looping.
func (c *Controller) SetLoop(on bool) { c.state.Loop = on }

// SetVolume sets the volume in percent, clamped to [0, 100].
func (c *Controller) SetVolume(pct int) {
	c.volume = max(0, min(pct, 100))
	c.player.SetVolume(c.volume)
}

// Volume returns the volume in percent.
func (c *Controller) Volume() int { return c.volume }

// Status returns the lifecycle state.
func (c *Controller) Status() Status { return c.status }

// State returns a copy of the playback state.
func (c *Controller) State() State { return c.state }

// Info returns the display strings of the current track.
func (c *Controller) Info() Info { return c.info }

// Playlist returns the loaded playlist, or nil while uninitialized.
func (c *Controller) Playlist() *playlist.Playlist { return c.playlist }

// ElapsedString formats the elapsed time.
func (c *Controller) ElapsedString() string {
	return FormatClock(c.state.Elapsed)
}

// RemainingString formats the time left in the track.
func (c *Controller) RemainingString() string {
	return FormatClock(max(c.state.Duration-c.state.Elapsed, 0))
}

// Progress returns the elapsed share of the track in percent.
func (c *Controller) Progress() float64 {
	if c.state.Duration <= 0 {
		return 0
	}
	return float64(c.state.Elapsed) / float64(c.state.Duration) * 100
}

// Snapshot is a copy of what the controller exposes, safe to hand to
// another goroutine.
type Snapshot struct {
	Status Status
	State  State
	Info   Info
	Track  *playlist.Track // nil while uninitialized
	Len    int
	Volume int
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Status: c.status,
		State:  c.state,
		Info:   c.info,
		Volume: c.volume,
	}
	if c.playlist != nil {
		s.Len = c.playlist.Len()
		if t := c.playlist.Track(c.state.TrackID); t != nil {
			track := *t
			s.Track = &track
		}
	}
	return s
}
