package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/cadence/internal/playback"
)

const (
	appName         = "cadence"
	sessionFileName = "session.toml"
	defaultVolume   = 100
)

// Session is what survives between runs: the playlist folder and the
// playback flags plus the last played track.
type Session struct {
	Initialised  bool     `koanf:"Initialised"`
	PlaylistPath string   `koanf:"PlaylistPath"`
	Shuffling    bool     `koanf:"Shuffling"`
	Looping      bool     `koanf:"Looping"`
	Volume       int      `koanf:"Volume"`
	SongInfo     SongInfo `koanf:"SongInfo"`
}

// SongInfo describes the last played track. Length is nil when the length
// was never known.
type SongInfo struct {
	ID         int     `koanf:"ID"`
	SongName   string  `koanf:"SongName"`
	SongArtist string  `koanf:"SongArtist"`
	Length     *string `koanf:"Length"`
}

// Default returns the session of a first run.
func Default() Session {
	return Session{Volume: defaultVolume}
}

// DefaultPath returns the session file location under the XDG state dir.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, sessionFileName))
}

// Load reads the session file at path. A missing file yields the default
// session; a file that cannot be parsed is an error.
func Load(path string) (Session, error) {
	s := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return s, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := k.Unmarshal("", &s); err != nil {
		return s, fmt.Errorf("decode %s: %w", path, err)
	}
	s.Volume = max(0, min(s.Volume, 100))
	return s, nil
}

// Save writes s to path, replacing the previous file atomically.
func Save(path string, s Session) error {
	data, err := marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func marshal(s Session) ([]byte, error) {
	k := koanf.New(".")
	values := map[string]any{
		"Initialised":         s.Initialised,
		"PlaylistPath":        s.PlaylistPath,
		"Shuffling":           s.Shuffling,
		"Looping":             s.Looping,
		"Volume":              s.Volume,
		"SongInfo.ID":         s.SongInfo.ID,
		"SongInfo.SongName":   s.SongInfo.SongName,
		"SongInfo.SongArtist": s.SongInfo.SongArtist,
	}
	if s.SongInfo.Length != nil {
		values["SongInfo.Length"] = *s.SongInfo.Length
	}
	for key, v := range values {
		if err := k.Set(key, v); err != nil {
			return nil, err
		}
	}
	return k.Marshal(toml.Parser())
}

// FromController captures the persisted projection of the controller. An
// uninitialised controller keeps the playlist path and track of prev so a
// run that never got past setup does not erase them.
func FromController(c *playback.Controller, prev Session) Session {
	st := c.State()
	s := prev
	s.Shuffling = st.Shuffle
	s.Looping = st.Loop
	s.Volume = c.Volume()

	if c.Status() != playback.StatusReady {
		return s
	}
	info := c.Info()
	s.Initialised = true
	s.PlaylistPath = c.Playlist().Dir()
	s.SongInfo = SongInfo{ID: st.TrackID, SongName: info.Name, SongArtist: info.Artist}
	if st.Duration > 0 {
		length := info.Length
		s.SongInfo.Length = &length
	}
	return s
}

// Apply restores the flags and volume of s onto c and, when s is
// initialised, loads its playlist positioned on the saved track.
func (s Session) Apply(c *playback.Controller) error {
	c.SetShuffle(s.Shuffling)
	c.SetLoop(s.Looping)
	c.SetVolume(s.Volume)
	if !s.Initialised {
		return nil
	}
	return c.Load(s.PlaylistPath, s.SongInfo.ID)
}
