package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/player"
	"github.com/llehouerou/cadence/internal/playlist"
)

type loaderFunc func(dir string) (*playlist.Playlist, error)

func (f loaderFunc) Load(dir string) (*playlist.Playlist, error) { return f(dir) }

func strPtr(s string) *string { return &s }

func newController(m *player.Mock, dirs *[]string) *playback.Controller {
	return playback.New(m, loaderFunc(func(dir string) (*playlist.Playlist, error) {
		if dirs != nil {
			*dirs = append(*dirs, dir)
		}
		return playlist.NewPlaylist(dir,
			playlist.Track{Path: dir + "/a.mp3", Name: "a.mp3", Artist: "A", Duration: time.Minute},
			playlist.Track{Path: dir + "/b.mp3", Name: "b.mp3", Duration: 2 * time.Minute},
			playlist.Track{Path: dir + "/c.mp3", Name: "c.mp3"},
		), nil
	}))
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "session.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.False(t, s.Initialised)
	assert.Equal(t, 100, s.Volume)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("Initialised = [\n"), 0o600))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		session Session
	}{
		{
			name: "with length",
			session: Session{
				Initialised:  true,
				PlaylistPath: "/music/mix",
				Shuffling:    true,
				Volume:       35,
				SongInfo: SongInfo{
					ID:         4,
					SongName:   "track.mp3",
					SongArtist: "Band",
					Length:     strPtr("00:03:25"),
				},
			},
		},
		{
			name: "null length",
			session: Session{
				Initialised:  true,
				PlaylistPath: "/music",
				Looping:      true,
				Volume:       100,
				SongInfo:     SongInfo{SongName: "a.wav", SongArtist: playback.UnknownArtist},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "session.toml")

			require.NoError(t, Save(path, tt.session))
			got, err := Load(path)

			require.NoError(t, err)
			assert.Equal(t, tt.session, got)
		})
	}
}

func TestSave_OmitsNullLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")

	require.NoError(t, Save(path, Session{Initialised: true, Volume: 50}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Length")
	assert.Contains(t, string(data), "SongInfo")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, Save(path, Session{PlaylistPath: "/old", Volume: 10}))

	require.NoError(t, Save(path, Session{PlaylistPath: "/new", Volume: 20}))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/new", got.PlaylistPath)
	assert.Equal(t, 20, got.Volume)
}

func TestLoad_ClampsVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("Volume = 400\n"), 0o600))

	s, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 100, s.Volume)
}

func TestFromController(t *testing.T) {
	t.Run("uninitialised keeps previous playlist", func(t *testing.T) {
		c := newController(player.NewMock(), nil)
		c.SetShuffle(true)
		prev := Session{PlaylistPath: "/kept", SongInfo: SongInfo{ID: 2}}

		s := FromController(c, prev)

		assert.False(t, s.Initialised)
		assert.Equal(t, "/kept", s.PlaylistPath)
		assert.Equal(t, 2, s.SongInfo.ID)
		assert.True(t, s.Shuffling)
		assert.Equal(t, 100, s.Volume)
	})

	t.Run("ready", func(t *testing.T) {
		c := newController(player.NewMock(), nil)
		require.NoError(t, c.Load("/music", 1))
		c.SetLoop(true)
		c.SetVolume(60)

		s := FromController(c, Default())

		assert.Equal(t, Session{
			Initialised:  true,
			PlaylistPath: "/music",
			Looping:      true,
			Volume:       60,
			SongInfo: SongInfo{
				ID:         1,
				SongName:   "b.mp3",
				SongArtist: playback.UnknownArtist,
				Length:     strPtr("00:02:00"),
			},
		}, s)
	})

	t.Run("unknown length is null", func(t *testing.T) {
		c := newController(player.NewMock(), nil)
		require.NoError(t, c.Load("/music", 2))

		s := FromController(c, Default())

		assert.Nil(t, s.SongInfo.Length)
	})
}

func TestSession_Apply(t *testing.T) {
	t.Run("initialised loads the saved track", func(t *testing.T) {
		m := player.NewMock()
		var dirs []string
		c := newController(m, &dirs)
		s := Session{
			Initialised:  true,
			PlaylistPath: "/music",
			Shuffling:    true,
			Looping:      true,
			Volume:       30,
			SongInfo:     SongInfo{ID: 2},
		}

		require.NoError(t, s.Apply(c))

		assert.Equal(t, []string{"/music"}, dirs)
		assert.Equal(t, playback.StatusReady, c.Status())
		assert.Equal(t, 2, c.State().TrackID)
		assert.True(t, c.State().Shuffle)
		assert.True(t, c.State().Loop)
		assert.Equal(t, 30, c.Volume())
		assert.Equal(t, 30, m.Volume())
	})

	t.Run("first run only sets flags", func(t *testing.T) {
		var dirs []string
		c := newController(player.NewMock(), &dirs)

		require.NoError(t, Default().Apply(c))

		assert.Empty(t, dirs)
		assert.Equal(t, playback.StatusUninitialized, c.Status())
	})
}
