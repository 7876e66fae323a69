package playlist

import "time"

// Track represents a single file of the playlist directory.
type Track struct {
	ID       int    // index in the playlist
	Path     string // file path for playback
	Name     string // file name, shown as the song name
	Title    string
	Artist   string
	Duration time.Duration
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	dir    string
	tracks []Track
}

// NewPlaylist creates a playlist for dir holding tracks, renumbering their
// IDs to match their position.
func NewPlaylist(dir string, tracks ...Track) *Playlist {
	p := &Playlist{dir: dir, tracks: make([]Track, 0, len(tracks))}
	for _, t := range tracks {
		t.ID = len(p.tracks)
		p.tracks = append(p.tracks, t)
	}
	return p
}

// Dir returns the directory the playlist was read from.
func (p *Playlist) Dir() string {
	return p.dir
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Valid reports whether id indexes a track.
func (p *Playlist) Valid(id int) bool {
	return id >= 0 && id < len(p.tracks)
}
