package playlist

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/tags"
)

// ErrNoPlayableFiles is returned when a directory holds no supported audio.
var ErrNoPlayableFiles = errors.New("no playable files")

// MetadataCache stores metadata read from files between runs.
type MetadataCache interface {
	Lookup(path string, modTime time.Time, size int64) (library.Entry, bool, error)
	Store(entries ...library.Entry) error
}

// Loader reads a directory into a Playlist.
type Loader struct {
	// Cache is optional.
	Cache MetadataCache
	// ReadTags and ReadAudioInfo default to the tags package readers.
	ReadTags      func(path string) (*tags.Tag, error)
	ReadAudioInfo func(path string) (*tags.AudioInfo, error)
}

// NewLoader creates a loader backed by cache, which may be nil.
func NewLoader(cache MetadataCache) *Loader {
	return &Loader{Cache: cache}
}

// Load lists the regular files of dir with a supported extension, in name
// order, and reads their metadata.
func (l *Loader) Load(dir string) (*Playlist, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read playlist dir: %w", err)
	}

	var (
		tracks []Track
		fresh  []library.Entry
	)
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !tags.IsMusicFile(path) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		entry, ok := l.lookup(path, info)
		if !ok {
			entry = l.read(path, info)
			fresh = append(fresh, entry)
		}
		tracks = append(tracks, Track{
			Path:     path,
			Name:     e.Name(),
			Title:    entry.Title,
			Artist:   entry.Artist,
			Duration: entry.Duration,
		})
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoPlayableFiles)
	}

	if l.Cache != nil && len(fresh) > 0 {
		if err := l.Cache.Store(fresh...); err != nil {
			log.Printf("playlist: cache store: %v", err)
		}
	}
	return NewPlaylist(dir, tracks...), nil
}

func (l *Loader) lookup(path string, info os.FileInfo) (library.Entry, bool) {
	if l.Cache == nil {
		return library.Entry{}, false
	}
	entry, ok, err := l.Cache.Lookup(path, info.ModTime(), info.Size())
	if err != nil {
		log.Printf("playlist: cache lookup: %v", err)
		return library.Entry{}, false
	}
	return entry, ok
}

// read extracts metadata from the file itself. Unreadable tags or length
// leave the fields empty rather than dropping the track.
func (l *Loader) read(path string, info os.FileInfo) library.Entry {
	entry := library.Entry{Path: path, ModTime: info.ModTime(), Size: info.Size()}

	readTags := l.ReadTags
	if readTags == nil {
		readTags = tags.Read
	}
	if t, err := readTags(path); err == nil {
		entry.Artist = t.Artist
		entry.Title = t.Title
	}

	readAudio := l.ReadAudioInfo
	if readAudio == nil {
		readAudio = tags.ReadAudioInfo
	}
	if a, err := readAudio(path); err == nil {
		entry.Duration = a.Duration
	} else {
		log.Printf("playlist: length of %s: %v", filepath.Base(path), err)
	}
	return entry
}
