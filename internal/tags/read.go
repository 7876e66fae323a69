package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Read returns the title, artist and album of a music file. A missing title
// becomes the file name. Text is sanitized so it is safe to draw.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err == nil {
		return newTag(path, m.Title(), m.Artist(), m.Album()), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		return readID3v2(path)
	case ExtFLAC:
		return readVorbisComment(path)
	}
	return nil, err
}

func newTag(path, title, artist, album string) *Tag {
	t := &Tag{
		Path:   path,
		Title:  Sanitize(title),
		Artist: strings.TrimSpace(Sanitize(artist)),
		Album:  Sanitize(album),
	}
	if t.Title == "" {
		t.Title = filepath.Base(path)
	}
	return t
}
