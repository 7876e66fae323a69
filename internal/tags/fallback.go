package tags

import (
	"errors"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

var errNoVorbisComment = errors.New("flac: no vorbis comment block")

// readID3v2 parses the ID3v2 frames directly. dhowden/tag rejects some
// UTF-16 frames that id3v2 accepts.
func readID3v2(path string) (*Tag, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer t.Close()

	artist := t.Artist()
	if artist == "" {
		// album artist
		artist = textFrame(t, "TPE2")
	}
	return newTag(path, t.Title(), artist, t.Album()), nil
}

func textFrame(t *id3v2.Tag, id string) string {
	for _, f := range t.GetFrames(id) {
		if tf, ok := f.(id3v2.TextFrame); ok {
			return tf.Text
		}
	}
	return ""
}

// readVorbisComment reads the Vorbis comment block of a FLAC file. It is
// used when a prepended ID3 tag hides the FLAC metadata from dhowden/tag.
func readVorbisComment(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		block, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		get := func(field string) string {
			if v, err := block.Get(field); err == nil && len(v) > 0 {
				return v[0]
			}
			return ""
		}
		return newTag(path, get(flacvorbis.FIELD_TITLE), get(flacvorbis.FIELD_ARTIST), get(flacvorbis.FIELD_ALBUM)), nil
	}
	return nil, errNoVorbisComment
}
