package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMinimalMP3 writes a single silent MPEG-1 Layer III frame
// (128 kbps, 44.1 kHz, stereo).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	frame := make([]byte, 417)
	copy(frame, []byte{0xff, 0xfb, 0x90, 0x00})
	require.NoError(t, os.WriteFile(path, frame, 0o600))
}

// tagMP3 creates name in a temp dir and lets edit fill its ID3v2 tag.
func tagMP3(t *testing.T, name string, edit func(*id3v2.Tag)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	createMinimalMP3(t, path)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	edit(tag)
	require.NoError(t, tag.Save())
	require.NoError(t, tag.Close())
	return path
}

func TestReadID3v2(t *testing.T) {
	tests := []struct {
		name string
		file string
		edit func(*id3v2.Tag)
		want Tag
	}{
		{
			name: "all frames",
			file: "a.mp3",
			edit: func(tag *id3v2.Tag) {
				tag.SetTitle("Title")
				tag.SetArtist("Artist")
				tag.SetAlbum("Album")
			},
			want: Tag{Title: "Title", Artist: "Artist", Album: "Album"},
		},
		{
			name: "album artist only",
			file: "b.mp3",
			edit: func(tag *id3v2.Tag) {
				tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, "Band")
			},
			want: Tag{Title: "b.mp3", Artist: "Band"},
		},
		{
			name: "untitled uses file name",
			file: "my-song.mp3",
			edit: func(tag *id3v2.Tag) {
				tag.SetArtist(" Artist\t")
			},
			want: Tag{Title: "my-song.mp3", Artist: "Artist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tagMP3(t, tt.file, tt.edit)

			got, err := readID3v2(path)
			require.NoError(t, err)

			tt.want.Path = path
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestReadVorbisComment_NotFLAC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.flac")
	require.NoError(t, os.WriteFile(path, []byte("not flac"), 0o600))

	_, err := readVorbisComment(path)

	assert.Error(t, err)
}
