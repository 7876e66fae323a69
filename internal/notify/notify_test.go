package notify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUrgencyValues(t *testing.T) {
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestNowPlaying(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "01.mp3")

	n := NowPlaying("01.mp3", "Unknown Artist", track)
	assert.Equal(t, "01.mp3", n.Title)
	assert.Equal(t, "Unknown Artist", n.Body)
	assert.Empty(t, n.Icon)
	assert.Equal(t, DefaultTimeout, n.Timeout)
	assert.Equal(t, UrgencyLow, n.Urgency)
	assert.Zero(t, n.ReplacesID)

	cover := filepath.Join(dir, "folder.png")
	require.NoError(t, os.WriteFile(cover, []byte("png"), 0o600))
	assert.Equal(t, cover, NowPlaying("01.mp3", "", track).Icon)
}

func TestFindAlbumArt(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"none", nil, ""},
		{"cover", []string{"cover.jpg"}, "cover.jpg"},
		{"priority", []string{"front.png", "folder.jpg", "cover.png"}, "cover.png"},
		{"other images ignored", []string{"back.jpg"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("img"), 0o600))
			}

			got := FindAlbumArt(filepath.Join(dir, "track.mp3"))

			if tt.want == "" {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, filepath.Join(dir, tt.want), got)
			}
		})
	}
}

func TestFindAlbumArt_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cover.jpg"), 0o755))

	assert.Empty(t, FindAlbumArt(filepath.Join(dir, "track.mp3")))
}

func TestDiscard(t *testing.T) {
	id, err := Discard.Notify(Notification{Title: "x"})
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, Discard.Close(id))
}
