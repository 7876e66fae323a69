package tags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-mp3"
)

var errNoStreamInfo = errors.New("flac: no usable streaminfo block")

// ReadAudioInfo returns the length and sample rate of a music file. FLAC
// and MP3 are measured from headers and frame scanning; WAV and Ogg go
// through their beep decoder.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsMusicFile(path) {
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}

	if ext == ExtFLAC {
		info, err := flacStreamInfo(path)
		if err == nil {
			return info, nil
		}
		return decodedInfo(path, "FLAC", func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			if err := SkipID3v2(f); err != nil {
				return nil, beep.Format{}, err
			}
			return flac.Decode(f)
		})
	}

	switch ext {
	case ExtMP3:
		return mp3Info(path)
	case ExtWAV:
		return decodedInfo(path, "WAV", func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(f)
		})
	default:
		return decodedInfo(path, "OGG", func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return vorbis.Decode(f)
		})
	}
}

func mp3Info(path string) (*AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}
	rate := d.SampleRate()
	if rate <= 0 {
		return nil, errors.New("mp3: invalid sample rate")
	}
	return &AudioInfo{
		Duration:   samplesToDuration(max(int64(d.SampleCount()), 0), rate),
		Format:     "MP3",
		SampleRate: rate,
	}, nil
}

// flacStreamInfo reads the length from the STREAMINFO block without
// decoding any audio.
func flacStreamInfo(path string) (*AudioInfo, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	for _, meta := range f.Meta {
		b := meta.Data
		if meta.Type != goflac.StreamInfo || len(b) < 18 {
			continue
		}
		// 20-bit sample rate, then channels and depth, then a 36-bit
		// sample count ending at byte 17.
		rate := int(b[10])<<12 | int(b[11])<<4 | int(b[12])>>4
		total := int64(b[13]&0x0f)<<32 | int64(b[14])<<24 | int64(b[15])<<16 | int64(b[16])<<8 | int64(b[17])
		if rate == 0 {
			return nil, errNoStreamInfo
		}
		return &AudioInfo{
			Duration:   samplesToDuration(total, rate),
			Format:     "FLAC",
			SampleRate: rate,
		}, nil
	}
	return nil, errNoStreamInfo
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// decodedInfo opens path with decode and reads the stream length.
func decodedInfo(path, format string, decode decodeFunc) (*AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, fmtInfo, err := decode(f)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return &AudioInfo{
		Duration:   fmtInfo.SampleRate.D(s.Len()),
		Format:     format,
		SampleRate: int(fmtInfo.SampleRate),
	}, nil
}

func samplesToDuration(samples int64, rate int) time.Duration {
	return time.Duration(float64(samples) / float64(rate) * float64(time.Second))
}

// SkipID3v2 positions r after a leading ID3v2 tag, or back at the start
// when there is none.
func SkipID3v2(r io.ReadSeeker) error {
	var h [10]byte
	n, err := io.ReadFull(r, h[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < len(h) || string(h[:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	// syncsafe size, 7 bits per byte
	size := int64(h[6])<<21 | int64(h[7])<<14 | int64(h[8])<<7 | int64(h[9])
	_, err = r.Seek(int64(len(h))+size, io.SeekStart)
	return err
}
