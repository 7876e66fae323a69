package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/cadence/internal/tags"
)

// Player plays one audio file at a time through the beep speaker.
type Player struct {
	state      State
	ctrl       *beep.Ctrl
	volume     *effects.Volume
	streamer   beep.StreamSeekCloser
	format     beep.Format
	file       *os.File
	duration   time.Duration
	volumePct  int
	finishedCh chan struct{}
}

var (
	speakerOnce       sync.Once
	speakerErr        error
	speakerSampleRate beep.SampleRate
)

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:      Stopped,
		volumePct:  100,
		finishedCh: make(chan struct{}, 1),
	}
}

// initSpeaker opens the audio device once, at the rate of the first track.
func initSpeaker(rate beep.SampleRate) error {
	speakerOnce.Do(func() {
		speakerSampleRate = rate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	return speakerErr
}

// decode opens an audio stream for the file's format.
func decode(ext string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case tags.ExtMP3:
		return decodeGoMP3(f)
	case tags.ExtFLAC:
		// Some taggers prepend an ID3v2 tag the FLAC decoder doesn't handle
		if err := tags.SkipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case tags.ExtWAV:
		return wav.Decode(f)
	case tags.ExtOGG:
		return vorbis.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
}

// Play starts playback of the given audio file, replacing any current one.
func (p *Player) Play(path string) error {
	p.Stop()

	// Drain any stale finish signal from previous track
	select {
	case <-p.finishedCh:
	default:
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !tags.IsMusicFile(path) {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(ext, f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   gain(p.volumePct),
		Silent:   p.volumePct == 0,
	}

	p.state = Playing
	finished := p.finishedCh
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		select {
		case finished <- struct{}{}:
		default:
		}
	})))

	return nil
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.duration = 0
	p.state = Stopped
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// State returns the current playback state.
func (p *Player) State() State { return p.state }

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the loaded track.
func (p *Player) Duration() time.Duration { return p.duration }

// FinishedChan receives a value when the current track plays to its end.
func (p *Player) FinishedChan() <-chan struct{} { return p.finishedCh }
