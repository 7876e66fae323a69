package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// silentGain is the beep gain used at 0%; the stream is also marked Silent.
const silentGain = -10

// SetVolume sets the volume in percent, clamped to [0, 100].
func (p *Player) SetVolume(pct int) {
	p.volumePct = max(0, min(pct, 100))

	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = gain(p.volumePct)
		p.volume.Silent = p.volumePct == 0
		speaker.Unlock()
	}
}

// Volume returns the volume in percent.
func (p *Player) Volume() int { return p.volumePct }

// gain converts a percentage of full amplitude to beep's base-2 exponent:
// 100% -> 0, 50% -> -1, 25% -> -2.
func gain(pct int) float64 {
	switch {
	case pct <= 0:
		return silentGain
	case pct >= 100:
		return 0
	}
	return math.Log2(float64(pct) / 100)
}
