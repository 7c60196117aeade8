package noise

import (
	"fmt"
	"math"
)

// CrossfadeSeconds is the length of the seam crossfade window, measured at
// the recording's native rate.
const CrossfadeSeconds = 2.0

// LoopPlayer renders a finite recording as an endless stream. The read
// position advances by nativeRate/outputRate frames per output frame with
// linear interpolation between neighboring native frames. Inside the final
// crossfade window the tail is blended with the loop head using
// complementary raised-cosine weights, so amplitude crosses the seam
// without a discontinuity.
type LoopPlayer struct {
	data       []float32
	nativeRate int
	step       float64 // native frames advanced per output frame
	pos        float64 // fractional read position in native frames
	fadeFrames int
	fadeStart  int // len(data) - fadeFrames; also the seamless loop period
}

// NewLoopPlayer wraps a mono recording for playback at outputRate. The
// recording buffer is read-only for the player's lifetime.
func NewLoopPlayer(data []float32, nativeRate, outputRate int) (*LoopPlayer, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("loop: recording too short (%d frames)", len(data))
	}
	if nativeRate <= 0 || outputRate <= 0 {
		return nil, fmt.Errorf("loop: invalid rates %d -> %d", nativeRate, outputRate)
	}

	fade := int(CrossfadeSeconds * float64(nativeRate))
	if fade >= len(data) {
		// Short recordings still loop; fade across half the material.
		fade = len(data) / 2
	}
	if fade < 1 {
		fade = 1
	}

	return &LoopPlayer{
		data:       data,
		nativeRate: nativeRate,
		step:       float64(nativeRate) / float64(outputRate),
		fadeFrames: fade,
		fadeStart:  len(data) - fade,
	}, nil
}

// at reads the recording at a fractional position with linear interpolation.
func (p *LoopPlayer) at(pos float64) float32 {
	idx := int(pos)
	frac := float32(pos - float64(idx))
	n := len(p.data)
	idx %= n
	s0 := p.data[idx]
	s1 := p.data[(idx+1)%n]
	return s0 + (s1-s0)*frac
}

// Next returns the next output-rate sample and advances the cursor.
func (p *LoopPlayer) Next() float32 {
	var s float32
	if idx := int(p.pos); idx >= p.fadeStart {
		// Crossfade zone: blend the tail with the loop head. The weights
		// sum to 1 at every instant, preserving perceived loudness.
		t := (p.pos - float64(p.fadeStart)) / float64(p.fadeFrames)
		w := 0.5 - 0.5*math.Cos(math.Pi*t)
		tail := float64(p.at(p.pos))
		head := float64(p.at(p.pos - float64(p.fadeStart)))
		s = float32((1-w)*tail + w*head)
	} else {
		s = p.at(p.pos)
	}

	p.pos += p.step
	if p.pos >= float64(len(p.data)) {
		// Wrap by the seamless loop period: playback resumes where the
		// head had faded in, not at frame zero.
		p.pos -= float64(p.fadeStart)
	}
	return s
}

// Reset rewinds the cursor to the start of the recording. Resetting
// mid-stream is audible; callers reset only on stream (re)start.
func (p *LoopPlayer) Reset() {
	p.pos = 0
}

// Len returns the recording length in native frames.
func (p *LoopPlayer) Len() int {
	return len(p.data)
}

// NativeRate returns the recording's sample rate.
func (p *LoopPlayer) NativeRate() int {
	return p.nativeRate
}
