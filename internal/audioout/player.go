// Package audioout streams engine output to the system audio device.
package audioout

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-noise/noise"
)

const channels = 2

// Player pulls rendered frames from a Handle and feeds them to an oto
// float32 output stream.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	handle *noise.Handle

	mu      sync.Mutex
	started bool

	buf []float32
}

// NewPlayer opens the default audio device at the handle's sample rate.
// It blocks until the device is ready.
func NewPlayer(h *noise.Handle) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   h.SampleRate(),
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("audioout: open device: %w", err)
	}
	<-ready

	p := &Player{
		ctx:    ctx,
		handle: h,
		buf:    make([]float32, 4096),
	}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// Read renders whole frames into p. Partial trailing frames are left
// untouched and excluded from the returned count.
func (p *Player) Read(b []byte) (int, error) {
	frames := len(b) / (4 * channels)
	if frames == 0 {
		return 0, nil
	}
	n := frames * channels
	if len(p.buf) < n {
		p.buf = make([]float32, n)
	}
	samples := p.buf[:n]

	p.handle.RenderInto(samples, channels)

	for i, s := range samples {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(s))
	}
	return n * 4, nil
}

// Start begins playback. Calling Start on a playing stream is a no-op.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		p.player.Play()
		p.started = true
	}
}

// Close stops playback and releases the device stream.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	p.started = false
	return err
}
