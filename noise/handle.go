package noise

import (
	"sync"
	"sync/atomic"
)

// Handle shares one Engine between a control surface and an audio callback.
// All mutation and rendering happens under one mutex held only for the
// duration of the change or of a single block; shutdown is an independent
// atomic flag so stopping never waits behind a render.
type Handle struct {
	mu      sync.Mutex
	engine  *Engine
	running atomic.Bool
}

// Open constructs the engine and returns a running handle.
func Open(cfg Config) (*Handle, error) {
	e, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	h := &Handle{engine: e}
	h.running.Store(true)
	return h, nil
}

// Running reports whether the handle still produces audio.
func (h *Handle) Running() bool {
	return h.running.Load()
}

// Shutdown stops audio production. It is idempotent and does not take the
// render lock; the next render observes the flag and emits silence.
func (h *Handle) Shutdown() {
	h.running.Store(false)
}

// SampleRate returns the engine's output rate. The rate is fixed at
// construction, so no lock is needed.
func (h *Handle) SampleRate() int {
	return h.engine.sampleRate
}

// Snapshot returns a copy of the current settings for display.
func (h *Handle) Snapshot() Settings {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.Settings()
}

// SetVolume sets the master volume, clamped to [0, 1].
func (h *Handle) SetVolume(v float32) {
	h.mu.Lock()
	h.engine.SetVolume(v)
	h.mu.Unlock()
}

// SetBandGain sets one band's gain, clamped to [0, 1].
func (h *Handle) SetBandGain(id BandID, gain float32) {
	h.mu.Lock()
	h.engine.SetBandGain(id, gain)
	h.mu.Unlock()
}

// SetStyle switches between vanilla noise and the rain loop.
func (h *Handle) SetStyle(s Style) {
	h.mu.Lock()
	h.engine.SetStyle(s)
	h.mu.Unlock()
}

// SetMode switches loudness normalization.
func (h *Handle) SetMode(m Mode) {
	h.mu.Lock()
	h.engine.SetMode(m)
	h.mu.Unlock()
}

// SetSettings replaces the full state, clamping every field.
func (h *Handle) SetSettings(s Settings) {
	h.mu.Lock()
	h.engine.SetSettings(s)
	h.mu.Unlock()
}

// RenderInto fills dst with interleaved frames from the current state.
// After Shutdown it writes silence without touching the engine.
func (h *Handle) RenderInto(dst []float32, channels int) {
	if !h.running.Load() {
		clear(dst)
		return
	}
	h.mu.Lock()
	h.engine.RenderInto(dst, channels)
	h.mu.Unlock()
}

// RenderBlock renders frames*channels interleaved samples into a fresh
// slice.
func (h *Handle) RenderBlock(frames, channels int) []float32 {
	if channels < 1 {
		channels = 1
	}
	dst := make([]float32, frames*channels)
	h.RenderInto(dst, channels)
	return dst
}
