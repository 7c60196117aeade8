package noise

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp"
	"github.com/cwbudde/algo-noise/sample"
)

// Settings is the complete user-adjustable state of the engine. All values
// are clamped to their valid domain when applied; a control surface can
// never push the engine into an invalid state.
type Settings struct {
	Volume    float32
	BandGains [NumBands]float32
	Style     Style
	Mode      Mode
}

// DefaultSettings returns balanced band gains with the volume down.
func DefaultSettings() Settings {
	s := Settings{Style: Vanilla, Mode: TechnicalMode}
	for i := range s.BandGains {
		s.BandGains[i] = 0.5
	}
	return s
}

// Clamp forces all fields into their valid domain.
func (s *Settings) Clamp() {
	s.Volume = clamp01(s.Volume)
	for i := range s.BandGains {
		s.BandGains[i] = clamp01(s.BandGains[i])
	}
	if s.Style != Rain {
		s.Style = Vanilla
	}
	if s.Mode != PerceptualMode {
		s.Mode = TechnicalMode
	}
}

// Config describes how to construct an Engine.
type Config struct {
	// SampleRate is the negotiated output rate in Hz. Required.
	SampleRate int
	// Seed initializes the noise generator; 0 selects a fixed default.
	Seed int64
	// Settings overrides the initial state; nil uses DefaultSettings.
	Settings *Settings
}

const (
	// bandHeadroom scales each band so the 8-band sum stays mostly inside
	// the limiter's linear region.
	bandHeadroom = 0.8

	// minAudibleGain is the threshold below which a band is treated as off.
	minAudibleGain = 0.001

	defaultSeed = 1
)

// Engine produces one continuous ambient signal from the current settings.
// It is not safe for concurrent use; wrap it in a Handle to share it
// between a control surface and an audio callback.
type Engine struct {
	sampleRate int
	settings   Settings
	source     *Source
	filters    [NumBands]*dsp.Biquad
	loop       *LoopPlayer
}

// NewEngine constructs an engine for the given output rate, decoding the
// embedded rain recording once. A decode failure is fatal: the engine
// cannot start without its sample material.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("noise: invalid sample rate %d", cfg.SampleRate)
	}

	data, nativeRate, err := sample.Rain()
	if err != nil {
		return nil, err
	}
	loop, err := NewLoopPlayer(data, nativeRate, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	e := &Engine{
		sampleRate: cfg.SampleRate,
		source:     NewSource(seed),
		loop:       loop,
		settings:   DefaultSettings(),
	}
	for i, b := range Bands {
		e.filters[i] = newBandFilter(b, float32(cfg.SampleRate))
	}
	if cfg.Settings != nil {
		e.settings = *cfg.Settings
		e.settings.Clamp()
	}
	return e, nil
}

// SampleRate returns the output rate the engine renders at.
func (e *Engine) SampleRate() int {
	return e.sampleRate
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// SetSettings replaces the full state, clamping every field.
func (e *Engine) SetSettings(s Settings) {
	s.Clamp()
	e.settings = s
}

// SetVolume sets the master volume, clamped to [0, 1].
func (e *Engine) SetVolume(v float32) {
	e.settings.Volume = clamp01(v)
}

// SetBandGain sets one band's gain, clamped to [0, 1]. Unknown band
// identities are ignored.
func (e *Engine) SetBandGain(id BandID, gain float32) {
	if id < 0 || id >= NumBands {
		return
	}
	e.settings.BandGains[id] = clamp01(gain)
}

// SetStyle switches the signal feeding the band filters. Filter state is
// preserved across the switch so the transition is click-free.
func (e *Engine) SetStyle(s Style) {
	if s != Rain {
		s = Vanilla
	}
	e.settings.Style = s
}

// SetMode switches loudness normalization.
func (e *Engine) SetMode(m Mode) {
	if m != PerceptualMode {
		m = TechnicalMode
	}
	e.settings.Mode = m
}

// RenderInto fills dst with interleaved frames from the current settings,
// duplicating the mono signal across channels. len(dst) must be a multiple
// of channels; it performs no allocation.
func (e *Engine) RenderInto(dst []float32, channels int) {
	if channels < 1 {
		channels = 1
	}
	frames := len(dst) / channels
	for f := 0; f < frames; f++ {
		s := e.renderFrame()
		base := f * channels
		for c := 0; c < channels; c++ {
			dst[base+c] = s
		}
	}
}

// RenderBlock renders frames*channels interleaved samples into a fresh
// slice. Offline rendering and tests use this; the audio callback path
// uses RenderInto with a reused buffer.
func (e *Engine) RenderBlock(frames, channels int) []float32 {
	if channels < 1 {
		channels = 1
	}
	dst := make([]float32, frames*channels)
	e.RenderInto(dst, channels)
	return dst
}

// renderFrame produces one mono output sample, advancing the noise
// generator, band filter registers and loop cursor as the settings demand.
func (e *Engine) renderFrame() float32 {
	st := &e.settings

	var sum float32
	switch st.Style {
	case Rain:
		raw := e.loop.Next()
		for i := range e.filters {
			// Muted bands still run their filter so their state tracks the
			// signal and un-muting cannot click.
			filtered := e.filters[i].Process(raw)
			gain := st.BandGains[i]
			if gain <= minAudibleGain {
				continue
			}
			sum += filtered * gain * Compensation(BandID(i), st.Mode) * bandHeadroom
		}
	default:
		for i := range e.filters {
			gain := st.BandGains[i]
			if gain <= minAudibleGain {
				continue
			}
			filtered := e.filters[i].Process(e.source.Sample())
			sum += filtered * gain * Compensation(BandID(i), st.Mode) * bandHeadroom
		}
	}

	return softLimit(sum * st.Volume)
}
