// Package dsp provides the second-order filter primitives used by the
// noise engine's band-split equalizer.
package dsp

import "math"

// Biquad implements a second-order IIR filter (no heap allocations in Process)
type Biquad struct {
	// Coefficients
	b0, b1, b2 float32
	a1, a2     float32

	// State (previous samples)
	x1, x2 float32 // input history
	y1, y2 float32 // output history
}

// NewBiquad creates a new biquad filter with the given coefficients
func NewBiquad(b0, b1, b2, a1, a2 float32) *Biquad {
	return &Biquad{
		b0: b0,
		b1: b1,
		b2: b2,
		a1: a1,
		a2: a2,
	}
}

// Process processes one sample through the biquad filter
func (b *Biquad) Process(input float32) float32 {
	// Direct Form I implementation
	output := b.b0*input + b.b1*b.x1 + b.b2*b.x2 - b.a1*b.y1 - b.a2*b.y2
	output = FlushDenormals(output)

	// Update state
	b.x2 = b.x1
	b.x1 = input
	b.y2 = b.y1
	b.y1 = output

	return output
}

// Reset clears the filter state. Clearing mid-stream is audible as a click;
// callers reset only on stream (re)start.
func (b *Biquad) Reset() {
	b.x1, b.x2 = 0, 0
	b.y1, b.y2 = 0, 0
}

// clampCutoff limits a cutoff frequency to a stable range below Nyquist.
// Cookbook coefficients blow up as the cutoff approaches sampleRate/2.
func clampCutoff(cutoff, sampleRate float32) float64 {
	f := float64(cutoff)
	limit := 0.45 * float64(sampleRate)
	if f > limit {
		f = limit
	}
	if f < 1.0 {
		f = 1.0
	}
	return f
}

// NewLowpass creates a lowpass biquad filter (audio-EQ cookbook formulas)
func NewLowpass(cutoff, sampleRate, q float32) *Biquad {
	w0 := 2.0 * math.Pi * clampCutoff(cutoff, sampleRate) / float64(sampleRate)
	alpha := math.Sin(w0) / (2.0 * float64(q))
	cosw0 := math.Cos(w0)

	b0 := (1.0 - cosw0) / 2.0
	b1 := 1.0 - cosw0
	b2 := (1.0 - cosw0) / 2.0
	a0 := 1.0 + alpha
	a1 := -2.0 * cosw0
	a2 := 1.0 - alpha

	// Normalize by a0
	return NewBiquad(
		float32(b0/a0),
		float32(b1/a0),
		float32(b2/a0),
		float32(a1/a0),
		float32(a2/a0),
	)
}

// NewHighpass creates a highpass biquad filter (audio-EQ cookbook formulas)
func NewHighpass(cutoff, sampleRate, q float32) *Biquad {
	w0 := 2.0 * math.Pi * clampCutoff(cutoff, sampleRate) / float64(sampleRate)
	alpha := math.Sin(w0) / (2.0 * float64(q))
	cosw0 := math.Cos(w0)

	b0 := (1.0 + cosw0) / 2.0
	b1 := -(1.0 + cosw0)
	b2 := (1.0 + cosw0) / 2.0
	a0 := 1.0 + alpha
	a1 := -2.0 * cosw0
	a2 := 1.0 - alpha

	return NewBiquad(
		float32(b0/a0),
		float32(b1/a0),
		float32(b2/a0),
		float32(a1/a0),
		float32(a2/a0),
	)
}

// NewBandpass creates a bandpass biquad filter with constant 0 dB peak gain
// at the center frequency.
func NewBandpass(center, sampleRate, q float32) *Biquad {
	w0 := 2.0 * math.Pi * clampCutoff(center, sampleRate) / float64(sampleRate)
	sinw0 := math.Sin(w0)
	cosw0 := math.Cos(w0)
	alpha := sinw0 / (2.0 * float64(q))

	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1.0 + alpha
	a1 := -2.0 * cosw0
	a2 := 1.0 - alpha

	return NewBiquad(
		float32(b0/a0),
		float32(b1/a0),
		float32(b2/a0),
		float32(a1/a0),
		float32(a2/a0),
	)
}

// FlushDenormals converts denormal numbers to zero to avoid performance issues
func FlushDenormals(x float32) float32 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0.0
	}
	return x
}
