// Package analysis measures how a signal's spectral energy is distributed
// across frequency ranges.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

const (
	fftSize = 4096
	hopSize = 2048
)

// Range is a frequency interval in Hz.
type Range struct {
	Name   string  `json:"name"`
	LowHz  float64 `json:"low_hz"`
	HighHz float64 `json:"high_hz"`
}

// BandEnergy is the energy share of one frequency range.
type BandEnergy struct {
	Range
	Share float64 `json:"share"`
}

// Profile is the per-range energy distribution of a signal.
type Profile struct {
	SampleRate int          `json:"sample_rate"`
	Frames     int          `json:"frames"`
	RMS        float64      `json:"rms"`
	Bands      []BandEnergy `json:"bands"`
}

// powerSpectrum averages Hann-windowed STFT power frames across the signal.
// Signals shorter than one FFT frame are zero-padded into a single frame.
func powerSpectrum(samples []float32, sampleRate int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("analysis: invalid sample rate %d", sampleRate)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("analysis: empty signal")
	}

	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analysis: fft plan: %w", err)
	}

	hann := make([]float64, fftSize)
	for i := range hann {
		hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(fftSize-1))
	}

	nBins := fftSize / 2
	power := make([]float64, nBins)
	spec := make([]complex128, fftSize/2+1)
	buf := make([]float64, fftSize)

	nFrames := 0
	for pos := 0; pos+fftSize <= len(samples); pos += hopSize {
		for i := 0; i < fftSize; i++ {
			buf[i] = float64(samples[pos+i]) * hann[i]
		}
		plan.Forward(spec, buf)
		for k := 1; k < nBins; k++ {
			m := cmplx.Abs(spec[k])
			power[k] += m * m
		}
		nFrames++
	}
	if nFrames == 0 {
		for i := range buf {
			buf[i] = 0
		}
		for i := 0; i < len(samples) && i < fftSize; i++ {
			buf[i] = float64(samples[i]) * hann[i]
		}
		plan.Forward(spec, buf)
		for k := 1; k < nBins; k++ {
			m := cmplx.Abs(spec[k])
			power[k] += m * m
		}
		nFrames = 1
	}

	scale := 1.0 / float64(nFrames)
	for k := range power {
		power[k] *= scale
	}
	return power, nil
}

// binRange maps a frequency interval to FFT bin indices, clamped to the
// measurable range (DC excluded).
func binRange(lowHz, highHz float64, sampleRate int) (int, int) {
	binHz := float64(sampleRate) / float64(fftSize)
	lo := int(lowHz / binHz)
	hi := int(highHz / binHz)
	if lo < 1 {
		lo = 1
	}
	if hi > fftSize/2-1 {
		hi = fftSize/2 - 1
	}
	return lo, hi
}

// EnergyRatio returns the fraction of total spectral energy that falls
// inside [lowHz, highHz].
func EnergyRatio(samples []float32, sampleRate int, lowHz, highHz float64) (float64, error) {
	power, err := powerSpectrum(samples, sampleRate)
	if err != nil {
		return 0, err
	}
	var total, inBand float64
	lo, hi := binRange(lowHz, highHz, sampleRate)
	for k := 1; k < len(power); k++ {
		total += power[k]
		if k >= lo && k <= hi {
			inBand += power[k]
		}
	}
	if total == 0 {
		return 0, nil
	}
	return inBand / total, nil
}

// MeasureProfile computes the energy share of each range. Shares are
// normalized over the union of the requested ranges, so disjoint ranges
// covering the whole spectrum sum to 1.
func MeasureProfile(samples []float32, sampleRate int, ranges []Range) (*Profile, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("analysis: no ranges given")
	}
	power, err := powerSpectrum(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		SampleRate: sampleRate,
		Frames:     len(samples),
		RMS:        RMS(samples),
		Bands:      make([]BandEnergy, len(ranges)),
	}

	var total float64
	energies := make([]float64, len(ranges))
	for i, r := range ranges {
		lo, hi := binRange(r.LowHz, r.HighHz, sampleRate)
		var e float64
		for k := lo; k <= hi && k < len(power); k++ {
			e += power[k]
		}
		energies[i] = e
		total += e
	}
	for i, r := range ranges {
		share := 0.0
		if total > 0 {
			share = energies[i] / total
		}
		p.Bands[i] = BandEnergy{Range: r, Share: share}
	}
	return p, nil
}

// RMS returns the root-mean-square amplitude of the signal.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}
