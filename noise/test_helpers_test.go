package noise

import (
	"math"
	"testing"
)

func newTestEngine(t *testing.T, sampleRate int, mutate func(*Settings)) *Engine {
	t.Helper()
	st := DefaultSettings()
	if mutate != nil {
		mutate(&st)
	}
	e, err := NewEngine(Config{SampleRate: sampleRate, Seed: 7, Settings: &st})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func mutedGains() [NumBands]float32 {
	return [NumBands]float32{}
}

func soloGain(id BandID, gain float32) [NumBands]float32 {
	var g [NumBands]float32
	g[id] = gain
	return g
}

func maxAbsDelta(samples []float32) float64 {
	var peak float64
	for i := 1; i < len(samples); i++ {
		d := math.Abs(float64(samples[i]) - float64(samples[i-1]))
		if d > peak {
			peak = d
		}
	}
	return peak
}

func maxAbs(samples []float32) float64 {
	var peak float64
	for _, s := range samples {
		if v := math.Abs(float64(s)); v > peak {
			peak = v
		}
	}
	return peak
}
