package noise

import (
	"math"
	"testing"
)

func slowSine(frames, period int) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * float64(i) / float64(period)))
	}
	return out
}

func renderLoop(p *LoopPlayer, frames int) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = p.Next()
	}
	return out
}

func TestLoopRestartDeterministic(t *testing.T) {
	data := slowSine(8000, 200)

	p1, err := NewLoopPlayer(data, 8000, 8000)
	if err != nil {
		t.Fatalf("NewLoopPlayer: %v", err)
	}
	p2, err := NewLoopPlayer(data, 8000, 8000)
	if err != nil {
		t.Fatalf("NewLoopPlayer: %v", err)
	}

	a := renderLoop(p1, 8000)
	b := renderLoop(p2, 8000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fresh players diverge at frame %d: %g vs %g", i, a[i], b[i])
		}
	}

	p1.Reset()
	c := renderLoop(p1, 8000)
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("reset playback diverges at frame %d: %g vs %g", i, a[i], c[i])
		}
	}
}

func TestLoopSeamContinuity(t *testing.T) {
	// A period that does not divide the crossfade window forces the blend
	// to mix tail and head at different phases.
	data := slowSine(8000, 170)
	p, err := NewLoopPlayer(data, 8000, 8000)
	if err != nil {
		t.Fatalf("NewLoopPlayer: %v", err)
	}

	// Worst-case neighbor delta of the raw material.
	interior := maxAbsDelta(data)

	out := renderLoop(p, 3*len(data))
	if seam := maxAbsDelta(out); seam > interior*1.5 {
		t.Fatalf("seam discontinuity: max output delta %g vs interior bound %g", seam, interior)
	}
}

func TestLoopConstantSignalCrossesSeamExactly(t *testing.T) {
	data := make([]float32, 4000)
	for i := range data {
		data[i] = 0.5
	}
	p, err := NewLoopPlayer(data, 8000, 8000)
	if err != nil {
		t.Fatalf("NewLoopPlayer: %v", err)
	}

	// Crossfade weights must sum to 1 at every instant: a constant input
	// has to come out exactly constant through the seam.
	for i := 0; i < 5*len(data); i++ {
		if s := p.Next(); math.Abs(float64(s)-0.5) > 1e-6 {
			t.Fatalf("frame %d: got %g, want 0.5", i, s)
		}
	}
}

func TestLoopRateConversionPreservesPitch(t *testing.T) {
	const (
		nativeRate = 8000
		outputRate = 12000
		period     = 80 // 100 Hz at native rate
	)
	data := slowSine(nativeRate * 2, period)
	p, err := NewLoopPlayer(data, nativeRate, outputRate)
	if err != nil {
		t.Fatalf("NewLoopPlayer: %v", err)
	}

	out := renderLoop(p, outputRate) // one second
	crossings := 0
	for i := 1; i < len(out); i++ {
		if (out[i-1] < 0 && out[i] >= 0) || (out[i-1] >= 0 && out[i] < 0) {
			crossings++
		}
	}
	freq := float64(crossings) / 2.0
	if math.Abs(freq-100) > 3 {
		t.Fatalf("pitch shifted by rate conversion: got %.1f Hz, want 100 Hz", freq)
	}
}

func TestLoopRejectsBadInput(t *testing.T) {
	if _, err := NewLoopPlayer(nil, 8000, 8000); err == nil {
		t.Fatal("expected error for empty recording")
	}
	if _, err := NewLoopPlayer([]float32{0, 0, 0}, 0, 8000); err == nil {
		t.Fatal("expected error for invalid native rate")
	}
	if _, err := NewLoopPlayer([]float32{0, 0, 0}, 8000, 0); err == nil {
		t.Fatal("expected error for invalid output rate")
	}
}
