package analysis

import (
	"math"
	"testing"
)

func sine(freq float64, sampleRate, frames int) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate)))
	}
	return out
}

func TestEnergyRatioLocatesSine(t *testing.T) {
	const sr = 48000
	s := sine(1000, sr, sr)

	in, err := EnergyRatio(s, sr, 900, 1100)
	if err != nil {
		t.Fatalf("EnergyRatio: %v", err)
	}
	if in < 0.95 {
		t.Fatalf("sine energy not concentrated: %g", in)
	}

	out, err := EnergyRatio(s, sr, 4000, 8000)
	if err != nil {
		t.Fatalf("EnergyRatio: %v", err)
	}
	if out > 0.01 {
		t.Fatalf("unexpected out-of-band energy: %g", out)
	}
}

func TestMeasureProfileSharesSumToOne(t *testing.T) {
	const sr = 48000
	s := sine(3000, sr, sr)
	ranges := []Range{
		{Name: "low", LowHz: 20, HighHz: 2000},
		{Name: "mid", LowHz: 2000, HighHz: 8000},
		{Name: "high", LowHz: 8000, HighHz: 20000},
	}

	p, err := MeasureProfile(s, sr, ranges)
	if err != nil {
		t.Fatalf("MeasureProfile: %v", err)
	}
	var total float64
	for _, b := range p.Bands {
		total += b.Share
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Fatalf("shares do not sum to 1: %g", total)
	}
	if p.Bands[1].Share < 0.95 {
		t.Fatalf("3 kHz sine not attributed to mid range: %g", p.Bands[1].Share)
	}
}

func TestRMS(t *testing.T) {
	const sr = 48000
	got := RMS(sine(440, sr, sr*2))
	want := 1.0 / math.Sqrt2
	if math.Abs(got-want) > 1e-3 {
		t.Fatalf("sine rms: got %g want %g", got, want)
	}
	if RMS(nil) != 0 {
		t.Fatal("empty rms should be 0")
	}
}

func TestShortSignalZeroPads(t *testing.T) {
	const sr = 48000
	s := sine(1000, sr, 1024) // shorter than one FFT frame
	in, err := EnergyRatio(s, sr, 800, 1200)
	if err != nil {
		t.Fatalf("EnergyRatio: %v", err)
	}
	if in < 0.8 {
		t.Fatalf("short sine energy not concentrated: %g", in)
	}
}
