package main

import (
	"testing"

	"github.com/cwbudde/algo-noise/analysis"
	"github.com/cwbudde/algo-noise/noise"
)

func TestBandRangesCoverSpectrum(t *testing.T) {
	ranges := bandRanges()
	if len(ranges) != noise.NumBands {
		t.Fatalf("got %d ranges, want %d", len(ranges), noise.NumBands)
	}
	if ranges[0].LowHz != 20 {
		t.Fatalf("lowest edge = %v, want 20", ranges[0].LowHz)
	}
	if ranges[len(ranges)-1].HighHz != 20000 {
		t.Fatalf("highest edge = %v, want 20000", ranges[len(ranges)-1].HighHz)
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i].LowHz != ranges[i-1].HighHz {
			t.Fatalf("gap between %s and %s", ranges[i-1].Name, ranges[i].Name)
		}
	}
}

func TestEvaluateRewardsMatchingProfile(t *testing.T) {
	const sampleRate = 24000
	trueGains := []float64{0.1, 0.9, 0.8, 0.3, 0.1, 0.1, 0.1, 0.1}

	st := noise.DefaultSettings()
	st.Volume = 0.5
	for i, g := range trueGains {
		st.BandGains[i] = float32(g)
	}
	eng, err := noise.NewEngine(noise.Config{SampleRate: sampleRate, Seed: 1, Settings: &st})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ranges := bandRanges()
	target, err := analysis.MeasureProfile(eng.RenderBlock(sampleRate, 1), sampleRate, ranges)
	if err != nil {
		t.Fatalf("MeasureProfile: %v", err)
	}

	cfg := &fitConfig{
		target:     target,
		ranges:     ranges,
		style:      noise.Vanilla,
		duration:   1.0,
		sampleRate: sampleRate,
		seed:       1,
	}

	matched, _ := evaluate(cfg, trueGains)
	trebleHeavy := []float64{0.1, 0.1, 0.1, 0.1, 0.3, 0.8, 0.9, 0.9}
	mismatched, _ := evaluate(cfg, trebleHeavy)

	if matched >= mismatched {
		t.Fatalf("matched gains scored %.5f, mismatched %.5f; matched should be lower", matched, mismatched)
	}
}

func TestNewMayflyConfigVariants(t *testing.T) {
	cfg, err := newMayflyConfig("desma", 10, noise.NumBands)
	if err != nil {
		t.Fatalf("desma: %v", err)
	}
	if cfg.ProblemSize != noise.NumBands || cfg.LowerBound != 0 || cfg.UpperBound != 1 {
		t.Fatalf("unexpected search space: size=%d bounds=[%v,%v]",
			cfg.ProblemSize, cfg.LowerBound, cfg.UpperBound)
	}
	if cfg.NC != 20 || cfg.NM < 1 {
		t.Fatalf("unexpected population: NC=%d NM=%d", cfg.NC, cfg.NM)
	}
	if _, err := newMayflyConfig("bogus", 10, noise.NumBands); err == nil {
		t.Fatal("expected error for unsupported variant")
	}
}
