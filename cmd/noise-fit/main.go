// Command noise-fit searches for equalizer gains whose rendered noise matches
// the band energy profile of a reference recording.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-noise/analysis"
	"github.com/cwbudde/algo-noise/internal/fitcommon"
	"github.com/cwbudde/algo-noise/noise"
	"github.com/cwbudde/algo-noise/preset"
)

func main() {
	referencePath := flag.String("reference", "reference.wav", "Reference WAV path")
	outputPreset := flag.String("output-preset", "fitted.json", "Path to write the best fitted settings JSON")
	reportPath := flag.String("report", "", "Optional report JSON path (default: <output-preset>.report.json)")
	style := flag.String("style", "vanilla", "Noise style to fit: vanilla or rain")
	duration := flag.Float64("duration", 4.0, "Evaluation render duration in seconds")
	sampleRate := flag.Int("sample-rate", 48000, "Render/analysis sample rate")
	seed := flag.Int64("seed", 1, "Random seed")
	maxEvals := flag.Int("max-evals", 2000, "Maximum objective evaluations")
	reportEvery := flag.Int("report-every", 50, "Print progress every N evaluations")
	mayflyVariant := flag.String("mayfly-variant", "desma", "Mayfly variant: ma|desma|olce|eobbma|gsasma|mpma|aoblmoa")
	mayflyPop := flag.Int("mayfly-pop", 10, "Male and female population size per Mayfly run")
	flag.Parse()

	if *outputPreset == "" {
		die("output-preset must not be empty")
	}
	if *maxEvals < 1 {
		die("max-evals must be >= 1")
	}
	if *reportEvery < 1 {
		*reportEvery = 1
	}
	if *mayflyPop < 2 {
		*mayflyPop = 2
	}
	if *duration < 0.5 {
		*duration = 0.5
	}

	refRaw, refSR, err := fitcommon.ReadWAVMono(*referencePath)
	if err != nil {
		die("failed to read reference: %v", err)
	}
	ref, err := fitcommon.ResampleIfNeeded(refRaw, refSR, *sampleRate)
	if err != nil {
		die("failed to resample reference: %v", err)
	}

	ranges := bandRanges()
	target, err := analysis.MeasureProfile(ref, *sampleRate, ranges)
	if err != nil {
		die("failed to analyze reference: %v", err)
	}

	fmt.Printf("Reference %s: %d frames at %d Hz, RMS %.4f\n",
		*referencePath, target.Frames, *sampleRate, target.RMS)
	for _, b := range target.Bands {
		fmt.Printf("  %-10s %6.0f–%-6.0f Hz  %5.1f%%\n", b.Name, b.LowHz, b.HighHz, b.Share*100)
	}

	cfg := &fitConfig{
		target:        target,
		ranges:        ranges,
		style:         noise.ParseStyle(*style),
		duration:      *duration,
		sampleRate:    *sampleRate,
		seed:          *seed,
		maxEvals:      *maxEvals,
		reportEvery:   *reportEvery,
		mayflyVariant: strings.ToLower(*mayflyVariant),
		mayflyPop:     *mayflyPop,
	}

	result, err := runFit(cfg)
	if err != nil {
		die("optimization failed: %v", err)
	}

	st := noise.DefaultSettings()
	st.Style = cfg.style
	st.Volume = 0.5
	for i := range st.BandGains {
		st.BandGains[i] = float32(result.bestGains[i])
	}
	st.Clamp()
	if err := preset.Save(*outputPreset, st); err != nil {
		die("failed to write settings: %v", err)
	}

	rp := *reportPath
	if rp == "" {
		rp = *outputPreset + ".report.json"
	}
	if err := writeReport(rp, *referencePath, cfg, result); err != nil {
		die("failed to write report: %v", err)
	}

	fmt.Printf("Done evals=%d elapsed=%.1fs best_score=%.5f variant=%s\n",
		result.evals, result.elapsed, result.bestScore, cfg.mayflyVariant)
	fmt.Printf("Wrote %s and %s\n", *outputPreset, rp)
}

// bandRanges maps the engine's fixed equalizer bands onto analysis ranges.
func bandRanges() []analysis.Range {
	ranges := make([]analysis.Range, noise.NumBands)
	for i, b := range noise.Bands {
		ranges[i] = analysis.Range{
			Name:   b.Name,
			LowHz:  float64(b.LowHz),
			HighHz: float64(b.HighHz),
		}
	}
	return ranges
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
