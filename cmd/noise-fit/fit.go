package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/cwbudde/mayfly"

	"github.com/cwbudde/algo-noise/analysis"
	"github.com/cwbudde/algo-noise/internal/fitcommon"
	"github.com/cwbudde/algo-noise/noise"
)

type fitConfig struct {
	target        *analysis.Profile
	ranges        []analysis.Range
	style         noise.Style
	duration      float64
	sampleRate    int
	seed          int64
	maxEvals      int
	reportEvery   int
	mayflyVariant string
	mayflyPop     int
}

type fitResult struct {
	bestGains  []float64
	bestScore  float64
	bestShares []float64
	evals      int
	elapsed    float64
}

// scorePenalty is returned for candidates whose render cannot be evaluated.
const scorePenalty = 1e3

// runFit drives the Mayfly search over the eight band gains. Every candidate
// is rendered with the same seed so scores stay comparable across
// evaluations.
func runFit(cfg *fitConfig) (*fitResult, error) {
	start := time.Now()

	mc, err := newMayflyConfig(cfg.mayflyVariant, cfg.mayflyPop, noise.NumBands)
	if err != nil {
		return nil, err
	}
	mc.MaxIterations = fitcommon.MaxInt(1, cfg.maxEvals/(2*cfg.mayflyPop))
	mc.Rand = rand.New(rand.NewSource(cfg.seed))

	var mu sync.Mutex
	best := &fitResult{
		bestGains: make([]float64, noise.NumBands),
		bestScore: math.Inf(1),
	}
	evals := 0

	mc.ObjectiveFunc = func(pos []float64) float64 {
		score, shares := evaluate(cfg, pos)

		mu.Lock()
		evals++
		if score < best.bestScore {
			best.bestScore = score
			copy(best.bestGains, pos)
			best.bestShares = shares
			fmt.Printf("eval %d: score %.5f gains %s\n", evals, score, formatGains(pos))
		} else if evals%cfg.reportEvery == 0 {
			fmt.Printf("eval %d: best %.5f\n", evals, best.bestScore)
		}
		mu.Unlock()

		return score
	}

	if _, err := runMayfly(mc); err != nil {
		fmt.Fprintf(os.Stderr, "mayfly run failed: %v\n", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if math.IsInf(best.bestScore, 1) {
		return nil, fmt.Errorf("no candidate evaluated")
	}
	best.evals = evals
	best.elapsed = time.Since(start).Seconds()
	return best, nil
}

// evaluate renders noise with the candidate gains and scores the distance
// between its band profile and the target profile.
func evaluate(cfg *fitConfig, pos []float64) (float64, []float64) {
	st := noise.DefaultSettings()
	st.Style = cfg.style
	st.Volume = 0.5
	for i := range st.BandGains {
		st.BandGains[i] = float32(fitcommon.Clamp(pos[i], 0, 1))
	}

	eng, err := noise.NewEngine(noise.Config{
		SampleRate: cfg.sampleRate,
		Seed:       cfg.seed,
		Settings:   &st,
	})
	if err != nil {
		return scorePenalty, nil
	}

	frames := int(cfg.duration * float64(cfg.sampleRate))
	rendered := eng.RenderBlock(frames, 1)

	profile, err := analysis.MeasureProfile(rendered, cfg.sampleRate, cfg.ranges)
	if err != nil {
		return scorePenalty, nil
	}

	var sum float64
	shares := make([]float64, len(profile.Bands))
	for i, b := range profile.Bands {
		shares[i] = b.Share
		d := b.Share - cfg.target.Bands[i].Share
		sum += d * d
	}
	score := math.Sqrt(sum / float64(len(profile.Bands)))
	if math.IsNaN(score) {
		return scorePenalty, nil
	}
	return score, shares
}

func newMayflyConfig(variant string, pop int, dims int) (*mayfly.Config, error) {
	var cfg *mayfly.Config
	switch variant {
	case "ma":
		cfg = mayfly.NewDefaultConfig()
	case "desma":
		cfg = mayfly.NewDESMAConfig()
	case "olce":
		cfg = mayfly.NewOLCEConfig()
	case "eobbma":
		cfg = mayfly.NewEOBBMAConfig()
	case "gsasma":
		cfg = mayfly.NewGSASMAConfig()
	case "mpma":
		cfg = mayfly.NewMPMAConfig()
	case "aoblmoa":
		cfg = mayfly.NewAOBLMOAConfig()
	default:
		return nil, fmt.Errorf("unsupported variant %q", variant)
	}
	cfg.ProblemSize = dims
	cfg.LowerBound = 0.0
	cfg.UpperBound = 1.0
	cfg.NPop = pop
	cfg.NPopF = pop
	cfg.NC = 2 * pop
	cfg.NM = fitcommon.MaxInt(1, int(math.Round(0.05*float64(pop))))
	return cfg, nil
}

func runMayfly(cfg *mayfly.Config) (_ *mayfly.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mayfly panic: %v", r)
		}
	}()
	return mayfly.Optimize(cfg)
}

func formatGains(gains []float64) string {
	out := "["
	for i, g := range gains {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%.2f", fitcommon.Clamp(g, 0, 1))
	}
	return out + "]"
}
