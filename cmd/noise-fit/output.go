package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-noise/noise"
)

type reportBand struct {
	Name        string  `json:"name"`
	LowHz       float64 `json:"low_hz"`
	HighHz      float64 `json:"high_hz"`
	Gain        float64 `json:"gain"`
	TargetShare float64 `json:"target_share"`
	FittedShare float64 `json:"fitted_share"`
}

type report struct {
	Reference  string       `json:"reference"`
	Style      string       `json:"style"`
	Variant    string       `json:"variant"`
	SampleRate int          `json:"sample_rate"`
	Seed       int64        `json:"seed"`
	Evals      int          `json:"evals"`
	ElapsedSec float64      `json:"elapsed_sec"`
	BestScore  float64      `json:"best_score"`
	Bands      []reportBand `json:"bands"`
	CreatedAt  string       `json:"created_at"`
}

func writeReport(path, referencePath string, cfg *fitConfig, result *fitResult) error {
	rep := report{
		Reference:  referencePath,
		Style:      cfg.style.String(),
		Variant:    cfg.mayflyVariant,
		SampleRate: cfg.sampleRate,
		Seed:       cfg.seed,
		Evals:      result.evals,
		ElapsedSec: result.elapsed,
		BestScore:  result.bestScore,
		Bands:      make([]reportBand, noise.NumBands),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	for i := range rep.Bands {
		rb := reportBand{
			Name:        cfg.ranges[i].Name,
			LowHz:       cfg.ranges[i].LowHz,
			HighHz:      cfg.ranges[i].HighHz,
			Gain:        result.bestGains[i],
			TargetShare: cfg.target.Bands[i].Share,
		}
		if i < len(result.bestShares) {
			rb.FittedShare = result.bestShares[i]
		}
		rep.Bands[i] = rb
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
