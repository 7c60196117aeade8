// Package preset loads and saves engine settings as JSON.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-noise/noise"
)

// File is the JSON schema for saved settings. Absent fields keep their
// defaults, so old files stay loadable as the schema grows.
type File struct {
	Volume    *float32  `json:"volume"`
	BandGains []float32 `json:"band_gains"`
	Style     string    `json:"style"`
	Mode      string    `json:"mode"`
}

// Load reads a settings JSON file and applies it on top of defaults.
// Out-of-range values are clamped, never rejected; a missing file yields
// plain defaults.
func Load(path string) (noise.Settings, error) {
	st := noise.DefaultSettings()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return st, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return st, fmt.Errorf("preset %s: %w", path, err)
	}
	Apply(&st, &f)
	return st, nil
}

// Apply merges a parsed file onto existing settings, clamping every field.
func Apply(dst *noise.Settings, f *File) {
	if dst == nil || f == nil {
		return
	}
	if f.Volume != nil {
		dst.Volume = *f.Volume
	}
	for i := 0; i < len(f.BandGains) && i < noise.NumBands; i++ {
		dst.BandGains[i] = f.BandGains[i]
	}
	if f.Style != "" {
		dst.Style = noise.ParseStyle(f.Style)
	}
	if f.Mode != "" {
		dst.Mode = noise.ParseMode(f.Mode)
	}
	dst.Clamp()
}

// Save writes settings as JSON, creating parent directories as needed.
func Save(path string, st noise.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	vol := st.Volume
	f := File{
		Volume:    &vol,
		BandGains: st.BandGains[:],
		Style:     st.Style.String(),
		Mode:      st.Mode.String(),
	}
	b, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// DefaultPath returns the per-user settings location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "algo-noise", "settings.json"), nil
}
