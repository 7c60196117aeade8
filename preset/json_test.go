package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-noise/noise"
)

func TestLoadAppliesAndClamps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	content := `{
  "volume": 1.6,
  "band_gains": [0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 2.0],
  "style": "rain",
  "mode": "perceptual"
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	st, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Volume != 1.0 {
		t.Fatalf("volume not clamped: %g", st.Volume)
	}
	if st.BandGains[0] != 0.1 || st.BandGains[7] != 1.0 {
		t.Fatalf("gains mismatch: %v", st.BandGains)
	}
	if st.Style != noise.Rain || st.Mode != noise.PerceptualMode {
		t.Fatalf("enums mismatch: %v %v", st.Style, st.Mode)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if st != noise.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", st)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed settings")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := noise.DefaultSettings()
	st.Volume = 0.42
	st.BandGains[noise.Presence] = 0.9
	st.Style = noise.Rain
	st.Mode = noise.PerceptualMode

	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	if err := Save(path, st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != st {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, st)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"style": "rain"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	st, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := noise.DefaultSettings()
	if st.Style != noise.Rain {
		t.Fatalf("style not applied: %v", st.Style)
	}
	if st.Volume != want.Volume || st.BandGains != want.BandGains {
		t.Fatalf("defaults disturbed: %+v", st)
	}
}
