package noise

import "strings"

// Mode selects how user gains translate to audible gains.
type Mode int

const (
	// TechnicalMode applies user gains unmodified (flat response).
	TechnicalMode Mode = iota
	// PerceptualMode weights user gains by the inverse equal-loudness
	// contour so equal slider positions sound equally loud.
	PerceptualMode
)

func (m Mode) String() string {
	if m == PerceptualMode {
		return "Perceptual"
	}
	return "Technical"
}

// Next returns the other mode.
func (m Mode) Next() Mode {
	if m == PerceptualMode {
		return TechnicalMode
	}
	return PerceptualMode
}

// ParseMode reads a mode name as written by Mode.String, case-insensitive.
// Unknown names fall back to TechnicalMode.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "perceptual") {
		return PerceptualMode
	}
	return TechnicalMode
}

// perceptualWeights approximates the inverse Fletcher-Munson contour per
// band. Mid is the 1.0 reference; the ear needs far more energy at the
// spectrum's edges to perceive the same loudness.
var perceptualWeights = [NumBands]float32{
	2.8, // Sub Bass
	2.0, // Bass
	1.3, // Low Mid
	1.0, // Mid
	0.9, // Hi Mid
	0.8, // Presence
	1.4, // Brilliance
	2.2, // Air
}

// Compensation returns the loudness multiplier for a band under the given
// mode. It is a pure function of band identity and mode.
func Compensation(id BandID, mode Mode) float32 {
	if mode != PerceptualMode || id < 0 || id >= NumBands {
		return 1.0
	}
	return perceptualWeights[id]
}
