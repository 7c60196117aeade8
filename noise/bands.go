package noise

import "github.com/cwbudde/algo-noise/dsp"

// BandID identifies one of the eight fixed equalizer bands, ordered low to
// high.
type BandID int

const (
	SubBass BandID = iota
	Bass
	LowMid
	Mid
	HiMid
	Presence
	Brilliance
	Air
)

// NumBands is the number of fixed equalizer bands.
const NumBands = 8

// Band describes one fixed frequency range of the equalizer. Band edges are
// constants; only the gain applied to a band changes at runtime.
type Band struct {
	Name   string
	LowHz  float32
	HighHz float32
}

// Bands lists the eight fixed bands covering 20 Hz to 20 kHz.
var Bands = [NumBands]Band{
	{Name: "Sub Bass", LowHz: 20, HighHz: 60},
	{Name: "Bass", LowHz: 60, HighHz: 250},
	{Name: "Low Mid", LowHz: 250, HighHz: 500},
	{Name: "Mid", LowHz: 500, HighHz: 2000},
	{Name: "Hi Mid", LowHz: 2000, HighHz: 4000},
	{Name: "Presence", LowHz: 4000, HighHz: 6000},
	{Name: "Brilliance", LowHz: 6000, HighHz: 12000},
	{Name: "Air", LowHz: 12000, HighHz: 20000},
}

// CenterHz returns the arithmetic center of the band's range.
func (b Band) CenterHz() float32 {
	return (b.LowHz + b.HighHz) / 2
}

func (id BandID) String() string {
	if id < 0 || id >= NumBands {
		return "unknown"
	}
	return Bands[id].Name
}

const (
	// flatQ is the maximally flat response for the edge bands.
	flatQ = 0.70710678
	// bandQ trades separation against ringing for the interior bandpasses.
	bandQ = 1.5

	lowpassEdgeHz  = 60
	highpassEdgeHz = 16000
)

// newBandFilter builds the biquad that isolates a band's range. The lowest
// band keeps only content below its high edge, the highest band only content
// above its low edge; interior bands use a bandpass centered on the range.
func newBandFilter(b Band, sampleRate float32) *dsp.Biquad {
	switch {
	case b.LowHz <= lowpassEdgeHz:
		return dsp.NewLowpass(b.HighHz, sampleRate, flatQ)
	case b.HighHz >= highpassEdgeHz:
		return dsp.NewHighpass(b.LowHz, sampleRate, flatQ)
	default:
		return dsp.NewBandpass(b.CenterHz(), sampleRate, bandQ)
	}
}
