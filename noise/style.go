package noise

import "strings"

// Style selects the signal feeding the band filter bank.
type Style int

const (
	// Vanilla feeds each band its own broadband noise draw.
	Vanilla Style = iota
	// Rain feeds all bands the shared looped rain recording.
	Rain
)

func (s Style) String() string {
	if s == Rain {
		return "Rain"
	}
	return "Vanilla"
}

// Next returns the other style.
func (s Style) Next() Style {
	if s == Rain {
		return Vanilla
	}
	return Rain
}

// ParseStyle reads a style name as written by Style.String,
// case-insensitive. Unknown names fall back to Vanilla.
func ParseStyle(s string) Style {
	if strings.EqualFold(strings.TrimSpace(s), "rain") {
		return Rain
	}
	return Vanilla
}
