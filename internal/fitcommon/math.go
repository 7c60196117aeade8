package fitcommon

import (
	"fmt"
	"strconv"
	"strings"
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ParseGains parses a comma-separated list of per-band gains. Fewer values
// than bands leave the remaining bands untouched.
func ParseGains(raw string, dst []float32) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) > len(dst) {
		return fmt.Errorf("too many gains: %d (have %d bands)", len(parts), len(dst))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("gain %d: %q is not a number", i, p)
		}
		dst[i] = float32(Clamp(v, 0, 1))
	}
	return nil
}
