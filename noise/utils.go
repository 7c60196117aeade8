package noise

import (
	"github.com/cwbudde/algo-approx"
)

// limiterKnee is where the output limiter leaves its linear region.
const limiterKnee = 0.95

// softLimit bounds the summed output inside (-1, 1). Below the knee the
// signal passes untouched; above it the overshoot is squashed through tanh
// so simultaneous band peaks cannot hard-clip.
func softLimit(x float32) float32 {
	switch {
	case x > limiterKnee:
		return limiterKnee + (1-limiterKnee)*fastTanh(x-limiterKnee)
	case x < -limiterKnee:
		return -limiterKnee + (1-limiterKnee)*fastTanh(x+limiterKnee)
	}
	return x
}

// fastTanh evaluates tanh(x) as 1 - 2/(e^{2x}+1) using the fast exponential.
func fastTanh(x float32) float32 {
	return 1 - 2/(approx.FastExp(2*x)+1)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
