package ta

import (
	"github.com/raykavin/taframe/pkg/core"
)

// MAMode selects the moving-average flavor used by indicators that accept a
// moving-average mode flag
type MAMode string

const (
	MASimple      MAMode = "sma"
	MAExponential MAMode = "ema"
	MAWilder      MAMode = "rma"
	MAWeighted    MAMode = "wma"
)

// ewm computes a recursively weighted mean with the given smoothing factor.
// The recursion is seeded with the arithmetic mean of the first `length`
// valid observations, so the first emitted value sits at the position of the
// length-th valid sample. Missing inputs stay missing in the output and do
// not advance the smoothing state.
func ewm(x series, alpha float64, length int) series {
	out := make(series, len(x))
	seen := 0
	var seedSum, state float64
	for i, v := range x {
		if core.IsMissing(v) {
			out[i] = core.Missing()
			continue
		}
		seen++
		switch {
		case seen < length:
			seedSum += v
			out[i] = core.Missing()
		case seen == length:
			seedSum += v
			state = seedSum / float64(length)
			out[i] = state
		default:
			state = alpha*v + (1-alpha)*state
			out[i] = state
		}
	}
	return out
}

// ema is the span-parameterized exponential moving average, alpha = 2/(S+1)
func ema(x series, length int) series {
	if length < 1 {
		length = 1
	}
	return ewm(x, 2/(float64(length)+1), length)
}

// rma is Wilder's smoothing, alpha = 1/length, used by RSI/ADX-style
// indicators
func rma(x series, length int) series {
	if length < 1 {
		length = 1
	}
	return ewm(x, 1/float64(length), length)
}

// wma is the linearly weighted moving average over full windows. A window
// touching a missing value yields missing.
func wma(x series, length int) series {
	if length < 1 {
		length = 1
	}
	norm := float64(length*(length+1)) / 2

	out := make(series, len(x))
	for t := range x {
		if t < length-1 {
			out[t] = core.Missing()
			continue
		}
		var dot float64
		missing := false
		for i := 0; i < length; i++ {
			v := x[t-length+1+i]
			if core.IsMissing(v) {
				missing = true
				break
			}
			dot += v * float64(i+1)
		}
		if missing {
			out[t] = core.Missing()
			continue
		}
		out[t] = dot / norm
	}
	return out
}

// movingAverage dispatches on the moving-average mode flag. minPeriods is
// consumed by the rolling simple mean only; the recursive modes seed over a
// full window regardless.
func movingAverage(mode MAMode, x series, length, minPeriods int) series {
	switch mode {
	case MAExponential:
		return ema(x, length)
	case MAWilder:
		return rma(x, length)
	case MAWeighted:
		return wma(x, length)
	default:
		return rollingMean(x, length, minPeriods)
	}
}
