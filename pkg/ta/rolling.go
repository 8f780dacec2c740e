package ta

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/raykavin/taframe/pkg/core"
)

// rollingReduce computes reduce over the valid (non-missing) values of each
// trailing window of `length` positions. Windows holding fewer than
// minPeriods valid observations yield the missing sentinel. minPeriods is
// clamped to [1, length].
func rollingReduce(x series, length, minPeriods int, reduce func(valid []float64) float64) series {
	if length < 1 {
		length = 1
	}
	if minPeriods < 1 {
		minPeriods = 1
	}
	if minPeriods > length {
		minPeriods = length
	}

	out := make(series, len(x))
	valid := make([]float64, 0, length)
	for t := range x {
		lo := t - length + 1
		if lo < 0 {
			lo = 0
		}
		valid = valid[:0]
		for i := lo; i <= t; i++ {
			if !core.IsMissing(x[i]) {
				valid = append(valid, x[i])
			}
		}
		if len(valid) < minPeriods {
			out[t] = core.Missing()
			continue
		}
		out[t] = reduce(valid)
	}
	return out
}

// rollingApply generalizes rollingReduce to reducers that care about window
// positions. fn receives the raw window including missing slots, but is only
// invoked when at least minPeriods valid observations are present.
func rollingApply(x series, length, minPeriods int, fn func(window []float64) float64) series {
	if length < 1 {
		length = 1
	}
	if minPeriods < 1 {
		minPeriods = 1
	}
	if minPeriods > length {
		minPeriods = length
	}

	out := make(series, len(x))
	for t := range x {
		lo := t - length + 1
		if lo < 0 {
			lo = 0
		}
		window := x[lo : t+1]
		count := 0
		for _, v := range window {
			if !core.IsMissing(v) {
				count++
			}
		}
		if count < minPeriods {
			out[t] = core.Missing()
			continue
		}
		out[t] = fn(window)
	}
	return out
}

func rollingMean(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, func(v []float64) float64 {
		return stat.Mean(v, nil)
	})
}

func rollingSum(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, floats.Sum)
}

func rollingMin(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, floats.Min)
}

func rollingMax(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, floats.Max)
}

// rollingStd is the sample standard deviation, undefined for windows of one
func rollingStd(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, func(v []float64) float64 {
		if len(v) < 2 {
			return core.Missing()
		}
		return stat.StdDev(v, nil)
	})
}

func rollingVar(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, func(v []float64) float64 {
		if len(v) < 2 {
			return core.Missing()
		}
		return stat.Variance(v, nil)
	})
}

// rollingSkew needs at least three observations for the bias-corrected
// sample skewness
func rollingSkew(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, func(v []float64) float64 {
		if len(v) < 3 {
			return core.Missing()
		}
		return stat.Skew(v, nil)
	})
}

// rollingKurt needs at least four observations for the bias-corrected
// sample excess kurtosis
func rollingKurt(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, func(v []float64) float64 {
		if len(v) < 4 {
			return core.Missing()
		}
		return stat.ExKurtosis(v, nil)
	})
}

func rollingQuantile(x series, length, minPeriods int, q float64) series {
	return rollingReduce(x, length, minPeriods, func(v []float64) float64 {
		sorted := make([]float64, len(v))
		copy(sorted, v)
		sort.Float64s(sorted)
		return stat.Quantile(q, stat.LinInterp, sorted, nil)
	})
}

func rollingMedian(x series, length, minPeriods int) series {
	return rollingQuantile(x, length, minPeriods, 0.5)
}

// rollingMAD is the mean absolute deviation around the window mean.
// gonum has no direct equivalent, so the deviation loop is inlined.
func rollingMAD(x series, length, minPeriods int) series {
	return rollingReduce(x, length, minPeriods, func(v []float64) float64 {
		mean := stat.Mean(v, nil)
		var dev float64
		for _, val := range v {
			dev += math.Abs(val - mean)
		}
		return dev / float64(len(v))
	})
}

// argMax returns the offset of the greatest valid value within the window,
// preferring the earliest occurrence like the reference implementation
func argMax(window []float64) float64 {
	best := core.Missing()
	idx := -1
	for i, v := range window {
		if core.IsMissing(v) {
			continue
		}
		if idx < 0 || v > best {
			best = v
			idx = i
		}
	}
	return float64(idx)
}

// argMin returns the offset of the smallest valid value within the window
func argMin(window []float64) float64 {
	best := core.Missing()
	idx := -1
	for i, v := range window {
		if core.IsMissing(v) {
			continue
		}
		if idx < 0 || v < best {
			best = v
			idx = i
		}
	}
	return float64(idx)
}
