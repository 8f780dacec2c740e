package ta

import (
	"math"

	"github.com/raykavin/taframe/pkg/core"
)

// series is the float time series all primitives operate on
type series = core.Series[float64]

// Elementwise primitives. Missing values are contagious: any operation
// touching the sentinel yields the sentinel, matching IEEE-754 NaN
// propagation. All binary helpers require equal-length inputs, which the
// resolver guarantees for frame-bound series.

func diff(x series, k int) series {
	out := make(series, len(x))
	for i := range out {
		if i < k {
			out[i] = core.Missing()
			continue
		}
		out[i] = x[i] - x[i-k]
	}
	return out
}

// shiftBy moves values forward by k positions (backward for negative k),
// introducing missing values at the vacated edge
func shiftBy(x series, k int) series {
	if k == 0 {
		return x.Clone()
	}
	out := make(series, len(x))
	for i := range out {
		j := i - k
		if j < 0 || j >= len(x) {
			out[i] = core.Missing()
			continue
		}
		out[i] = x[j]
	}
	return out
}

func pctChange(x series, k int) series {
	out := make(series, len(x))
	for i := range out {
		if i < k {
			out[i] = core.Missing()
			continue
		}
		out[i] = x[i]/x[i-k] - 1
	}
	return out
}

// cumSum accumulates skipping missing values; missing positions stay missing
func cumSum(x series) series {
	out := make(series, len(x))
	var sum float64
	for i, v := range x {
		if core.IsMissing(v) {
			out[i] = core.Missing()
			continue
		}
		sum += v
		out[i] = sum
	}
	return out
}

func add(a, b series) series {
	out := make(series, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

func sub(a, b series) series {
	out := make(series, len(a))
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

func mul(a, b series) series {
	out := make(series, len(a))
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out
}

func div(a, b series) series {
	out := make(series, len(a))
	for i := range out {
		out[i] = a[i] / b[i]
	}
	return out
}

func mulScalar(x series, c float64) series {
	out := make(series, len(x))
	for i := range out {
		out[i] = x[i] * c
	}
	return out
}

func scalarDiv(c float64, x series) series {
	out := make(series, len(x))
	for i := range out {
		out[i] = c / x[i]
	}
	return out
}

func absSeries(x series) series {
	out := make(series, len(x))
	for i := range out {
		out[i] = math.Abs(x[i])
	}
	return out
}

func logSeries(x series) series {
	out := make(series, len(x))
	for i := range out {
		out[i] = math.Log(x[i])
	}
	return out
}

func minOf2(a, b series) series {
	out := make(series, len(a))
	for i := range out {
		out[i] = math.Min(a[i], b[i])
	}
	return out
}

func maxOf2(a, b series) series {
	out := make(series, len(a))
	for i := range out {
		out[i] = math.Max(a[i], b[i])
	}
	return out
}

// rowMax takes the positionwise maximum across rows, skipping missing
// entries the way a tabular row-wise max does. Only when every row is
// missing at a position does the output stay missing.
func rowMax(rows ...series) series {
	out := make(series, len(rows[0]))
	for i := range out {
		best := core.Missing()
		for _, r := range rows {
			v := r[i]
			if core.IsMissing(v) {
				continue
			}
			if core.IsMissing(best) || v > best {
				best = v
			}
		}
		out[i] = best
	}
	return out
}

// clipPositive keeps strictly positive values, zeroes the rest and leaves
// missing entries untouched
func clipPositive(x series) series {
	out := make(series, len(x))
	for i, v := range x {
		switch {
		case core.IsMissing(v):
			out[i] = v
		case v > 0:
			out[i] = v
		default:
			out[i] = 0
		}
	}
	return out
}

// clipNegativeAbs keeps the magnitude of strictly negative values
func clipNegativeAbs(x series) series {
	out := make(series, len(x))
	for i, v := range x {
		switch {
		case core.IsMissing(v):
			out[i] = v
		case v < 0:
			out[i] = -v
		default:
			out[i] = 0
		}
	}
	return out
}

// signedSeries returns the sign of the k-lag difference of x, with an
// optional override for the first position
func signedSeries(x series, initial float64, k int) series {
	out := make(series, len(x))
	d := diff(x, k)
	for i, v := range d {
		switch {
		case core.IsMissing(v):
			out[i] = core.Missing()
		case v > 0:
			out[i] = 1
		case v < 0:
			out[i] = -1
		default:
			out[i] = 0
		}
	}
	if len(out) > 0 && !core.IsMissing(initial) {
		out[0] = initial
	}
	return out
}

func fillMissing(x series, v float64) series {
	out := make(series, len(x))
	for i, val := range x {
		if core.IsMissing(val) {
			out[i] = v
			continue
		}
		out[i] = val
	}
	return out
}

func fillForward(x series) series {
	out := make(series, len(x))
	last := core.Missing()
	for i, v := range x {
		if core.IsMissing(v) {
			out[i] = last
			continue
		}
		last = v
		out[i] = v
	}
	return out
}

func fillBackward(x series) series {
	out := make(series, len(x))
	next := core.Missing()
	for i := len(x) - 1; i >= 0; i-- {
		if core.IsMissing(x[i]) {
			out[i] = next
			continue
		}
		next = x[i]
		out[i] = x[i]
	}
	return out
}
