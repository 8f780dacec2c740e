package ta

import (
	"fmt"

	"github.com/raykavin/taframe/pkg/core"
)

// trueRange is the bar range extended across the gap to the prior close.
// The first drift positions have no prior close, so the plain high-low
// range is emitted there.
func trueRange(high, low, close series, drift int) series {
	prevClose := shiftBy(close, drift)
	return rowMax(
		sub(high, low),
		absSeries(sub(high, prevClose)),
		absSeries(sub(low, prevClose)),
	)
}

// AccBands are Acceleration Bands, price bands widened by the scaled
// high-low ratio and smoothed with a moving average. Defaults: length 10,
// scalar 4, simple averaging.
func (a *Analysis) AccBands(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)
	c := posFloat(cfg.scalar, 4)
	mp := minPer(cfg.minPeriods, length)

	hlRatio := mulScalar(div(sub(high, low), add(high, low)), c)
	lower := movingAverage(cfg.mamode, mul(low, sub(core.Repeat(1, len(low)), hlRatio)), length, mp)
	mid := movingAverage(cfg.mamode, close, length, mp)
	upper := movingAverage(cfg.mamode, mul(high, add(core.Repeat(1, len(high)), hlRatio)), length, mp)

	suffix := fmt.Sprintf("%d", length)
	return a.finish(cfg, "ACCBANDS_"+suffix, CategoryVolatility,
		Line{Name: "ACCBL_" + suffix, Data: lower},
		Line{Name: "ACCBM_" + suffix, Data: mid},
		Line{Name: "ACCBU_" + suffix, Data: upper},
	)
}

// ATR is the Average True Range. Defaults: length 14, Wilder smoothing.
func (a *Analysis) ATR(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	drift := posInt(cfg.drift, 1)
	mode := cfg.mamode
	if mode == "" {
		mode = MAWilder
	}

	atr := movingAverage(mode, trueRange(high, low, close, drift), length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("ATR_%d", length)
	return a.finish(cfg, name, CategoryVolatility, Line{Name: name, Data: atr})
}

// BBands are Bollinger Bands around a moving average of the close.
// Defaults: length 20, scalar 2, simple averaging.
func (a *Analysis) BBands(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 20)
	scalar := posFloat(cfg.scalar, 2)
	mp := minPer(cfg.minPeriods, length)

	mid := movingAverage(cfg.mamode, close, length, mp)
	band := mulScalar(rollingStd(close, length, mp), scalar)
	lower := sub(mid, band)
	upper := add(mid, band)

	suffix := fmt.Sprintf("%d", length)
	return a.finish(cfg, "BBANDS_"+suffix, CategoryVolatility,
		Line{Name: "BBL_" + suffix, Data: lower},
		Line{Name: "BBM_" + suffix, Data: mid},
		Line{Name: "BBU_" + suffix, Data: upper},
	)
}

// Donchian are Donchian Channels over the rolling extremes of the close.
// Default length 20.
func (a *Analysis) Donchian(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 20)
	mp := minPer(cfg.minPeriods, length)

	lower := rollingMin(close, length, mp)
	upper := rollingMax(close, length, mp)
	mid := mulScalar(add(lower, upper), 0.5)

	suffix := fmt.Sprintf("%d", length)
	return a.finish(cfg, "DC_"+suffix, CategoryVolatility,
		Line{Name: "DCL_" + suffix, Data: lower},
		Line{Name: "DCM_" + suffix, Data: mid},
		Line{Name: "DCU_" + suffix, Data: upper},
	)
}

// KC are Keltner Channels. The default flavor centers an EMA of the close
// between ATR bands; simple mode uses the typical-price SMA with the mean
// high-low range. Defaults: length 20, scalar 2.
func (a *Analysis) KC(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 20)
	scalar := posFloat(cfg.scalar, 2)
	drift := posInt(cfg.drift, 1)
	mp := minPer(cfg.minPeriods, length)

	var basis, band series
	if cfg.mamode == MASimple {
		tp := mulScalar(add(add(high, low), close), 1.0/3.0)
		basis = rollingMean(tp, length, mp)
		band = rollingMean(sub(high, low), length, mp)
	} else {
		basis = ema(close, length)
		band = rma(trueRange(high, low, close, drift), length)
	}

	lower := sub(basis, mulScalar(band, scalar))
	upper := add(basis, mulScalar(band, scalar))

	suffix := fmt.Sprintf("%d", length)
	return a.finish(cfg, "KC_"+suffix, CategoryVolatility,
		Line{Name: "KCL_" + suffix, Data: lower},
		Line{Name: "KCB_" + suffix, Data: basis},
		Line{Name: "KCU_" + suffix, Data: upper},
	)
}

// MassIndex sums the ratio of a single to a double EMA of the bar range,
// flagging range expansions. Defaults: fast 9, slow 25.
func (a *Analysis) MassIndex(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, err := a.resolve(cfg.high, core.ColumnHigh)
	if err != nil {
		return nil, err
	}
	low, err := a.resolve(cfg.low, core.ColumnLow)
	if err != nil {
		return nil, err
	}
	fast, slow := orderPair(posInt(cfg.fast, 9), posInt(cfg.slow, 25))

	hlRange := sub(high, low)
	e1 := ema(hlRange, fast)
	ratio := div(e1, ema(e1, fast))
	massi := rollingSum(ratio, slow, minPer(cfg.minPeriods, slow))

	name := fmt.Sprintf("MASSI_%d_%d", fast, slow)
	return a.finish(cfg, name, CategoryVolatility, Line{Name: name, Data: massi})
}

// NATR is the Normalized Average True Range, the ATR as a percentage of
// the close. Default length 14.
func (a *Analysis) NATR(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	drift := posInt(cfg.drift, 1)
	mode := cfg.mamode
	if mode == "" {
		mode = MAWilder
	}

	atr := movingAverage(mode, trueRange(high, low, close, drift), length, minPer(cfg.minPeriods, length))
	natr := mul(scalarDiv(100, close), atr)

	name := fmt.Sprintf("NATR_%d", length)
	return a.finish(cfg, name, CategoryVolatility, Line{Name: name, Data: natr})
}

// TrueRange is the per-bar true range. Default drift 1.
func (a *Analysis) TrueRange(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	drift := posInt(cfg.drift, 1)

	tr := trueRange(high, low, close, drift)

	name := fmt.Sprintf("TRUERANGE_%d", drift)
	return a.finish(cfg, name, CategoryVolatility, Line{Name: name, Data: tr})
}
