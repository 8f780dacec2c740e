package ta

import (
	"fmt"
	"math"

	"github.com/raykavin/taframe/pkg/core"
)

// DEMA is the Double Exponential Moving Average, 2*EMA - EMA(EMA).
// Default length 10.
func (a *Analysis) DEMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)

	e1 := ema(close, length)
	dema := sub(mulScalar(e1, 2), ema(e1, length))

	name := fmt.Sprintf("DEMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: dema})
}

// EMA is the exponential moving average seeded with the simple mean of the
// first window. Default length 10.
func (a *Analysis) EMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)

	name := fmt.Sprintf("EMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: ema(close, length)})
}

// HL2 is the median price, (high + low) / 2
func (a *Analysis) HL2(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, err := a.resolve(cfg.high, core.ColumnHigh)
	if err != nil {
		return nil, err
	}
	low, err := a.resolve(cfg.low, core.ColumnLow)
	if err != nil {
		return nil, err
	}

	hl2 := mulScalar(add(high, low), 0.5)
	return a.finish(cfg, "HL2", CategoryOverlap, Line{Name: "HL2", Data: hl2})
}

// HLC3 is the typical price, (high + low + close) / 3
func (a *Analysis) HLC3(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}

	hlc3 := mulScalar(add(add(high, low), close), 1.0/3.0)
	return a.finish(cfg, "HLC3", CategoryOverlap, Line{Name: "HLC3", Data: hlc3})
}

// HMA is the Hull Moving Average, a weighted average of weighted averages
// tuned for low lag. Default length 16.
func (a *Analysis) HMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 16)

	half := wma(close, length/2)
	full := wma(close, length)
	hma := wma(sub(mulScalar(half, 2), full), int(math.Sqrt(float64(length))))

	name := fmt.Sprintf("HMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: hma})
}

// Midpoint is the mean of the rolling extremes of the close. Default
// length 1.
func (a *Analysis) Midpoint(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)
	mp := minPer(cfg.minPeriods, length)

	mid := mulScalar(add(rollingMin(close, length, mp), rollingMax(close, length, mp)), 0.5)

	name := fmt.Sprintf("MIDPOINT_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: mid})
}

// Midprice is the mean of the rolling low minimum and high maximum.
// Default length 1.
func (a *Analysis) Midprice(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, err := a.resolve(cfg.high, core.ColumnHigh)
	if err != nil {
		return nil, err
	}
	low, err := a.resolve(cfg.low, core.ColumnLow)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)
	mp := minPer(cfg.minPeriods, length)

	mid := mulScalar(add(rollingMin(low, length, mp), rollingMax(high, length, mp)), 0.5)

	name := fmt.Sprintf("MIDPRICE_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: mid})
}

// OHLC4 is the mean of the four bar prices
func (a *Analysis) OHLC4(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	open, err := a.resolve(cfg.open, core.ColumnOpen)
	if err != nil {
		return nil, err
	}
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}

	ohlc4 := mulScalar(add(add(open, high), add(low, close)), 0.25)
	return a.finish(cfg, "OHLC4", CategoryOverlap, Line{Name: "OHLC4", Data: ohlc4})
}

// RPN is the Range Percentage, a fraction of the absolute spread between
// the rolling high maximum and low minimum. WithAddLow rebases the result
// onto the low so it reads as a price level. Defaults: length 1,
// percentage 0.1.
func (a *Analysis) RPN(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, err := a.resolve(cfg.high, core.ColumnHigh)
	if err != nil {
		return nil, err
	}
	low, err := a.resolve(cfg.low, core.ColumnLow)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)
	percentage := posFloat(cfg.percentage, 0.1)
	mp := minPer(cfg.minPeriods, length)

	highest := rollingMax(high, length, mp)
	lowest := rollingMin(low, length, mp)
	rp := mulScalar(absSeries(sub(highest, lowest)), percentage)
	if cfg.addLow {
		rp = add(rp, low)
	}

	name := fmt.Sprintf("RP_%d_%g", length, percentage)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: rp})
}

// RMA is Wilder's smoothed moving average. Default length 10.
func (a *Analysis) RMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)

	name := fmt.Sprintf("RMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: rma(close, length)})
}

// SMA is the simple moving average. Default length 10.
func (a *Analysis) SMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)

	sma := rollingMean(close, length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("SMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: sma})
}

// TEMA is the Triple Exponential Moving Average, 3*(EMA1 - EMA2) + EMA3.
// Default length 10.
func (a *Analysis) TEMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)

	e1 := ema(close, length)
	e2 := ema(e1, length)
	e3 := ema(e2, length)
	tema := add(mulScalar(sub(e1, e2), 3), e3)

	name := fmt.Sprintf("TEMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: tema})
}

// VWAP is the cumulative volume-weighted average of the typical price
func (a *Analysis) VWAP(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}

	tp := mulScalar(add(add(high, low), close), 1.0/3.0)
	vwap := div(cumSum(mul(tp, volume)), cumSum(volume))

	return a.finish(cfg, "VWAP", CategoryOverlap, Line{Name: "VWAP", Data: vwap})
}

// VWMA is the volume-weighted moving average. Default length 10.
func (a *Analysis) VWMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)
	mp := minPer(cfg.minPeriods, length)

	vwma := div(
		rollingMean(mul(close, volume), length, mp),
		rollingMean(volume, length, mp),
	)

	name := fmt.Sprintf("VWMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: vwma})
}

// WMA is the linearly weighted moving average. Default length 10.
func (a *Analysis) WMA(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)

	name := fmt.Sprintf("WMA_%d", length)
	return a.finish(cfg, name, CategoryOverlap, Line{Name: name, Data: wma(close, length)})
}
