package ta

import (
	"fmt"

	"github.com/raykavin/taframe/pkg/core"
)

// AO is the Awesome Oscillator, the spread between a fast and a slow simple
// moving average of the median price. Defaults: fast 5, slow 34.
func (a *Analysis) AO(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, err := a.resolve(cfg.high, core.ColumnHigh)
	if err != nil {
		return nil, err
	}
	low, err := a.resolve(cfg.low, core.ColumnLow)
	if err != nil {
		return nil, err
	}
	fast, slow := orderPair(posInt(cfg.fast, 5), posInt(cfg.slow, 34))

	hl2 := mulScalar(add(high, low), 0.5)
	ao := sub(
		rollingMean(hl2, fast, minPer(cfg.minPeriods, fast)),
		rollingMean(hl2, slow, minPer(cfg.minPeriods, slow)),
	)

	name := fmt.Sprintf("AO_%d_%d", fast, slow)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: ao})
}

// APO is the Absolute Price Oscillator, the fast moving average minus the
// slow one. Defaults: fast 12, slow 26, simple averaging.
func (a *Analysis) APO(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	fast, slow := orderPair(posInt(cfg.fast, 12), posInt(cfg.slow, 26))

	apo := sub(
		movingAverage(cfg.mamode, close, fast, minPer(cfg.minPeriods, fast)),
		movingAverage(cfg.mamode, close, slow, minPer(cfg.minPeriods, slow)),
	)

	name := fmt.Sprintf("APO_%d_%d", fast, slow)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: apo})
}

// BOP is Balance of Power, (close - open) / (high - low) per bar
func (a *Analysis) BOP(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	open, err := a.resolve(cfg.open, core.ColumnOpen)
	if err != nil {
		return nil, err
	}
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}

	bop := div(sub(close, open), sub(high, low))
	if cfg.percent {
		bop = mulScalar(bop, 100)
	}

	return a.finish(cfg, "BOP", CategoryMomentum, Line{Name: "BOP", Data: bop})
}

// CCI is the Commodity Channel Index over the typical price. Defaults:
// length 20, scalar 0.015.
func (a *Analysis) CCI(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 20)
	scalar := posFloat(cfg.scalar, 0.015)
	mp := minPer(cfg.minPeriods, length)

	tp := mulScalar(add(add(high, low), close), 1.0/3.0)
	mean := rollingMean(tp, length, mp)
	mad := rollingMAD(tp, length, mp)
	cci := div(sub(tp, mean), mulScalar(mad, scalar))

	name := fmt.Sprintf("CCI_%d_%g", length, scalar)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: cci})
}

// CMO is the Chande Momentum Oscillator, 100 * (gains - losses) /
// (gains + losses) over rolling sums of the drift differences. Default
// length 14.
func (a *Analysis) CMO(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	drift := posInt(cfg.drift, 1)
	mp := minPer(cfg.minPeriods, length)

	m := diff(close, drift)
	su := rollingSum(clipPositive(m), length, mp)
	sd := rollingSum(clipNegativeAbs(m), length, mp)
	cmo := div(mulScalar(sub(su, sd), 100), add(su, sd))

	name := fmt.Sprintf("CMO_%d", length)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: cmo})
}

// KST is Know Sure Thing, a weighted sum of four smoothed rates of change
// plus a signal line. Defaults: ROC periods 10/15/20/30, smoothing periods
// 10/10/10/15, signal 9.
func (a *Analysis) KST(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	rocs := quadOr(cfg.rocPeriods, [4]int{10, 15, 20, 30})
	smas := quadOr(cfg.smaPeriods, [4]int{10, 10, 10, 15})
	signal := posInt(cfg.signal, 9)

	kst := make(series, len(close))
	for i, r := range rocs {
		roc := mulScalar(pctChange(close, r), 100)
		smoothed := rollingMean(roc, smas[i], minPer(cfg.minPeriods, smas[i]))
		kst = add(kst, mulScalar(smoothed, float64(i+1)))
	}
	kstSignal := rollingMean(kst, signal, minPer(cfg.minPeriods, signal))

	name := fmt.Sprintf("KST_%d_%d_%d_%d_%d_%d_%d_%d",
		rocs[0], rocs[1], rocs[2], rocs[3], smas[0], smas[1], smas[2], smas[3])
	signalName := fmt.Sprintf("KSTS_%d", signal)
	return a.finish(cfg, name, CategoryMomentum,
		Line{Name: name, Data: kst},
		Line{Name: signalName, Data: kstSignal},
	)
}

// MACD is Moving Average Convergence Divergence with its signal line and
// histogram. Defaults: fast 12, slow 26, signal 9.
func (a *Analysis) MACD(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	fast, slow := orderPair(posInt(cfg.fast, 12), posInt(cfg.slow, 26))
	signal := posInt(cfg.signal, 9)

	macd := sub(ema(close, fast), ema(close, slow))
	signalLine := ema(macd, signal)
	histogram := sub(macd, signalLine)

	suffix := fmt.Sprintf("%d_%d_%d", fast, slow, signal)
	return a.finish(cfg, "MACD_"+suffix, CategoryMomentum,
		Line{Name: "MACD_" + suffix, Data: macd},
		Line{Name: "MACDH_" + suffix, Data: histogram},
		Line{Name: "MACDS_" + suffix, Data: signalLine},
	)
}

// MOM is raw momentum, the difference against the close `length` bars ago.
// Default length 1.
func (a *Analysis) MOM(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)

	name := fmt.Sprintf("MOM_%d", length)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: diff(close, length)})
}

// PPO is the Percentage Price Oscillator, 100 * (fast MA - slow MA) /
// slow MA. Defaults: fast 12, slow 26, simple averaging.
func (a *Analysis) PPO(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	fast, slow := orderPair(posInt(cfg.fast, 12), posInt(cfg.slow, 26))

	fastMA := movingAverage(cfg.mamode, close, fast, minPer(cfg.minPeriods, fast))
	slowMA := movingAverage(cfg.mamode, close, slow, minPer(cfg.minPeriods, slow))
	ppo := div(mulScalar(sub(fastMA, slowMA), 100), slowMA)

	name := fmt.Sprintf("PPO_%d_%d", fast, slow)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: ppo})
}

// ROC is the Rate of Change, 100 times the relative change against the close
// `length` bars ago. Default length 1.
func (a *Analysis) ROC(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)

	roc := mulScalar(pctChange(close, length), 100)

	name := fmt.Sprintf("ROC_%d", length)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: roc})
}

// RSI is the Relative Strength Index over Wilder-smoothed gains and losses.
// Default length 14.
func (a *Analysis) RSI(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	drift := posInt(cfg.drift, 1)

	m := diff(close, drift)
	gain := rma(clipPositive(m), length)
	loss := rma(clipNegativeAbs(m), length)
	rsi := div(mulScalar(gain, 100), add(gain, loss))

	name := fmt.Sprintf("RSI_%d", length)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: rsi})
}

// Stoch is the Stochastic oscillator: raw %K over the rolling high/low range,
// smoothed into the slow %K and %D lines. Defaults: length 14, smooth 3,
// signal 3.
func (a *Analysis) Stoch(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	smooth := posInt(cfg.smooth, 3)
	signal := posInt(cfg.signal, 3)

	lowest := rollingMin(low, length, minPer(cfg.minPeriods, length))
	highest := rollingMax(high, length, minPer(cfg.minPeriods, length))
	fastK := div(mulScalar(sub(close, lowest), 100), sub(highest, lowest))
	k := rollingMean(fastK, smooth, minPer(cfg.minPeriods, smooth))
	d := rollingMean(k, signal, minPer(cfg.minPeriods, signal))

	suffix := fmt.Sprintf("%d_%d_%d", length, smooth, signal)
	return a.finish(cfg, "STOCH_"+suffix, CategoryMomentum,
		Line{Name: "STOCHK_" + suffix, Data: k},
		Line{Name: "STOCHD_" + suffix, Data: d},
	)
}

// TRIX is the one-bar rate of change of a triple exponential moving average,
// scaled by 100. Default length 30.
func (a *Analysis) TRIX(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)
	drift := posInt(cfg.drift, 1)

	e3 := ema(ema(ema(close, length), length), length)
	trix := mulScalar(pctChange(e3, drift), 100)

	name := fmt.Sprintf("TRIX_%d", length)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: trix})
}

// TSI is the True Strength Index, the double-smoothed momentum over the
// double-smoothed absolute momentum. Defaults: fast 13, slow 25.
func (a *Analysis) TSI(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	fast, slow := orderPair(posInt(cfg.fast, 13), posInt(cfg.slow, 25))
	drift := posInt(cfg.drift, 1)

	m := diff(close, drift)
	num := ema(ema(m, slow), fast)
	den := ema(ema(absSeries(m), slow), fast)
	tsi := div(mulScalar(num, 100), den)

	name := fmt.Sprintf("TSI_%d_%d", fast, slow)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: tsi})
}

// UO is the Ultimate Oscillator, a 4:2:1 weighted blend of buying-pressure
// ratios over three horizons. Defaults: fast 7, medium 14, slow 28.
func (a *Analysis) UO(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	fast := posInt(cfg.fast, 7)
	medium := posInt(cfg.medium, 14)
	slow := posInt(cfg.slow, 28)
	drift := posInt(cfg.drift, 1)

	prevClose := shiftBy(close, drift)
	trueLow := minOf2(low, prevClose)
	trueHigh := maxOf2(high, prevClose)
	bp := sub(close, trueLow)
	tr := sub(trueHigh, trueLow)

	avg := func(length int) series {
		mp := minPer(cfg.minPeriods, length)
		return div(rollingSum(bp, length, mp), rollingSum(tr, length, mp))
	}
	uo := mulScalar(
		add(add(mulScalar(avg(fast), 4), mulScalar(avg(medium), 2)), avg(slow)),
		100.0/7.0,
	)

	name := fmt.Sprintf("UO_%d_%d_%d", fast, medium, slow)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: uo})
}

// WILLR is Williams %R, the close position inside the rolling high/low
// range mapped onto [-100, 0]. Default length 14.
func (a *Analysis) WILLR(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	mp := minPer(cfg.minPeriods, length)

	lowest := rollingMin(low, length, mp)
	highest := rollingMax(high, length, mp)
	pct := div(sub(close, lowest), sub(highest, lowest))
	willr := make(series, len(pct))
	for i, v := range pct {
		willr[i] = 100 * (v - 1)
	}

	name := fmt.Sprintf("WILLR_%d", length)
	return a.finish(cfg, name, CategoryMomentum, Line{Name: name, Data: willr})
}
