package ta

import (
	"fmt"

	"github.com/raykavin/taframe/pkg/core"
)

// ADX is the Average Directional Index bundle with the positive and
// negative directional movement lines. Default length 14.
func (a *Analysis) ADX(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	drift := posInt(cfg.drift, 1)

	atr := rma(trueRange(high, low, close, drift), length)

	up := diff(high, drift)
	dn := mulScalar(diff(low, drift), -1)
	pos := make(series, len(up))
	neg := make(series, len(dn))
	for i := range up {
		if core.IsMissing(up[i]) || core.IsMissing(dn[i]) {
			pos[i] = core.Missing()
			neg[i] = core.Missing()
			continue
		}
		if up[i] > dn[i] && up[i] > 0 {
			pos[i] = up[i]
		}
		if dn[i] > up[i] && dn[i] > 0 {
			neg[i] = dn[i]
		}
	}

	dmp := div(mulScalar(rma(pos, length), 100), atr)
	dmn := div(mulScalar(rma(neg, length), 100), atr)
	dx := div(mulScalar(absSeries(sub(dmp, dmn)), 100), add(dmp, dmn))
	adx := rma(dx, length)

	suffix := fmt.Sprintf("%d", length)
	return a.finish(cfg, "ADX_"+suffix, CategoryTrend,
		Line{Name: "ADX_" + suffix, Data: adx},
		Line{Name: "DMP_" + suffix, Data: dmp},
		Line{Name: "DMN_" + suffix, Data: dmn},
	)
}

// Aroon measures how recently the rolling extreme of the close occurred,
// mapped onto [0, 100]. Default length 14.
func (a *Analysis) Aroon(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	mp := minPer(cfg.minPeriods, length)

	scale := 100.0 / float64(length)
	up := rollingApply(close, length, mp, func(window []float64) float64 {
		return scale * (argMax(window) + 1)
	})
	down := rollingApply(close, length, mp, func(window []float64) float64 {
		return scale * (argMin(window) + 1)
	})

	suffix := fmt.Sprintf("%d", length)
	return a.finish(cfg, "AROON_"+suffix, CategoryTrend,
		Line{Name: "AROONU_" + suffix, Data: up},
		Line{Name: "AROOND_" + suffix, Data: down},
	)
}

// Decreasing flags bars whose close fell over the last `length` bars with 1,
// everything else with 0. Default length 1.
func (a *Analysis) Decreasing(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)

	d := diff(close, length)
	dec := make(series, len(d))
	for i, v := range d {
		if !core.IsMissing(v) && v < 0 {
			dec[i] = 1
		}
	}

	name := fmt.Sprintf("DEC_%d", length)
	return a.finish(cfg, name, CategoryTrend, Line{Name: name, Data: dec})
}

// DPO is the Detrend Price Oscillator, the shifted close minus its simple
// moving average. Centered by default; WithUncentered leaves it aligned
// with the source. Default length 1.
func (a *Analysis) DPO(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)
	drift := length/2 + 1

	dpo := sub(shiftBy(close, drift), rollingMean(close, length, minPer(cfg.minPeriods, length)))
	if !cfg.uncentered {
		dpo = shiftBy(dpo, -drift)
	}

	name := fmt.Sprintf("DPO_%d", length)
	return a.finish(cfg, name, CategoryTrend, Line{Name: name, Data: dpo})
}

// Increasing flags bars whose close rose over the last `length` bars with 1,
// everything else with 0. Default length 1.
func (a *Analysis) Increasing(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)

	d := diff(close, length)
	inc := make(series, len(d))
	for i, v := range d {
		if !core.IsMissing(v) && v > 0 {
			inc[i] = 1
		}
	}

	name := fmt.Sprintf("INC_%d", length)
	return a.finish(cfg, name, CategoryTrend, Line{Name: name, Data: inc})
}

// QStick is the moving average of the close-open spread, a candle body
// trend gauge. Defaults: length 10, simple averaging.
func (a *Analysis) QStick(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	open, err := a.resolve(cfg.open, core.ColumnOpen)
	if err != nil {
		return nil, err
	}
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 10)

	qs := movingAverage(cfg.mamode, sub(close, open), length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("QS_%d", length)
	return a.finish(cfg, name, CategoryTrend, Line{Name: name, Data: qs})
}

// Vortex is the pair of vortex movement lines, each a rolling sum of
// directional range crossings over the true-range sum. Default length 14.
func (a *Analysis) Vortex(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	drift := posInt(cfg.drift, 1)
	mp := minPer(cfg.minPeriods, length)

	trSum := rollingSum(trueRange(high, low, close, drift), length, mp)
	vmPlus := absSeries(sub(high, shiftBy(low, drift)))
	vmMinus := absSeries(sub(low, shiftBy(high, drift)))

	vip := div(rollingSum(vmPlus, length, mp), trSum)
	vim := div(rollingSum(vmMinus, length, mp), trSum)

	suffix := fmt.Sprintf("%d", length)
	return a.finish(cfg, "VTX_"+suffix, CategoryTrend,
		Line{Name: "VTXP_" + suffix, Data: vip},
		Line{Name: "VTXM_" + suffix, Data: vim},
	)
}
