package ta

import (
	"fmt"
	"strconv"

	"github.com/raykavin/taframe/pkg/core"
)

// AD is the Accumulation/Distribution line, the cumulative money flow
// volume. When an open source is supplied the close-open spread replaces
// the high/low money flow multiplier and the output is named ADo.
func (a *Analysis) AD(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}

	name := "AD"
	var flow series
	if cfg.open.data != nil || cfg.open.name != "" {
		open, err := a.resolve(cfg.open, core.ColumnOpen)
		if err != nil {
			return nil, err
		}
		flow = sub(close, open)
		name = "ADo"
	} else {
		flow = sub(mulScalar(close, 2), add(high, low))
	}

	ad := cumSum(div(mul(flow, volume), sub(high, low)))
	return a.finish(cfg, name, CategoryVolume, Line{Name: name, Data: ad})
}

// CMF is Chaikin Money Flow, the ratio of money flow volume to total
// volume over the window. Default length 20.
func (a *Analysis) CMF(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 20)
	mp := minPer(cfg.minPeriods, length)

	multiplier := div(sub(mulScalar(close, 2), add(high, low)), sub(high, low))
	cmf := div(
		rollingSum(mul(multiplier, volume), length, mp),
		rollingSum(volume, length, mp),
	)

	name := fmt.Sprintf("CMF_%d", length)
	return a.finish(cfg, name, CategoryVolume, Line{Name: name, Data: cmf})
}

// EFI is Elder's Force Index, the smoothed product of price change and
// volume. Defaults: length 13, exponential smoothing.
func (a *Analysis) EFI(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 13)
	drift := posInt(cfg.drift, 1)
	mode := cfg.mamode
	if mode == "" {
		mode = MAExponential
	}

	efi := movingAverage(mode, mul(diff(close, drift), volume), length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("EFI_%d", length)
	return a.finish(cfg, name, CategoryVolume, Line{Name: name, Data: efi})
}

// EOM is Ease of Movement, the smoothed distance moved per unit of scaled
// volume pressure. Defaults: length 14, divisor 100000000.
func (a *Analysis) EOM(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, _, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	divisor := posFloat(cfg.divisor, 100000000)
	drift := posInt(cfg.drift, 1)

	hl2 := mulScalar(add(high, low), 0.5)
	distance := diff(hl2, drift)
	boxRatio := div(mulScalar(volume, 1/divisor), sub(high, low))
	eom := rollingMean(div(distance, boxRatio), length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("EOM_%d_%s", length, strconv.FormatFloat(divisor, 'f', -1, 64))
	return a.finish(cfg, name, CategoryVolume, Line{Name: name, Data: eom})
}

// MFI is the Money Flow Index, a volume-weighted RSI analogue over the
// typical price. Default length 14.
func (a *Analysis) MFI(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	high, low, close, err := a.resolveOHLC(cfg)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 14)
	drift := posInt(cfg.drift, 1)
	mp := minPer(cfg.minPeriods, length)

	tp := mulScalar(add(add(high, low), close), 1.0/3.0)
	raw := mul(tp, volume)
	d := diff(tp, drift)

	up := make(series, len(raw))
	dn := make(series, len(raw))
	for i := range raw {
		switch {
		case core.IsMissing(d[i]) || core.IsMissing(raw[i]):
			up[i] = core.Missing()
			dn[i] = core.Missing()
		case d[i] > 0:
			up[i] = raw[i]
		case d[i] < 0:
			dn[i] = raw[i]
		}
	}

	posFlow := rollingSum(up, length, mp)
	negFlow := rollingSum(dn, length, mp)
	mfi := div(mulScalar(posFlow, 100), add(posFlow, negFlow))

	name := fmt.Sprintf("MFI_%d", length)
	return a.finish(cfg, name, CategoryVolume, Line{Name: name, Data: mfi})
}

// NVI is the Negative Volume Index, compounding the close return only on
// bars whose volume fell. Starts at 1000. Default length 1.
func (a *Analysis) NVI(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)

	ret := mulScalar(pctChange(close, length), 100)
	nvi := make(series, len(close))
	level := 1000.0
	for i := range close {
		if i > 0 && !core.IsMissing(ret[i]) && volume[i] < volume[i-1] {
			level += ret[i] / 100 * level
		}
		nvi[i] = level
	}

	name := fmt.Sprintf("NVI_%d", length)
	return a.finish(cfg, name, CategoryVolume, Line{Name: name, Data: nvi})
}

// OBV is On-Balance Volume, the running sum of volume signed by the close
// direction
func (a *Analysis) OBV(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	drift := posInt(cfg.drift, 1)

	obv := cumSum(mul(signedSeries(close, 1, drift), volume))
	return a.finish(cfg, "OBV", CategoryVolume, Line{Name: "OBV", Data: obv})
}

// PVol is price times volume, signed by the close direction. WithUnsigned
// reports the raw product instead.
func (a *Analysis) PVol(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	drift := posInt(cfg.drift, 1)

	pvol := mul(close, volume)
	if !cfg.unsigned {
		pvol = mul(signedSeries(close, 1, drift), pvol)
	}

	return a.finish(cfg, "PVOL", CategoryVolume, Line{Name: "PVOL", Data: pvol})
}

// PVT is the Price Volume Trend, the cumulative product of the close
// return and volume
func (a *Analysis) PVT(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	volume, err := a.resolve(cfg.volume, core.ColumnVolume)
	if err != nil {
		return nil, err
	}
	drift := posInt(cfg.drift, 1)

	pvt := cumSum(mul(pctChange(close, drift), volume))
	return a.finish(cfg, "PVT", CategoryVolume, Line{Name: "PVT", Data: pvt})
}
