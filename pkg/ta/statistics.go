package ta

import (
	"fmt"

	"github.com/raykavin/taframe/pkg/core"
)

// Kurtosis is the rolling sample excess kurtosis. Default length 30.
func (a *Analysis) Kurtosis(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)

	kurt := rollingKurt(close, length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("KURT_%d", length)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: kurt})
}

// MAD is the rolling mean absolute deviation around the window mean.
// Default length 30.
func (a *Analysis) MAD(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)

	mad := rollingMAD(close, length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("MAD_%d", length)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: mad})
}

// Median is the rolling median. Default length 30.
func (a *Analysis) Median(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)

	med := rollingMedian(close, length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("MEDIAN_%d", length)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: med})
}

// Quantile is the rolling linearly interpolated quantile. Defaults:
// length 30, level 0.5.
func (a *Analysis) Quantile(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)
	q := 0.5
	if cfg.quantile != nil {
		q = *cfg.quantile
		if q < 0 {
			q = 0
		}
		if q > 1 {
			q = 1
		}
	}

	qtl := rollingQuantile(close, length, minPer(cfg.minPeriods, length), q)

	name := fmt.Sprintf("QTL_%d_%g", length, q)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: qtl})
}

// Skew is the rolling sample skewness. Default length 30.
func (a *Analysis) Skew(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)

	skew := rollingSkew(close, length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("SKEW_%d", length)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: skew})
}

// Stdev is the rolling sample standard deviation. Default length 30.
func (a *Analysis) Stdev(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)

	std := rollingStd(close, length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("STDEV_%d", length)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: std})
}

// Variance is the rolling sample variance. Default length 30.
func (a *Analysis) Variance(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)

	variance := rollingVar(close, length, minPer(cfg.minPeriods, length))

	name := fmt.Sprintf("VAR_%d", length)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: variance})
}

// ZScore is the rolling standard score, (x - mean) / stdev. Default
// length 30.
func (a *Analysis) ZScore(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 30)
	mp := minPer(cfg.minPeriods, length)

	zs := div(
		sub(close, rollingMean(close, length, mp)),
		rollingStd(close, length, mp),
	)

	name := fmt.Sprintf("ZS_%d", length)
	return a.finish(cfg, name, CategoryStatistics, Line{Name: name, Data: zs})
}
