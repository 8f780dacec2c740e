package ta

import (
	"fmt"

	"github.com/raykavin/taframe/pkg/core"
)

// LogReturn is the log return over `length` bars. With the cumulative
// option the per-bar returns are accumulated and the name gains the CUM_
// prefix. Default length 1.
func (a *Analysis) LogReturn(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)

	ret := diff(logSeries(close), length)
	name := fmt.Sprintf("LOGRET_%d", length)
	if cfg.cumulative {
		ret = cumSum(ret)
		name = "CUM_" + name
	}
	if cfg.percent {
		ret = mulScalar(ret, 100)
	}

	return a.finish(cfg, name, CategoryPerformance, Line{Name: name, Data: ret})
}

// PercentReturn is the relative price change over `length` bars, with the
// same cumulative and percent handling as LogReturn. Default length 1.
func (a *Analysis) PercentReturn(opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	close, err := a.resolve(cfg.close, core.ColumnClose)
	if err != nil {
		return nil, err
	}
	length := posInt(cfg.length, 1)

	ret := pctChange(close, length)
	name := fmt.Sprintf("PCTRET_%d", length)
	if cfg.cumulative {
		ret = cumSum(ret)
		name = "CUM_" + name
	}
	if cfg.percent {
		ret = mulScalar(ret, 100)
	}

	return a.finish(cfg, name, CategoryPerformance, Line{Name: name, Data: ret})
}
