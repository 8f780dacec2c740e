package ta

import (
	"time"

	"github.com/samber/lo"

	"github.com/raykavin/taframe/pkg/core"
)

// Category tags every indicator output with its technical-analysis family
type Category string

const (
	CategoryMomentum    Category = "momentum"
	CategoryOverlap     Category = "overlap"
	CategoryPerformance Category = "performance"
	CategoryStatistics  Category = "statistics"
	CategoryTrend       Category = "trend"
	CategoryVolatility  Category = "volatility"
	CategoryVolume      Category = "volume"
)

// Line is one named output series of an indicator
type Line struct {
	Name string
	Data core.Series[float64]
}

// Result is the tagged output of an indicator call. Single-output
// indicators carry one line; bundles (Bollinger, MACD, ADX, ...) carry up to
// four related lines in a stable order, sharing one category and one
// aggregate name.
type Result struct {
	Name     string
	Category Category
	Alias    string
	Elapsed  time.Duration
	Lines    []Line
}

// Series returns the primary output line
func (r *Result) Series() core.Series[float64] {
	if len(r.Lines) == 0 {
		return nil
	}
	return r.Lines[0].Data
}

// Line returns the output series stored under name
func (r *Result) Line(name string) (core.Series[float64], bool) {
	for _, ln := range r.Lines {
		if ln.Name == name {
			return ln.Data, true
		}
	}
	return nil, false
}

// Names lists the output names in bundle order
func (r *Result) Names() []string {
	return lo.Map(r.Lines, func(ln Line, _ int) string { return ln.Name })
}

// finish is the shared post-processing tail of every indicator: offset
// shift, gap fill (fill value wins over fill method), name/category tagging
// and the optional append into the source frame.
func (a *Analysis) finish(cfg *config, name string, category Category, lines ...Line) (*Result, error) {
	for i := range lines {
		s := lines[i].Data
		if cfg.offset != 0 {
			s = shiftBy(s, cfg.offset)
		}
		switch {
		case cfg.fillValue != nil:
			s = fillMissing(s, *cfg.fillValue)
		case cfg.fillMethod == FillForward:
			s = fillForward(s)
		case cfg.fillMethod == FillBackward:
			s = fillBackward(s)
		}
		lines[i].Data = s
	}

	res := &Result{
		Name:     name,
		Category: category,
		Alias:    cfg.alias,
		Lines:    lines,
	}
	if a.timed {
		res.Elapsed = time.Since(cfg.start)
	}

	if cfg.appendResult && a.frame != nil {
		for _, ln := range res.Lines {
			a.frame.SetColumn(ln.Name, ln.Data)
		}
	}

	if a.log != nil {
		a.log.WithFields(map[string]any{
			"indicator": name,
			"category":  string(category),
			"elapsed":   time.Since(cfg.start).String(),
		}).Debug("indicator computed")
	}

	return res, nil
}
