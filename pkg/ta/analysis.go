// Package ta computes technical-analysis indicators over OHLCV bar frames.
//
// An Analysis wraps a core.Frame and exposes one method per indicator plus a
// string-dispatched Invoke for the registry. Every call follows the same
// pipeline: resolve input columns, normalize parameters to positive
// defaults, run the windowed math, then offset, fill, tag and optionally
// append the named outputs back into the frame.
package ta

import (
	"strings"

	"github.com/raykavin/taframe/pkg/core"
	"github.com/raykavin/taframe/pkg/logger"
)

// Analysis binds the indicator set to one bar frame. Calls are pure apart
// from the explicit append option; an Analysis performs no synchronization,
// so callers computing indicators concurrently over one frame must serialize
// appends themselves.
type Analysis struct {
	frame *core.Frame
	log   logger.Logger
	timed bool
}

// AnalysisOption configures the facade at construction time
type AnalysisOption func(*Analysis)

// WithLogger attaches a logger; indicator calls emit debug lines with the
// indicator kind and elapsed time
func WithLogger(log logger.Logger) AnalysisOption {
	return func(a *Analysis) { a.log = log }
}

// WithTiming records the elapsed wall-clock duration of each call on its
// result
func WithTiming() AnalysisOption {
	return func(a *Analysis) { a.timed = true }
}

// New creates an indicator facade over the given frame
func New(frame *core.Frame, opts ...AnalysisOption) *Analysis {
	a := &Analysis{frame: frame}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Frame returns the bound bar frame
func (a *Analysis) Frame() *core.Frame {
	return a.frame
}

// Invoke dispatches a lower-cased indicator kind (or a documented alias)
// to the matching indicator function, forwarding all options verbatim
func (a *Analysis) Invoke(kind string, opts ...Option) (*Result, error) {
	k := strings.ToLower(strings.TrimSpace(kind))
	if canonical, ok := aliases[k]; ok {
		k = canonical
	}
	fn, ok := registry[k]
	if !ok {
		return nil, &UnknownIndicatorError{Kind: kind}
	}
	return fn(a, opts...)
}

// resolveOHLC is a shorthand for indicators reading the three price columns
func (a *Analysis) resolveOHLC(cfg *config) (high, low, close series, err error) {
	if high, err = a.resolve(cfg.high, core.ColumnHigh); err != nil {
		return nil, nil, nil, err
	}
	if low, err = a.resolve(cfg.low, core.ColumnLow); err != nil {
		return nil, nil, nil, err
	}
	if close, err = a.resolve(cfg.close, core.ColumnClose); err != nil {
		return nil, nil, nil, err
	}
	return high, low, close, nil
}
