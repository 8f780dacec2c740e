package ta

import (
	"time"
)

// FillMethod selects how remaining gaps are propagated after a computation
type FillMethod string

const (
	FillNone     FillMethod = ""
	FillForward  FillMethod = "forward"
	FillBackward FillMethod = "backward"
)

// config carries the per-call options every indicator understands. Zero
// values mean "use the indicator default"; normalization happens inside
// each indicator via the tolerant helpers in params.go.
type config struct {
	open   Source
	high   Source
	low    Source
	close  Source
	volume Source

	length     int
	fast       int
	slow       int
	signal     int
	smooth     int
	medium     int
	drift      int
	offset     int
	minPeriods int

	scalar     float64
	quantile   *float64
	divisor    float64
	percentage float64

	rocPeriods [4]int
	smaPeriods [4]int

	mamode     MAMode
	cumulative bool
	percent    bool
	uncentered bool
	unsigned   bool
	addLow     bool

	fillValue    *float64
	fillMethod   FillMethod
	appendResult bool
	alias        string

	start time.Time
}

// Option adjusts a single indicator call
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{start: time.Now()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithOpen overrides the open input column
func WithOpen(src Source) Option { return func(c *config) { c.open = src } }

// WithHigh overrides the high input column
func WithHigh(src Source) Option { return func(c *config) { c.high = src } }

// WithLow overrides the low input column
func WithLow(src Source) Option { return func(c *config) { c.low = src } }

// WithClose overrides the close input column
func WithClose(src Source) Option { return func(c *config) { c.close = src } }

// WithVolume overrides the volume input column
func WithVolume(src Source) Option { return func(c *config) { c.volume = src } }

// WithSource overrides the primary input of single-series indicators.
// It is equivalent to WithClose.
func WithSource(src Source) Option { return WithClose(src) }

// WithLength sets the window length
func WithLength(length int) Option { return func(c *config) { c.length = length } }

// WithFast sets the fast period of fast/slow indicators
func WithFast(fast int) Option { return func(c *config) { c.fast = fast } }

// WithSlow sets the slow period of fast/slow indicators
func WithSlow(slow int) Option { return func(c *config) { c.slow = slow } }

// WithSignal sets the signal period (MACD, KST, Stochastic %D)
func WithSignal(signal int) Option { return func(c *config) { c.signal = signal } }

// WithSmooth sets the %K smoothing period of the Stochastic oscillator
func WithSmooth(smooth int) Option { return func(c *config) { c.smooth = smooth } }

// WithMedium sets the middle period of the Ultimate Oscillator
func WithMedium(medium int) Option { return func(c *config) { c.medium = medium } }

// WithDrift sets the differencing lag
func WithDrift(drift int) Option { return func(c *config) { c.drift = drift } }

// WithOffset shifts the final result by the given number of positions
func WithOffset(offset int) Option { return func(c *config) { c.offset = offset } }

// WithMinPeriods overrides the minimum observations required before a
// rolling-window value is emitted. It applies to rolling-window modes only;
// the recursive averages (EMA, RMA, WMA) always seed over a full window to
// stay reference-compatible.
func WithMinPeriods(minPeriods int) Option { return func(c *config) { c.minPeriods = minPeriods } }

// WithScalar sets the indicator's scale constant (Bollinger std multiplier,
// Keltner scalar, CCI constant, acceleration factor)
func WithScalar(scalar float64) Option { return func(c *config) { c.scalar = scalar } }

// WithQuantile sets the quantile level of the rolling quantile indicator.
// Values are clamped to [0, 1]; the boundaries select the window minimum
// and maximum.
func WithQuantile(q float64) Option { return func(c *config) { c.quantile = &q } }

// WithPercentage sets the range fraction of the Range Percentage indicator
func WithPercentage(p float64) Option { return func(c *config) { c.percentage = p } }

// WithAddLow rebases the Range Percentage onto the low price
func WithAddLow() Option { return func(c *config) { c.addLow = true } }

// WithDivisor sets the volume divisor of the Ease of Movement indicator
func WithDivisor(divisor float64) Option { return func(c *config) { c.divisor = divisor } }

// WithROCPeriods sets the four rate-of-change periods of KST
func WithROCPeriods(r1, r2, r3, r4 int) Option {
	return func(c *config) { c.rocPeriods = [4]int{r1, r2, r3, r4} }
}

// WithSMAPeriods sets the four smoothing periods of KST
func WithSMAPeriods(s1, s2, s3, s4 int) Option {
	return func(c *config) { c.smaPeriods = [4]int{s1, s2, s3, s4} }
}

// WithMAMode selects the moving-average flavor where an indicator supports it
func WithMAMode(mode MAMode) Option { return func(c *config) { c.mamode = mode } }

// WithCumulative switches performance indicators to cumulative returns
func WithCumulative() Option { return func(c *config) { c.cumulative = true } }

// WithPercent scales ratio outputs by 100
func WithPercent() Option { return func(c *config) { c.percent = true } }

// WithUncentered disables the centering shift of the Detrend Price Oscillator
func WithUncentered() Option { return func(c *config) { c.uncentered = true } }

// WithUnsigned disables the direction signing of the price-volume product
func WithUnsigned() Option { return func(c *config) { c.unsigned = true } }

// WithFillValue replaces missing outputs with the given value.
// Takes precedence over WithFillMethod when both are set.
func WithFillValue(v float64) Option { return func(c *config) { c.fillValue = &v } }

// WithFillMethod propagates the last (forward) or next (backward) valid
// observation across gaps in the output
func WithFillMethod(m FillMethod) Option { return func(c *config) { c.fillMethod = m } }

// WithAppend writes the result back into the source frame under the
// generated output names, overwriting columns of the same name
func WithAppend() Option { return func(c *config) { c.appendResult = true } }

// WithAlias stamps an extra caller-chosen label onto the result
func WithAlias(alias string) Option { return func(c *config) { c.alias = alias } }
