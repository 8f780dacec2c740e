package ta

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/taframe/pkg/core"
)

// newTestFrame builds a small deterministic bar frame shared by the tests
func newTestFrame() *core.Frame {
	return &core.Frame{
		Pair:   "BTCUSDT",
		Open:   series{10, 11, 12, 11, 13, 14, 13, 15, 16, 15},
		High:   series{11, 12, 13, 12, 14, 15, 14, 16, 17, 16},
		Low:    series{9, 10, 11, 10, 12, 13, 12, 14, 15, 14},
		Close:  series{10.5, 11.5, 12.5, 11.5, 13.5, 14.5, 13.5, 15.5, 16.5, 15.5},
		Volume: series{100, 110, 120, 90, 130, 140, 95, 150, 160, 105},
	}
}

// risingFrame returns a frame whose every price series rises by one per bar
func risingFrame(n int) *core.Frame {
	f := &core.Frame{Pair: "TEST"}
	for i := 0; i < n; i++ {
		v := float64(i + 1)
		f.Open = append(f.Open, v)
		f.High = append(f.High, v+1)
		f.Low = append(f.Low, v-0.5)
		f.Close = append(f.Close, v+0.5)
		f.Volume = append(f.Volume, 100)
	}
	return f
}

func TestAnalysis_InvokeDispatches(t *testing.T) {
	a := New(newTestFrame())

	direct, err := a.RSI(WithLength(5))
	require.NoError(t, err)

	invoked, err := a.Invoke("rsi", WithLength(5))
	require.NoError(t, err)

	require.Equal(t, direct.Name, invoked.Name)
	requireSeriesEqual(t, direct.Series(), invoked.Series())
}

func TestAnalysis_InvokeAlias(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.Invoke("RelativeStrengthIndex", WithLength(5))
	require.NoError(t, err)
	require.Equal(t, "RSI_5", res.Name)

	res, err = a.Invoke("  BollingerBands  ")
	require.NoError(t, err)
	require.Equal(t, "BBANDS_20", res.Name)
}

func TestAnalysis_InvokeUnknown(t *testing.T) {
	a := New(newTestFrame())

	_, err := a.Invoke("nope")
	require.Error(t, err)

	var unknown *UnknownIndicatorError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "nope", unknown.Kind)
}

func TestIndicators_RegistryComplete(t *testing.T) {
	kinds := Indicators()
	require.Len(t, kinds, len(registry))
	require.IsIncreasing(t, kinds)

	// every alias must point at a registered kind
	for _, alias := range Aliases() {
		_, ok := registry[aliases[alias]]
		require.True(t, ok, "alias %q resolves to unregistered kind", alias)
	}
}

func TestIndicators_AllInvokable(t *testing.T) {
	a := New(newTestFrame())
	for _, kind := range Indicators() {
		res, err := a.Invoke(kind, WithLength(3))
		require.NoError(t, err, "kind %q", kind)
		require.NotEmpty(t, res.Lines, "kind %q", kind)
		for _, ln := range res.Lines {
			require.Len(t, ln.Data, a.Frame().Len(), "kind %q line %q", kind, ln.Name)
		}
	}
}

func TestAnalysis_DefaultColumnSubstitution(t *testing.T) {
	a := New(newTestFrame())

	// an unknown column name degrades to the default close column
	named, err := a.SMA(WithClose(Col("no_such_column")), WithLength(3))
	require.NoError(t, err)

	plain, err := a.SMA(WithLength(3))
	require.NoError(t, err)
	requireSeriesEqual(t, plain.Series(), named.Series())
}

func TestAnalysis_ExplicitDataSource(t *testing.T) {
	a := New(newTestFrame())

	data := series{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	res, err := a.SMA(WithSource(Data(data)), WithLength(2))
	require.NoError(t, err)
	assert.InDelta(t, 9.5, res.Series().Last(0), 1e-12)

	_, err = a.SMA(WithSource(Data(series{1, 2})))
	require.ErrorIs(t, err, core.ErrLengthMismatch)

	_, err = a.SMA(WithSource(Data(series{})))
	require.ErrorIs(t, err, core.ErrNoData)
}

func TestAnalysis_MissingColumn(t *testing.T) {
	a := New(&core.Frame{Pair: "EMPTY"})

	_, err := a.SMA()
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, core.ColumnClose, missing.Column)
}

func TestAnalysis_OffsetShifts(t *testing.T) {
	a := New(newTestFrame())

	base, err := a.SMA(WithLength(3))
	require.NoError(t, err)
	shifted, err := a.SMA(WithLength(3), WithOffset(2))
	require.NoError(t, err)

	for i := 2; i < len(base.Series()); i++ {
		if core.IsMissing(base.Series()[i-2]) {
			assert.True(t, core.IsMissing(shifted.Series()[i]))
			continue
		}
		assert.Equal(t, base.Series()[i-2], shifted.Series()[i])
	}
	assert.True(t, core.IsMissing(shifted.Series()[0]))
	assert.True(t, core.IsMissing(shifted.Series()[1]))
}

func TestAnalysis_ZeroOffsetIdentity(t *testing.T) {
	a := New(newTestFrame())

	base, err := a.SMA(WithLength(3))
	require.NoError(t, err)
	same, err := a.SMA(WithLength(3), WithOffset(0))
	require.NoError(t, err)
	requireSeriesEqual(t, base.Series(), same.Series())
}

func TestAnalysis_FillValueWinsOverMethod(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.SMA(WithLength(3), WithFillValue(-1), WithFillMethod(FillBackward))
	require.NoError(t, err)
	assert.Equal(t, -1.0, res.Series()[0])
	assert.Equal(t, -1.0, res.Series()[1])
}

func TestAnalysis_FillMethods(t *testing.T) {
	a := New(newTestFrame())

	fwd, err := a.SMA(WithLength(3), WithFillMethod(FillForward))
	require.NoError(t, err)
	// leading gap has nothing to propagate forward
	assert.True(t, core.IsMissing(fwd.Series()[0]))

	bwd, err := a.SMA(WithLength(3), WithFillMethod(FillBackward))
	require.NoError(t, err)
	first := bwd.Series()[2]
	assert.Equal(t, first, bwd.Series()[0])
	assert.Equal(t, first, bwd.Series()[1])

	// filling an already dense series changes nothing
	again, err := a.SMA(WithLength(3), WithFillMethod(FillBackward))
	require.NoError(t, err)
	requireSeriesEqual(t, bwd.Series(), again.Series())
}

func TestAnalysis_AppendRoundTrip(t *testing.T) {
	frame := newTestFrame()
	a := New(frame)

	res, err := a.BBands(WithLength(5), WithAppend())
	require.NoError(t, err)

	for _, ln := range res.Lines {
		col, ok := frame.Column(ln.Name)
		require.True(t, ok, "column %q not appended", ln.Name)
		require.Equal(t, ln.Data, col)
	}

	// recomputing over the appended column dispatches through metadata
	again, err := a.SMA(WithClose(Col("BBM_5")), WithLength(2))
	require.NoError(t, err)
	require.Len(t, again.Series(), frame.Len())
}

func TestAnalysis_ResultMetadata(t *testing.T) {
	a := New(newTestFrame(), WithTiming())

	res, err := a.MACD(WithAlias("trendgauge"))
	require.NoError(t, err)
	assert.Equal(t, "MACD_12_26_9", res.Name)
	assert.Equal(t, CategoryMomentum, res.Category)
	assert.Equal(t, "trendgauge", res.Alias)
	assert.Equal(t, []string{"MACD_12_26_9", "MACDH_12_26_9", "MACDS_12_26_9"}, res.Names())
	assert.GreaterOrEqual(t, res.Elapsed, time.Duration(0))

	_, ok := res.Line("MACDS_12_26_9")
	require.True(t, ok)
	_, ok = res.Line("bogus")
	require.False(t, ok)
}

func TestParams_ToleratedDefaults(t *testing.T) {
	a := New(newTestFrame())

	neg, err := a.SMA(WithLength(-5))
	require.NoError(t, err)
	def, err := a.SMA()
	require.NoError(t, err)
	requireSeriesEqual(t, def.Series(), neg.Series())
	require.Equal(t, "SMA_10", neg.Name)
}

func TestParams_FastSlowSwap(t *testing.T) {
	a := New(newTestFrame())

	normal, err := a.MACD(WithFast(12), WithSlow(26))
	require.NoError(t, err)
	swapped, err := a.MACD(WithFast(26), WithSlow(12))
	require.NoError(t, err)

	require.Equal(t, normal.Name, swapped.Name)
	requireSeriesEqual(t, normal.Series(), swapped.Series())
}

func TestSource_NaNPropagation(t *testing.T) {
	a := New(newTestFrame())

	data := series{1, 2, math.NaN(), 4, 5, 6, 7, 8, 9, 10}
	res, err := a.SMA(WithSource(Data(data)), WithLength(3))
	require.NoError(t, err)

	// windows touching the gap lack a full observation count
	assert.True(t, core.IsMissing(res.Series()[2]))
	assert.True(t, core.IsMissing(res.Series()[3]))
	assert.True(t, core.IsMissing(res.Series()[4]))
	assert.InDelta(t, 5, res.Series()[5], 1e-12)

	// a lower minimum lets partial windows through
	relaxed, err := a.SMA(WithSource(Data(data)), WithLength(3), WithMinPeriods(2))
	require.NoError(t, err)
	assert.InDelta(t, 3, relaxed.Series()[3], 1e-12)
}
