package ta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/taframe/pkg/core"
)

func TestRSI_AllGainsSaturate(t *testing.T) {
	a := New(risingFrame(30))

	res, err := a.RSI(WithLength(14))
	require.NoError(t, err)

	// a monotonically rising close has no losses, so the index pins at 100
	for i := 20; i < 30; i++ {
		assert.InDelta(t, 100, res.Series()[i], 1e-9, "position %d", i)
	}
}

func TestRSI_WarmupMissing(t *testing.T) {
	a := New(risingFrame(30))

	res, err := a.RSI(WithLength(14))
	require.NoError(t, err)

	// the diff consumes one bar and the smoothing another 13
	for i := 0; i < 14; i++ {
		assert.True(t, core.IsMissing(res.Series()[i]), "position %d", i)
	}
	assert.False(t, core.IsMissing(res.Series()[14]))
}

func TestMACD_LinesAndCrossover(t *testing.T) {
	// rise then fall to force the MACD line through its signal
	f := &core.Frame{Pair: "TEST"}
	for i := 0; i < 60; i++ {
		v := float64(i + 1)
		if i >= 40 {
			v = 41 - float64(i-40)*2
		}
		f.Open = append(f.Open, v)
		f.High = append(f.High, v+1)
		f.Low = append(f.Low, v-1)
		f.Close = append(f.Close, v)
		f.Volume = append(f.Volume, 100)
	}
	a := New(f)

	res, err := a.MACD()
	require.NoError(t, err)
	require.Equal(t, []string{"MACD_12_26_9", "MACDH_12_26_9", "MACDS_12_26_9"}, res.Names())

	macd, _ := res.Line("MACD_12_26_9")
	signal, _ := res.Line("MACDS_12_26_9")
	hist, _ := res.Line("MACDH_12_26_9")

	// histogram is the spread between the two lines
	for i := 40; i < 60; i++ {
		assert.InDelta(t, macd[i]-signal[i], hist[i], 1e-9)
	}

	// the downturn drags the MACD line under its signal at some point
	crossed := false
	for i := 41; i < 60; i++ {
		if signal[:i+1].Crossover(macd[:i+1]) {
			crossed = true
			break
		}
	}
	assert.True(t, crossed)
}

func TestStoch_Bounds(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.Stoch(WithLength(5), WithSmooth(2), WithSignal(2))
	require.NoError(t, err)
	require.Equal(t, []string{"STOCHK_5_2_2", "STOCHD_5_2_2"}, res.Names())

	for _, ln := range res.Lines {
		for i, v := range ln.Data {
			if core.IsMissing(v) {
				continue
			}
			assert.GreaterOrEqual(t, v, 0.0, "%s position %d", ln.Name, i)
			assert.LessOrEqual(t, v, 100.0, "%s position %d", ln.Name, i)
		}
	}
}

func TestWILLR_Bounds(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.WILLR(WithLength(5))
	require.NoError(t, err)

	for i, v := range res.Series() {
		if core.IsMissing(v) {
			continue
		}
		assert.GreaterOrEqual(t, v, -100.0, "position %d", i)
		assert.LessOrEqual(t, v, 0.0, "position %d", i)
	}
}

func TestROC_MatchesMomentumRatio(t *testing.T) {
	a := New(newTestFrame())

	roc, err := a.ROC(WithLength(2))
	require.NoError(t, err)
	mom, err := a.MOM(WithLength(2))
	require.NoError(t, err)

	close := a.Frame().Close
	for i := 2; i < a.Frame().Len(); i++ {
		assert.InDelta(t, 100*mom.Series()[i]/close[i-2], roc.Series()[i], 1e-9)
	}
}

func TestBOP_SignFollowsCandleBody(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.BOP()
	require.NoError(t, err)

	open, close := a.Frame().Open, a.Frame().Close
	for i, v := range res.Series() {
		if close[i] > open[i] {
			assert.Positive(t, v, "position %d", i)
		} else if close[i] < open[i] {
			assert.Negative(t, v, "position %d", i)
		}
	}
}

func TestCMO_SaturatesOnMonotonicRise(t *testing.T) {
	a := New(risingFrame(30))

	res, err := a.CMO(WithLength(10))
	require.NoError(t, err)
	assert.InDelta(t, 100, res.Series().Last(0), 1e-9)
}

func TestUO_Bounds(t *testing.T) {
	a := New(risingFrame(40))

	res, err := a.UO()
	require.NoError(t, err)
	require.Equal(t, "UO_7_14_28", res.Name)

	for i, v := range res.Series() {
		if core.IsMissing(v) {
			continue
		}
		assert.GreaterOrEqual(t, v, 0.0, "position %d", i)
		assert.LessOrEqual(t, v, 100.0, "position %d", i)
	}
}

func TestKST_NamesAndSignal(t *testing.T) {
	a := New(risingFrame(80))

	res, err := a.KST()
	require.NoError(t, err)
	require.Equal(t, []string{"KST_10_15_20_30_10_10_10_15", "KSTS_9"}, res.Names())

	kst := res.Series()
	assert.False(t, core.IsMissing(kst.Last(0)))
}

func TestTSI_PositiveOnRise(t *testing.T) {
	a := New(risingFrame(60))

	res, err := a.TSI()
	require.NoError(t, err)
	require.Equal(t, "TSI_13_25", res.Name)
	assert.Positive(t, res.Series().Last(0))
}

func TestAPO_PPO_Relationship(t *testing.T) {
	a := New(newTestFrame())

	apo, err := a.APO(WithFast(2), WithSlow(4))
	require.NoError(t, err)
	ppo, err := a.PPO(WithFast(2), WithSlow(4))
	require.NoError(t, err)

	slow := rollingMean(a.Frame().Close, 4, 4)
	for i := 3; i < a.Frame().Len(); i++ {
		assert.InDelta(t, 100*apo.Series()[i]/slow[i], ppo.Series()[i], 1e-9)
	}
}

func TestTRIX_SignOnTrend(t *testing.T) {
	a := New(risingFrame(50))

	res, err := a.TRIX(WithLength(10))
	require.NoError(t, err)
	assert.Positive(t, res.Series().Last(0))
}
