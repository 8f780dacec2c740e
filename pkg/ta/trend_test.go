package ta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/taframe/pkg/core"
)

func TestADX_BoundsAndNames(t *testing.T) {
	a := New(risingFrame(60))

	res, err := a.ADX()
	require.NoError(t, err)
	require.Equal(t, []string{"ADX_14", "DMP_14", "DMN_14"}, res.Names())

	for _, ln := range res.Lines {
		for i, v := range ln.Data {
			if core.IsMissing(v) {
				continue
			}
			assert.GreaterOrEqual(t, v, 0.0, "%s position %d", ln.Name, i)
			assert.LessOrEqual(t, v, 100.0, "%s position %d", ln.Name, i)
		}
	}

	// a one-way trend leaves no negative directional movement
	dmn, _ := res.Line("DMN_14")
	assert.InDelta(t, 0, dmn.Last(0), 1e-9)
	adx := res.Series()
	assert.Greater(t, adx.Last(0), 50.0)
}

func TestAroon_MonotonicClose(t *testing.T) {
	a := New(risingFrame(30))

	res, err := a.Aroon()
	require.NoError(t, err)
	require.Equal(t, []string{"AROONU_14", "AROOND_14"}, res.Names())

	up, _ := res.Line("AROONU_14")
	down, _ := res.Line("AROOND_14")

	// the maximum is always the newest bar, the minimum the oldest
	assert.InDelta(t, 100, up.Last(0), 1e-12)
	assert.InDelta(t, 100.0/14.0, down.Last(0), 1e-12)
	assert.True(t, core.IsMissing(up[12]))
	assert.False(t, core.IsMissing(up[13]))
}

func TestIncreasingDecreasing_Flags(t *testing.T) {
	f := &core.Frame{
		Pair:  "TEST",
		Close: series{1, 2, 2, 1, 3, 3, 2},
	}
	a := New(f)

	inc, err := a.Increasing()
	require.NoError(t, err)
	dec, err := a.Decreasing()
	require.NoError(t, err)

	assert.Equal(t, series{0, 1, 0, 0, 1, 0, 0}, inc.Series())
	assert.Equal(t, series{0, 0, 0, 1, 0, 0, 1}, dec.Series())
}

func TestDPO_Uncentered(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.DPO(WithLength(4), WithUncentered())
	require.NoError(t, err)

	// shift by length/2+1 = 3, minus the 4-bar mean
	close := a.Frame().Close
	for i := 4; i < a.Frame().Len(); i++ {
		mean := (close[i] + close[i-1] + close[i-2] + close[i-3]) / 4
		assert.InDelta(t, close[i-3]-mean, res.Series()[i], 1e-12, "position %d", i)
	}
}

func TestDPO_CenteredAlignment(t *testing.T) {
	a := New(newTestFrame())

	centered, err := a.DPO(WithLength(4))
	require.NoError(t, err)
	uncentered, err := a.DPO(WithLength(4), WithUncentered())
	require.NoError(t, err)

	// centering shifts the uncentered line back by length/2+1
	for i := 0; i < a.Frame().Len()-3; i++ {
		u := uncentered.Series()[i+3]
		if core.IsMissing(u) {
			assert.True(t, core.IsMissing(centered.Series()[i]))
			continue
		}
		assert.InDelta(t, u, centered.Series()[i], 1e-12, "position %d", i)
	}
}

func TestQStick_SignOfBodies(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.QStick(WithLength(3))
	require.NoError(t, err)

	// every candle in the fixture closes above its open
	for i := 2; i < a.Frame().Len(); i++ {
		assert.Positive(t, res.Series()[i], "position %d", i)
	}
}

func TestVortex_TrendSeparation(t *testing.T) {
	a := New(risingFrame(40))

	res, err := a.Vortex()
	require.NoError(t, err)
	require.Equal(t, []string{"VTXP_14", "VTXM_14"}, res.Names())

	vip, _ := res.Line("VTXP_14")
	vim, _ := res.Line("VTXM_14")
	assert.Greater(t, vip.Last(0), vim.Last(0))
}
