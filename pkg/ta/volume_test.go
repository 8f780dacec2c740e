package ta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/taframe/pkg/core"
)

func TestOBV_SignedAccumulation(t *testing.T) {
	f := &core.Frame{
		Pair:   "TEST",
		Close:  series{10, 11, 10, 10, 12},
		Volume: series{100, 200, 300, 400, 500},
	}
	a := New(f)

	res, err := a.OBV()
	require.NoError(t, err)

	// first bar counts as up by convention, flat bars add nothing
	assert.Equal(t, series{100, 300, 0, 0, 500}, res.Series())
}

func TestAD_Variants(t *testing.T) {
	a := New(newTestFrame())

	hlc, err := a.AD()
	require.NoError(t, err)
	require.Equal(t, "AD", hlc.Name)

	open, err := a.AD(WithOpen(Col(core.ColumnOpen)))
	require.NoError(t, err)
	require.Equal(t, "ADo", open.Name)

	assert.NotEqual(t, hlc.Series().Last(0), open.Series().Last(0))
}

func TestCMF_Bounds(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.CMF(WithLength(5))
	require.NoError(t, err)

	for i, v := range res.Series() {
		if core.IsMissing(v) {
			continue
		}
		assert.GreaterOrEqual(t, v, -1.0, "position %d", i)
		assert.LessOrEqual(t, v, 1.0, "position %d", i)
	}
}

func TestEFI_SignFollowsTrend(t *testing.T) {
	a := New(risingFrame(30))

	res, err := a.EFI()
	require.NoError(t, err)
	require.Equal(t, "EFI_13", res.Name)
	assert.Positive(t, res.Series().Last(0))
}

func TestEOM_Name(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.EOM(WithLength(5))
	require.NoError(t, err)
	require.Equal(t, "EOM_5_100000000", res.Name)
	assert.False(t, core.IsMissing(res.Series().Last(0)))
}

func TestMFI_Bounds(t *testing.T) {
	a := New(newTestFrame())

	res, err := a.MFI(WithLength(5))
	require.NoError(t, err)

	for i, v := range res.Series() {
		if core.IsMissing(v) {
			continue
		}
		assert.GreaterOrEqual(t, v, 0.0, "position %d", i)
		assert.LessOrEqual(t, v, 100.0, "position %d", i)
	}
}

func TestNVI_OnlyMovesOnVolumeDrops(t *testing.T) {
	f := &core.Frame{
		Pair:   "TEST",
		Close:  series{100, 110, 121, 133.1, 146.41},
		Volume: series{100, 200, 150, 300, 200},
	}
	a := New(f)

	res, err := a.NVI()
	require.NoError(t, err)

	out := res.Series()
	assert.InDelta(t, 1000, out[0], 1e-9)
	assert.InDelta(t, 1000, out[1], 1e-9) // volume rose
	assert.InDelta(t, 1100, out[2], 1e-9) // volume fell, +10% close
	assert.InDelta(t, 1100, out[3], 1e-9) // volume rose
	assert.InDelta(t, 1210, out[4], 1e-9) // volume fell again
}

func TestPVol_Signing(t *testing.T) {
	f := &core.Frame{
		Pair:   "TEST",
		Close:  series{10, 9, 11},
		Volume: series{100, 100, 100},
	}
	a := New(f)

	signed, err := a.PVol()
	require.NoError(t, err)
	assert.Equal(t, series{1000, -900, 1100}, signed.Series())

	raw, err := a.PVol(WithUnsigned())
	require.NoError(t, err)
	assert.Equal(t, series{1000, 900, 1100}, raw.Series())
}

func TestPVT_AccumulatesReturnsTimesVolume(t *testing.T) {
	f := &core.Frame{
		Pair:   "TEST",
		Close:  series{10, 11, 11},
		Volume: series{100, 200, 300},
	}
	a := New(f)

	res, err := a.PVT()
	require.NoError(t, err)

	out := res.Series()
	assert.True(t, core.IsMissing(out[0]))
	assert.InDelta(t, 20, out[1], 1e-9) // 10% of 200
	assert.InDelta(t, 20, out[2], 1e-9) // flat bar adds nothing
}
