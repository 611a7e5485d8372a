package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambertConicConformal2SPLambert93(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "46.5")
	p.Set(ParamStandardParallel1, "44")
	p.Set(ParamStandardParallel2, "49")
	p.Set(ParamCentralMeridian, "3")
	p.Set(ParamFalseEasting, "700000")
	p.Set(ParamFalseNorthing, "6600000")

	op := NewLambertConicConformal2SP(GRS80, p)
	out, err := op.Forward(Tuple{48 * d2r, 2 * d2r})
	require.NoError(t, err)

	assert.InDelta(t, 598429.8, out[0], 0.1)
	assert.InDelta(t, 6864602.9, out[1], 0.1)

	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 48*d2r, back[0], 1e-9)
	assert.InDelta(t, 2*d2r, back[1], 1e-9)
}

func TestLambertConicConformal1SPClassificationAndRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "46.5")
	p.Set(ParamCentralMeridian, "3")
	p.Set(ParamScaleFactor, "0.99987742")

	op := NewLambertConicConformal1SP(GRS80, p)
	proj, ok := op.(Projection)
	require.True(t, ok)
	assert.Equal(t, Conical, proj.Classify().Surface)
	assert.Equal(t, Conformal, proj.Classify().Property)

	out, err := op.Forward(Tuple{46.5 * d2r, 3 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 46.5*d2r, back[0], 1e-9)
	assert.InDelta(t, 3*d2r, back[1], 1e-9)
}
