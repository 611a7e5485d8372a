package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbersEqualAreaRoundTripSecant(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "23")
	p.Set(ParamStandardParallel1, "29.5")
	p.Set(ParamStandardParallel2, "45.5")
	p.Set(ParamCentralMeridian, "-96")
	p.Set(ParamFalseEasting, "0")
	p.Set(ParamFalseNorthing, "0")

	op := NewAlbersEqualArea(WGS84Ellipsoid, p)
	proj := op.(Projection)
	assert.Equal(t, Secant, proj.Classify().Orientation)
	assert.Equal(t, EqualArea, proj.Classify().Property)

	out, err := op.Forward(Tuple{35 * d2r, -100 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 35*d2r, back[0], 1e-9)
	assert.InDelta(t, -100*d2r, back[1], 1e-9)
}

func TestAlbersEqualAreaTangentWhenParallelsEqual(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "40")
	p.Set(ParamStandardParallel1, "40")
	p.Set(ParamCentralMeridian, "0")

	op := NewAlbersEqualArea(WGS84Ellipsoid, p)
	proj := op.(Projection)
	assert.Equal(t, Tangent, proj.Classify().Orientation)
}

func TestQFuncSphericalShortcut(t *testing.T) {
	assert.InDelta(t, 1.0, qFunc(0.5, 0), 1e-12)
}
