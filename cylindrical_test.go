package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquidistantCylindricalRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamCentralMeridian, "0")
	op := NewEquidistantCylindrical(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{10 * d2r, 20 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 10*d2r, back[0], 1e-9)
	assert.InDelta(t, 20*d2r, back[1], 1e-9)
}

func TestEquidistantCylindricalUsesLatitudeOfTrueScale(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfTrueScale, "60")
	op := NewEquidistantCylindrical(WGS84Ellipsoid, p)
	proj := op.(Projection)
	assert.Equal(t, Secant, proj.Classify().Orientation)
}

func TestMillerCylindricalRoundTrip(t *testing.T) {
	op := NewMillerCylindrical(WGS84Ellipsoid, NewParamMap())
	out, err := op.Forward(Tuple{40 * d2r, -75 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 40*d2r, back[0], 1e-9)
	assert.InDelta(t, -75*d2r, back[1], 1e-9)
}

func TestCylindricalEqualAreaRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfTrueScale, "30")
	op := NewCylindricalEqualArea(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{25 * d2r, -10 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 25*d2r, back[0], 1e-9)
	assert.InDelta(t, -10*d2r, back[1], 1e-9)
}

func TestCylindricalEqualAreaPoleShortCircuit(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfTrueScale, "0")
	op := NewCylindricalEqualArea(WGS84Ellipsoid, p)
	inv, err := op.Inverse()
	require.NoError(t, err)

	fwd, err := op.Forward(Tuple{halfPi - 1e-12, 0.5})
	require.NoError(t, err)
	back, err := inv.Forward(fwd)
	require.NoError(t, err)
	assert.InDelta(t, halfPi, back[0], 1e-6)
}
