package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyconicRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "0")
	p.Set(ParamCentralMeridian, "-75")

	op := NewPolyconic(Clarke1866, p)
	out, err := op.Forward(Tuple{40 * d2r, -73 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 40*d2r, back[0], 1e-8)
	assert.InDelta(t, -73*d2r, back[1], 1e-8)
}

func TestPolyconicEquatorShortcut(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamCentralMeridian, "0")
	op := NewPolyconic(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{0, 10 * d2r})
	require.NoError(t, err)
	assert.InDelta(t, WGS84Ellipsoid.a*10*d2r, out[0], 1e-3)
}

func TestCassiniSoldnerRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "1.4")
	p.Set(ParamCentralMeridian, "103.85")
	p.Set(ParamFalseEasting, "30000")
	p.Set(ParamFalseNorthing, "30000")

	op := NewCassiniSoldner(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{1.3 * d2r, 103.9 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 1.3*d2r, back[0], 1e-9)
	assert.InDelta(t, 103.9*d2r, back[1], 1e-9)
}
