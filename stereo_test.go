package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolarStereographicNorthRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "90")
	p.Set(ParamCentralMeridian, "0")
	p.Set(ParamScaleFactor, "0.994")
	p.Set(ParamFalseEasting, "2000000")
	p.Set(ParamFalseNorthing, "2000000")

	op := NewPolarStereographic(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{73 * d2r, 44 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 73*d2r, back[0], 1e-9)
	assert.InDelta(t, 44*d2r, back[1], 1e-9)
}

func TestPolarStereographicSouthRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "-90")
	p.Set(ParamCentralMeridian, "0")
	p.Set(ParamLatitudeOfTrueScale, "-71")

	op := NewPolarStereographic(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{-75 * d2r, 120 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, -75*d2r, back[0], 1e-9)
	assert.InDelta(t, 120*d2r, back[1], 1e-9)
}

func TestObliqueStereographicAlternativeRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "52.156160556")
	p.Set(ParamCentralMeridian, "5.387638889")
	p.Set(ParamScaleFactor, "0.9999079")
	p.Set(ParamFalseEasting, "155000")
	p.Set(ParamFalseNorthing, "463000")

	op := NewObliqueStereographicAlternative(Bessel1841, p)
	out, err := op.Forward(Tuple{53 * d2r, 6 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 53*d2r, back[0], 1e-9)
	assert.InDelta(t, 6*d2r, back[1], 1e-9)
}
