package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwissObliqueMercatorRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "46.952405556")
	p.Set(ParamCentralMeridian, "7.439583333")
	p.Set(ParamFalseEasting, "600000")
	p.Set(ParamFalseNorthing, "200000")

	op := NewSwissObliqueMercator(Bessel1841, p)
	out, err := op.Forward(Tuple{47.2 * d2r, 8.5 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 47.2*d2r, back[0], 1e-8)
	assert.InDelta(t, 8.5*d2r, back[1], 1e-8)
}

func TestGaussSchreiberTransverseMercatorRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "0")
	p.Set(ParamCentralMeridian, "19")

	op := NewGaussSchreiberTransverseMercator(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{-26 * d2r, 20 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, -26*d2r, back[0], 1e-8)
	assert.InDelta(t, 20*d2r, back[1], 1e-8)
}

func TestObliqueMercatorRoundTrip(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "4")
	p.Set(ParamCentralMeridian, "115")
	p.Set(ParamAzimuthOfInitialLine, "53.315334722")
	p.Set(ParamScaleFactor, "0.99984")
	p.Set(ParamFalseEasting, "590476.87")
	p.Set(ParamFalseNorthing, "442857.65")

	op := NewObliqueMercator(WGS84Ellipsoid, p)
	out, err := op.Forward(Tuple{5.4 * d2r, 115.8 * d2r})
	require.NoError(t, err)
	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 5.4*d2r, back[0], 1e-7)
	assert.InDelta(t, 115.8*d2r, back[1], 1e-7)
}

func TestObliqueMercatorDefaultsGammaCToAzimuth(t *testing.T) {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "4")
	p.Set(ParamCentralMeridian, "115")
	p.Set(ParamAzimuthOfInitialLine, "53.315334722")

	op := NewObliqueMercator(WGS84Ellipsoid, p)
	proj := op.(Projection)
	assert.InDelta(t, proj.Params().Azimuth, proj.Params().GammaC, 1e-12)
}
