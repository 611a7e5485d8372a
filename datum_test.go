package cts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeodeticDatumSeedsWGS84Edge(t *testing.T) {
	toWGS84 := NewHelmert7(-168, -60, 320, 0, 0, 0, 0)
	d := NewGeodeticDatum("test-ntf", NewIdentifier("TEST", "1"), Clarke1880IGN, Paris, "", "", "", toWGS84)

	ops, err := d.GeocentricTransformations(WGS84Datum)
	require.NoError(t, err)
	require.NotEmpty(t, ops)
	assert.Equal(t, toWGS84.Name(), ops[0].Name())

	back, err := WGS84Datum.GeocentricTransformations(d)
	require.NoError(t, err)
	require.NotEmpty(t, back)
}

func TestGeodeticDatumEqual(t *testing.T) {
	a := NewGeodeticDatum("Alpha", NewIdentifier("EPSG", "1000"), WGS84Ellipsoid, Greenwich, "", "", "", nil)
	b := NewGeodeticDatum("Alpha-alias", NewIdentifier("EPSG", "1000"), WGS84Ellipsoid, Greenwich, "", "", "", nil)
	assert.True(t, a.Equal(b))

	c := NewGeodeticDatum("Beta", NewIdentifier("EPSG", "1001"), Clarke1880IGN, Paris, "", "", "", nil)
	assert.False(t, a.Equal(c))
}

func TestGeodeticDatumIdentifierRoundTrip(t *testing.T) {
	want := NewIdentifier("EPSG", "6275", "NTF")
	d := NewGeodeticDatum("Identifier check", want, Clarke1880IGN, Paris, "", "", "", nil)
	if diff := cmp.Diff(want, d.Identifier()); diff != "" {
		t.Errorf("Identifier() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeographicRoundTripViaWGS84Pivot(t *testing.T) {
	ntf := NewGeodeticDatum("test-ntf-2", NewIdentifier("TEST", "2"), Clarke1880IGN, Paris, "", "", "", NewHelmert7(-168, -60, 320, 0, 0, 0, 0))

	fwd, err := ntf.GeographicTransformations(WGS84Datum)
	require.NoError(t, err)
	require.Len(t, fwd, 1)

	inv, err := fwd[0].Inverse()
	require.NoError(t, err)

	near := Tuple{48.85 * d2r, 2.35 * d2r - Paris.LongitudeRad, 0}
	mid, err := fwd[0].Forward(near)
	require.NoError(t, err)
	back, err := inv.Forward(mid)
	require.NoError(t, err)

	assert.InDelta(t, near[0], back[0], 1e-7)
	assert.InDelta(t, near[1], back[1], 1e-7)
}

func TestResolveNoPath(t *testing.T) {
	isolatedA := NewGeodeticDatum("isolated-a", NewIdentifier("TEST", "A"), WGS84Ellipsoid, Greenwich, "", "", "", nil)
	isolatedB := NewGeodeticDatum("isolated-b", NewIdentifier("TEST", "B"), Bessel1841, Greenwich, "", "", "", nil)

	_, err := Resolve(isolatedA, isolatedB)
	require.Error(t, err)
	var noPath *NoPathError
	require.ErrorAs(t, err, &noPath)
}

func TestVerticalDatumDelegation(t *testing.T) {
	v := NewVerticalDatum("no-binding", OrthometricVertical, nil, nil, nil)
	_, err := v.ToWGS84()
	require.Error(t, err)

	associated := NewGeodeticDatum("vertical-associated", NewIdentifier("TEST", "V1"), WGS84Ellipsoid, Greenwich, "", "", "", NewHelmert7(1, 2, 3, 0, 0, 0, 0))
	bound := NewVerticalDatum("bound", GeoidalVertical, Identity(2), associated, WGS84Ellipsoid)
	op, err := bound.ToWGS84()
	require.NoError(t, err)
	assert.NotNil(t, op)
	pm, ok := bound.PrimeMeridian()
	require.True(t, ok)
	assert.Equal(t, Greenwich.Name, pm.Name)
}
