package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePivotsThroughWGS84(t *testing.T) {
	a := NewGeodeticDatum("graph-a", NewIdentifier("TEST", "GA"), Clarke1880IGN, Paris, "", "", "", NewHelmert7(-168, -60, 320, 0, 0, 0, 0))
	b := NewGeodeticDatum("graph-b", NewIdentifier("TEST", "GB"), Bessel1841, Greenwich, "", "", "", NewHelmert7(598, 73, 418, 0, 0, 0, 0))

	op, err := Resolve(a, b)
	require.NoError(t, err)
	require.NotNil(t, op)

	inv, err := op.Inverse()
	require.NoError(t, err)

	start := Tuple{4200000, 170000, 4800000}
	mid, err := op.Forward(start)
	require.NoError(t, err)
	back, err := inv.Forward(mid)
	require.NoError(t, err)
	for i := range start {
		assert.InDelta(t, start[i], back[i], 1e-6)
	}
}

func TestResolveDirectEdgeShortcutsPivot(t *testing.T) {
	a := NewGeodeticDatum("graph-direct-a", NewIdentifier("TEST", "GDA"), WGS84Ellipsoid, Greenwich, "", "", "", nil)
	b := NewGeodeticDatum("graph-direct-b", NewIdentifier("TEST", "GDB"), Bessel1841, Greenwich, "", "", "", nil)

	direct := NewHelmert7(10, 20, 30, 0, 0, 0, 0)
	require.NoError(t, a.AddGeocentricEdge(b, direct, false))

	op, err := Resolve(a, b)
	require.NoError(t, err)
	assert.Equal(t, direct.Name(), op.Name())
}

func TestResolveGeographicIdentityForSameDatum(t *testing.T) {
	op, err := ResolveGeographic(WGS84Datum, WGS84Datum)
	require.NoError(t, err)
	assert.True(t, op.IsIdentity())
}
