package cts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipsoidAsSpheroidWKT(t *testing.T) {
	s := WGS84Ellipsoid.AsSpheroidWKT()
	assert.True(t, strings.HasPrefix(s, `SPHEROID["WGS 84"`))
	assert.Contains(t, s, "6378137")
	assert.Contains(t, s, "298.257223563")
}

func TestPrimeMeridianAsWKT(t *testing.T) {
	s := Paris.AsWKT()
	assert.True(t, strings.HasPrefix(s, `PRIMEM["Paris",2.3372291`))
}

func TestGeodeticDatumAsDatumWKTIncludesTOWGS84AndAuthority(t *testing.T) {
	s := NTFDatum.AsDatumWKT()
	assert.Contains(t, s, `DATUM["Nouvelle Triangulation Francaise"`)
	assert.Contains(t, s, "TOWGS84[-168,-60,320,0,0,0,0]")
	assert.Contains(t, s, `AUTHORITY["EPSG","6275"]`)
}

func TestGeodeticDatumAsDatumWKTOmitsTOWGS84WhenPivot(t *testing.T) {
	s := WGS84Datum.AsDatumWKT()
	assert.NotContains(t, s, "TOWGS84")
}

func TestVerticalDatumAsWKT(t *testing.T) {
	v := NewVerticalDatum("EGM2008 geoid", GeoidalVertical, nil, nil, nil)
	s := v.AsWKT()
	assert.Contains(t, s, `VERT_DATUM["EGM2008 geoid"`)
}
