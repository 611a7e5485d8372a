package cts

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParamsFor(key string) *ParamMap {
	p := NewParamMap()
	p.Set(ParamLatitudeOfOrigin, "45")
	p.Set(ParamCentralMeridian, "10")
	p.Set(ParamStandardParallel1, "40")
	p.Set(ParamStandardParallel2, "50")
	p.Set(ParamAzimuthOfInitialLine, "40")
	p.Set(ParamScaleFactor, "0.9996")
	switch key {
	case "krovak":
		p.Set(ParamLatitudeOfOrigin, "49.5")
		p.Set(ParamCentralMeridian, "24.833333333")
	}
	return p
}

func TestKnownProjectionsIsSortedAndExcludesUTM(t *testing.T) {
	keys := KnownProjections()
	require.True(t, sort.StringsAreSorted(keys))
	assert.NotContains(t, keys, "utm")
	assert.Contains(t, keys, "merc")
	assert.Contains(t, keys, "laea")
}

func TestNewProjectionUnknownKey(t *testing.T) {
	_, err := NewProjection("not-a-real-method", WGS84Ellipsoid, NewParamMap())
	require.Error(t, err)
	var unsupported *UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)
}

func TestNewProjectionUTMNotInGenericTable(t *testing.T) {
	_, err := NewProjection("utm", WGS84Ellipsoid, NewParamMap())
	require.Error(t, err)
}

func TestFactoryBuiltProjectionsInverseInverseIsSelf(t *testing.T) {
	for _, key := range KnownProjections() {
		op, err := NewProjection(key, WGS84Ellipsoid, baseParamsFor(key))
		require.NoError(t, err, key)

		inv, err := op.Inverse()
		require.NoError(t, err, key)
		invInv, err := inv.Inverse()
		require.NoError(t, err, key)

		assert.Equal(t, op.Name(), invInv.Name(), key)
	}
}

func TestLCCDispatchPicksVariantByParallelCount(t *testing.T) {
	p1 := NewParamMap()
	p1.Set(ParamLatitudeOfOrigin, "46.5")
	p1.Set(ParamCentralMeridian, "3")
	p1.Set(ParamScaleFactor, "0.999877")
	op1, err := NewProjection("lcc", GRS80, p1)
	require.NoError(t, err)
	assert.Equal(t, "lambert_conic_conformal_1sp", op1.Name())

	p2 := NewParamMap()
	p2.Set(ParamLatitudeOfOrigin, "46.5")
	p2.Set(ParamStandardParallel1, "44")
	p2.Set(ParamStandardParallel2, "49")
	p2.Set(ParamCentralMeridian, "3")
	op2, err := NewProjection("lcc", GRS80, p2)
	require.NoError(t, err)
	assert.Equal(t, "lambert_conic_conformal_2sp", op2.Name())
}

func TestStereoDispatchPicksVariantByPoleProximity(t *testing.T) {
	polar := NewParamMap()
	polar.Set(ParamLatitudeOfOrigin, "90")
	op, err := NewProjection("stere", WGS84Ellipsoid, polar)
	require.NoError(t, err)
	assert.Equal(t, "polar_stereographic", op.Name())

	oblique := NewParamMap()
	oblique.Set(ParamLatitudeOfOrigin, "52")
	op2, err := NewProjection("stere", WGS84Ellipsoid, oblique)
	require.NoError(t, err)
	assert.Equal(t, "oblique_stereographic_alternative", op2.Name())
}
