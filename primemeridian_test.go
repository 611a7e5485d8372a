package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimeMeridianParis(t *testing.T) {
	assert.InDelta(t, 2.33722917, Paris.LongitudeRad*r2d, 1e-7)
	assert.InDelta(t, 0.0407919299, Paris.LongitudeRad, 1e-9)
}

func TestPrimeMeridianEqual(t *testing.T) {
	other := NewPrimeMeridian("Greenwich", NewIdentifier("EPSG", "8901"), 0)
	assert.True(t, Greenwich.Equal(other))

	close := NewPrimeMeridian("", Identifier{}, Paris.LongitudeRad+1e-12)
	assert.True(t, Paris.Equal(close))

	assert.False(t, Greenwich.Equal(Paris))
}
