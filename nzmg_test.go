package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNZMGForwardCoefficientsMatchPublishedValues(t *testing.T) {
	assert.Equal(t, complex(0.7557853228, 0), nzmgForwardCoeffs[1])
	assert.Equal(t, complex(0.249204646, 0.003371507), nzmgForwardCoeffs[2])
	assert.Equal(t, complex(-0.001541739, 0.041058560), nzmgForwardCoeffs[3])
	assert.Equal(t, complex(-0.10162907, 0.01727609), nzmgForwardCoeffs[4])
	assert.Equal(t, complex(-0.26623489, -0.36249218), nzmgForwardCoeffs[5])
	assert.Equal(t, complex(-0.6870983, -0.1140733), nzmgForwardCoeffs[6])
}

func TestNZMGInverseCoefficientsMatchPublishedValues(t *testing.T) {
	assert.Equal(t, complex(1.3231270439, 0), nzmgInverseCoeffs[1])
	assert.Equal(t, complex(-0.577245789, -0.007809598), nzmgInverseCoeffs[2])
	assert.Equal(t, complex(0.508307513, -0.112208952), nzmgInverseCoeffs[3])
	assert.Equal(t, complex(-0.15094762, 0.18200602), nzmgInverseCoeffs[4])
	assert.Equal(t, complex(1.01418179, 1.64497696), nzmgInverseCoeffs[5])
	assert.Equal(t, complex(1.9660549, 2.5127645), nzmgInverseCoeffs[6])
}

func TestNZMGOriginMapsToFalseOrigin(t *testing.T) {
	op := NewNZMG(International1924, NewParamMap())
	out, err := op.Forward(Tuple{-41 * d2r, 173 * d2r})
	require.NoError(t, err)
	assert.InDelta(t, 2510000, out[0], 0.01)
	assert.InDelta(t, 6023150, out[1], 0.01)
}

func TestNZMGRoundTripNearOrigin(t *testing.T) {
	op := NewNZMG(International1924, NewParamMap())
	start := Tuple{-41.5 * d2r, 172.5 * d2r}
	out, err := op.Forward(start)
	require.NoError(t, err)

	inv, err := op.Inverse()
	require.NoError(t, err)
	back, err := inv.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, start[0], back[0], 1e-6)
	assert.InDelta(t, start[1], back[1], 1e-6)
}
