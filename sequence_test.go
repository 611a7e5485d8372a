package cts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceCollapsesIdentitySteps(t *testing.T) {
	shift := Helmert7{Tx: 1, Ty: 2, Tz: 3}
	seq := NewSequence(Identity(3), shift, Identity(3))
	require.Len(t, seq.Steps(), 1)
	assert.Equal(t, shift.Name(), seq.Steps()[0].Name())
}

func TestSequenceEmptyCollapsesToIdentity(t *testing.T) {
	seq := NewSequence(Identity(2), Identity(2))
	assert.True(t, seq.IsIdentity())
	assert.Equal(t, "identity", seq.Name())
	assert.Equal(t, 2, seq.Arity())
}

func TestSequenceForwardAppliesStepsInOrder(t *testing.T) {
	seq := NewSequence(
		Helmert7{Tx: 1, Ty: 0, Tz: 0},
		Helmert7{Tx: 0, Ty: 10, Tz: 0},
	)
	out, err := seq.Forward(Tuple{0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1, out[0], 1e-9)
	assert.InDelta(t, 10, out[1], 1e-9)
}

func TestSequenceForwardWrapsFailingStepAsDomainError(t *testing.T) {
	seq := NewSequence(NewGridShift(outOfDomainGrid{}, nil))
	_, err := seq.Forward(Tuple{0.1, 0.2})
	require.Error(t, err)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)

	var outOfDomain *OutOfDomainError
	require.ErrorAs(t, Cause(err), &outOfDomain)
}

func TestSequenceInverseReversesAndInvertsSteps(t *testing.T) {
	a := Helmert7{Tx: 5, Ty: 0, Tz: 0}
	b := Helmert7{Tx: 0, Ty: 7, Tz: 0}
	seq := NewSequence(a, b)

	fwd, err := seq.Forward(Tuple{0, 0, 0})
	require.NoError(t, err)

	invOp, err := seq.Inverse()
	require.NoError(t, err)
	back, err := invOp.Forward(fwd)
	require.NoError(t, err)

	assert.InDelta(t, 0, back[0], 1e-9)
	assert.InDelta(t, 0, back[1], 1e-9)
}
