package fphash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/particlezoo/phsp/particle"
)

func TestOfIsStableForIdenticalDeclarations(t *testing.T) {
	a := particle.FixedValues{ZConstant: true, ConstantZ: 100, WeightConstant: true, ConstantWeight: 1}
	b := particle.FixedValues{ZConstant: true, ConstantZ: 100, WeightConstant: true, ConstantWeight: 1}

	require.Equal(t, Of(a), Of(b))
}

func TestOfDiffersOnFlagMismatch(t *testing.T) {
	a := particle.FixedValues{ZConstant: true, ConstantZ: 100}
	b := particle.FixedValues{ZConstant: false, ConstantZ: 100}

	require.NotEqual(t, Of(a), Of(b))
}

func TestOfDiffersOnValueMismatch(t *testing.T) {
	a := particle.FixedValues{ZConstant: true, ConstantZ: 100}
	b := particle.FixedValues{ZConstant: true, ConstantZ: 50}

	require.NotEqual(t, Of(a), Of(b))
}

func TestOfOfZeroValueIsDeterministic(t *testing.T) {
	require.Equal(t, Of(particle.FixedValues{}), Of(particle.FixedValues{}))
}
