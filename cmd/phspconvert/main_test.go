package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/particlezoo/phsp/particle"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	f := cmd.Flags()
	f.Float64Var(&projectToX, "projectToX", 0, "")
	f.Float64Var(&projectToY, "projectToY", 0, "")
	f.Float64Var(&projectToZ, "projectToZ", 0, "")
	f.Int32Var(&filterByPDG, "filterByPDG", 0, "")
	f.Float64Var(&minEnergy, "minEnergy", 0, "")
	f.Float64Var(&maxEnergy, "maxEnergy", 0, "")
	return cmd
}

func resetFilterGlobals() {
	photonsOnly = false
	electronsOnly = false
	filterByPDG = 0
	minEnergy = 0
	maxEnergy = 0
}

func TestBuildFilterReturnsNilWithNoPredicatesRequested(t *testing.T) {
	resetFilterGlobals()
	cmd := newTestCommand()

	require.Nil(t, buildFilter(cmd))
}

func TestBuildFilterPhotonsOnly(t *testing.T) {
	resetFilterGlobals()
	photonsOnly = true
	cmd := newTestCommand()

	filter := buildFilter(cmd)
	require.NotNil(t, filter)

	photon := particle.New(particle.Photon, 1, 0, 0, 0, 0, 0, 1, true, 1)
	electron := particle.New(particle.Electron, 1, 0, 0, 0, 0, 0, 1, true, 1)

	require.True(t, filter(photon))
	require.False(t, filter(electron))
}

func TestBuildFilterEnergyRangeIsInclusive(t *testing.T) {
	resetFilterGlobals()
	minEnergy = 1.0
	maxEnergy = 2.0
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("minEnergy", "1.0"))
	require.NoError(t, cmd.Flags().Set("maxEnergy", "2.0"))

	filter := buildFilter(cmd)
	require.NotNil(t, filter)

	require.True(t, filter(particle.New(particle.Photon, 1.0, 0, 0, 0, 0, 0, 1, true, 1)))
	require.True(t, filter(particle.New(particle.Photon, 2.0, 0, 0, 0, 0, 0, 1, true, 1)))
	require.False(t, filter(particle.New(particle.Photon, 0.5, 0, 0, 0, 0, 0, 1, true, 1)))
	require.False(t, filter(particle.New(particle.Photon, 2.5, 0, 0, 0, 0, 0, 1, true, 1)))
}

func TestBuildFilterByPDGRequiresExplicitFlag(t *testing.T) {
	resetFilterGlobals()
	filterByPDG = int32(particle.Proton)
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("filterByPDG", "2212"))

	filter := buildFilter(cmd)
	require.NotNil(t, filter)

	require.True(t, filter(particle.New(particle.Proton, 1, 0, 0, 0, 0, 0, 1, true, 1)))
	require.False(t, filter(particle.New(particle.Photon, 1, 0, 0, 0, 0, 0, 1, true, 1)))
}

func TestBuildFilterCombinesPredicatesWithAND(t *testing.T) {
	resetFilterGlobals()
	photonsOnly = true
	minEnergy = 1.0
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("minEnergy", "1.0"))

	filter := buildFilter(cmd)
	require.NotNil(t, filter)

	require.True(t, filter(particle.New(particle.Photon, 2.0, 0, 0, 0, 0, 0, 1, true, 1)))
	require.False(t, filter(particle.New(particle.Photon, 0.5, 0, 0, 0, 0, 0, 1, true, 1)))
	require.False(t, filter(particle.New(particle.Electron, 2.0, 0, 0, 0, 0, 0, 1, true, 1)))
}
