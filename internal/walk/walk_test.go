package walk_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"randomwalk-sim/internal/common"
	"randomwalk-sim/internal/walk"
)

func TestSimulateShape(t *testing.T) {
	positions, err := walk.Simulate(walk.Config{Particles: 5, Steps: 10, Mode: walk.Lattice, Seed: 1})
	require.NoError(t, err)

	require.Len(t, positions, 11, "T steps produce T+1 rows")
	require.Equal(t, 10, positions.NumSteps())
	require.Equal(t, 5, positions.NumParticles())
	for _, row := range positions {
		require.Len(t, row, 5)
		for _, pos := range row {
			require.Equal(t, walk.Dimension, pos.Dimension())
		}
	}
	for _, pos := range positions[0] {
		require.Equal(t, common.Vector{0, 0}, pos, "row 0 must be the origin")
	}
}

func TestSimulateLatticeStepsAreUnitManhattan(t *testing.T) {
	positions, err := walk.Simulate(walk.Config{Particles: 8, Steps: 200, Mode: walk.Lattice, Seed: 3})
	require.NoError(t, err)

	for _, row := range positions.Displacements() {
		for _, step := range row {
			manhattan := math.Abs(step[0]) + math.Abs(step[1])
			require.Equal(t, 1.0, manhattan, "lattice step must have Manhattan length 1")
			require.True(t, step[0] == 0 || step[1] == 0, "lattice step must not be diagonal")
		}
	}
}

func TestSimulateContinuousStepsHaveFixedLength(t *testing.T) {
	const size = 0.7
	positions, err := walk.Simulate(walk.Config{Particles: 6, Steps: 150, Mode: walk.Continuous, StepSize: size, Seed: 11})
	require.NoError(t, err)

	for _, row := range positions.Displacements() {
		for _, step := range row {
			require.InDelta(t, size, step.Norm(), 1e-12, "continuous step must have magnitude StepSize")
		}
	}
}

func TestSimulateDeterministicUnderSeed(t *testing.T) {
	cfg := walk.Config{Particles: 2, Steps: 3, Mode: walk.Lattice, Seed: 42}

	first, err := walk.Simulate(cfg)
	require.NoError(t, err)
	second, err := walk.Simulate(cfg)
	require.NoError(t, err)

	require.Equal(t, first, second, "same seed must reproduce the walk exactly")
}

func TestSimulateSeedsDiverge(t *testing.T) {
	first, err := walk.Simulate(walk.Config{Particles: 10, Steps: 50, Mode: walk.Lattice, Seed: 1})
	require.NoError(t, err)
	second, err := walk.Simulate(walk.Config{Particles: 10, Steps: 50, Mode: walk.Lattice, Seed: 2})
	require.NoError(t, err)

	require.NotEqual(t, first, second, "different seeds should give different walks")
}

func TestSimulateInvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		cfg  walk.Config
	}{
		{"zero particles", walk.Config{Particles: 0, Steps: 5, Mode: walk.Lattice}},
		{"negative particles", walk.Config{Particles: -3, Steps: 5, Mode: walk.Lattice}},
		{"zero steps", walk.Config{Particles: 5, Steps: 0, Mode: walk.Lattice}},
		{"negative steps", walk.Config{Particles: 5, Steps: -1, Mode: walk.Lattice}},
		{"zero step size", walk.Config{Particles: 5, Steps: 5, Mode: walk.Continuous, StepSize: 0}},
		{"negative step size", walk.Config{Particles: 5, Steps: 5, Mode: walk.Continuous, StepSize: -0.5}},
		{"unknown mode", walk.Config{Particles: 5, Steps: 5, Mode: "levy"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := walk.Simulate(tc.cfg)
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrInvalidArgument)
		})
	}
}

func TestDisplacementsRecoverSteps(t *testing.T) {
	positions := walk.PositionArray{
		{{0, 0}, {0, 0}},
		{{1, 0}, {0, -1}},
		{{1, 1}, {-1, -1}},
	}

	steps := positions.Displacements()
	require.Len(t, steps, 2)
	require.Equal(t, common.Vector{1, 0}, steps[0][0])
	require.Equal(t, common.Vector{0, -1}, steps[0][1])
	require.Equal(t, common.Vector{0, 1}, steps[1][0])
	require.Equal(t, common.Vector{-1, 0}, steps[1][1])
}

func TestCloneIsIndependent(t *testing.T) {
	positions, err := walk.Simulate(walk.Config{Particles: 3, Steps: 4, Mode: walk.Lattice, Seed: 9})
	require.NoError(t, err)

	clone := positions.Clone()
	clone[2][1][0] += 100

	require.NotEqual(t, positions[2][1][0], clone[2][1][0])
}
