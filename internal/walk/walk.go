// Package walk simulates ensembles of independent 2D random walks.
//
// A simulation run draws one displacement per particle per time step from the
// configured step rule and accumulates positions by prefix summation. Runs are
// fully deterministic given a non-zero seed; boundary handling is layered on
// afterwards by the boundary package.
package walk

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"randomwalk-sim/internal/common"
)

// Dimension is the spatial dimension of every walk. The step rules, boundary
// policies, and the slope = 4D diffusion relation all assume 2D.
const Dimension = 2

// Mode selects the step-generation rule.
type Mode string

const (
	// Lattice draws each step uniformly from the 4-connected neighbor set
	// {(+1,0), (-1,0), (0,+1), (0,-1)}.
	Lattice Mode = "lattice"
	// Continuous draws a direction uniformly from [0, 2π) and takes a step of
	// fixed magnitude StepSize in that direction.
	Continuous Mode = "continuous"
)

// Config holds the parameters of one simulation run.
type Config struct {
	// Particles is the number of independent walkers, N.
	Particles int
	// Steps is the number of time steps, T.
	Steps int
	// Mode is the step-generation rule.
	Mode Mode
	// StepSize is the fixed step magnitude for Continuous mode. Ignored in
	// Lattice mode, where every step has unit length.
	StepSize float64
	// Seed seeds the run's private random source. Zero means seed from the
	// clock; any other value makes the run fully reproducible.
	Seed uint64
}

// Validate checks the configuration eagerly, before any allocation.
func (c Config) Validate() error {
	if c.Particles <= 0 {
		return fmt.Errorf("particle count must be positive, got %d: %w", c.Particles, common.ErrInvalidArgument)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("step count must be positive, got %d: %w", c.Steps, common.ErrInvalidArgument)
	}
	switch c.Mode {
	case Lattice:
	case Continuous:
		if c.StepSize <= 0 {
			return fmt.Errorf("step size must be positive in continuous mode, got %v: %w", c.StepSize, common.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("unknown step mode %q: %w", c.Mode, common.ErrInvalidArgument)
	}
	return nil
}

func (c Config) source() rand.Source {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// PositionArray holds the trajectory of every particle: the element at [t][p]
// is the position of particle p after t steps. A run of T steps over N
// particles has T+1 rows of N two-dimensional vectors, row 0 being each
// particle's start position.
type PositionArray [][]common.Vector

// NumSteps returns T, the number of time steps.
func (a PositionArray) NumSteps() int {
	return len(a) - 1
}

// NumParticles returns N.
func (a PositionArray) NumParticles() int {
	if len(a) == 0 {
		return 0
	}
	return len(a[0])
}

// Clone creates a deep copy of the array.
func (a PositionArray) Clone() PositionArray {
	clone := make(PositionArray, len(a))
	for t, row := range a {
		clone[t] = make([]common.Vector, len(row))
		for p, pos := range row {
			clone[t][p] = pos.Clone()
		}
	}
	return clone
}

// Displacements returns the per-step displacement vectors, the successive
// differences along the time axis. The result has NumSteps rows.
func (a PositionArray) Displacements() [][]common.Vector {
	if len(a) < 2 {
		return nil
	}
	steps := make([][]common.Vector, len(a)-1)
	for t := 1; t < len(a); t++ {
		row := make([]common.Vector, len(a[t]))
		for p, pos := range a[t] {
			prev := a[t-1][p]
			step := common.NewVector(len(pos))
			for i := range pos {
				step[i] = pos[i] - prev[i]
			}
			row[p] = step
		}
		steps[t-1] = row
	}
	return steps
}

// Simulate runs a free-space walk and returns the accumulated positions.
// Row 0 is the origin for every particle; row t is row t-1 plus one fresh
// step per particle.
func Simulate(cfg Config) (PositionArray, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	next, err := newStepFunc(cfg, cfg.source())
	if err != nil {
		return nil, err
	}

	positions := make(PositionArray, cfg.Steps+1)
	positions[0] = make([]common.Vector, cfg.Particles)
	for p := range positions[0] {
		positions[0][p] = common.NewVector(Dimension)
	}

	for t := 1; t <= cfg.Steps; t++ {
		row := make([]common.Vector, cfg.Particles)
		for p := range row {
			step := next()
			prev := positions[t-1][p]
			pos, err := prev.Add(step)
			if err != nil {
				// Steps and positions are both Dimension-sized by construction.
				return nil, fmt.Errorf("accumulating step %d for particle %d: %w", t, p, err)
			}
			row[p] = pos
		}
		positions[t] = row
	}

	return positions, nil
}
