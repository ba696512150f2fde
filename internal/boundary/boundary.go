// Package boundary applies domain-boundary policies to simulated walks.
//
// Periodic wrapping is a pure post-process over the whole position array.
// Reflecting and absorbing corrections must replay the walk step by step,
// because the legality of each step depends on the corrected position from
// the previous one.
package boundary

import (
	"fmt"
	"math"

	"randomwalk-sim/internal/common"
	"randomwalk-sim/internal/walk"
)

// Kind selects the boundary policy.
type Kind string

const (
	// Periodic wraps each coordinate into [min, max) by modular arithmetic.
	Periodic Kind = "periodic"
	// Reflecting folds out-of-range coordinates back across the violated
	// bound, preserving step magnitude.
	Reflecting Kind = "reflecting"
	// Absorbing deactivates a particle the first time a tentative step leaves
	// [min, max] on either axis and freezes it at its last in-bounds position.
	Absorbing Kind = "absorbing"
)

// Result is the outcome of applying a boundary policy.
type Result struct {
	// Positions is the corrected position array, same shape as the input.
	Positions walk.PositionArray
	// Active reports, per particle, whether it was still receiving updates at
	// the end of the run. All-true except under the absorbing policy. Once a
	// particle's entry goes false it never comes back.
	Active []bool
}

// Apply runs the chosen policy over a free-space position array. The bounds
// slice uses the flat [minX, maxX, minY, maxY] layout. The input array is not
// modified.
func Apply(positions walk.PositionArray, kind Kind, bounds []float64) (*Result, error) {
	if len(positions) == 0 || positions.NumParticles() == 0 {
		return nil, fmt.Errorf("position array must not be empty: %w", common.ErrInvalidArgument)
	}
	n := positions.NumParticles()
	for t, row := range positions {
		if len(row) != n {
			return nil, fmt.Errorf("position array is ragged: row %d has %d particles, expected %d: %w",
				t, len(row), n, common.ErrInvalidArgument)
		}
		for p, pos := range row {
			if pos.Dimension() != walk.Dimension {
				return nil, fmt.Errorf("particle %d at step %d has dimension %d, expected %d: %w",
					p, t, pos.Dimension(), walk.Dimension, common.ErrInvalidArgument)
			}
		}
	}
	if err := common.ValidateBounds(bounds, walk.Dimension); err != nil {
		return nil, err
	}

	switch kind {
	case Periodic:
		return applyPeriodic(positions, bounds), nil
	case Reflecting:
		return applyReflecting(positions, bounds), nil
	case Absorbing:
		return applyAbsorbing(positions, bounds), nil
	default:
		return nil, fmt.Errorf("unknown boundary kind %q: %w", kind, common.ErrInvalidArgument)
	}
}

// applyPeriodic wraps every coordinate independently. Order does not matter,
// so the whole array is processed in one pass, row 0 included.
func applyPeriodic(positions walk.PositionArray, bounds []float64) *Result {
	out := positions.Clone()
	for _, row := range out {
		for _, pos := range row {
			for axis := range pos {
				pos[axis] = wrap(pos[axis], bounds[axis*2], bounds[axis*2+1])
			}
		}
	}
	return &Result{Positions: out, Active: allActive(positions.NumParticles())}
}

// applyReflecting replays the walk in time order. Each tentative position is
// the previous corrected position plus the original step; coordinates beyond
// a bound fold back across it.
func applyReflecting(positions walk.PositionArray, bounds []float64) *Result {
	n := positions.NumParticles()
	out := make(walk.PositionArray, len(positions))
	out[0] = clonePositionRow(positions[0])

	for t := 1; t < len(positions); t++ {
		row := make([]common.Vector, n)
		for p := 0; p < n; p++ {
			prev := out[t-1][p]
			pos := common.NewVector(walk.Dimension)
			for axis := 0; axis < walk.Dimension; axis++ {
				step := positions[t][p][axis] - positions[t-1][p][axis]
				pos[axis] = reflect(prev[axis]+step, bounds[axis*2], bounds[axis*2+1])
			}
			row[p] = pos
		}
		out[t] = row
	}
	return &Result{Positions: out, Active: allActive(n)}
}

// applyAbsorbing replays the walk in time order, freezing each particle at its
// last in-bounds position the first time a tentative step leaves the domain.
// The offending step is discarded, not clipped.
func applyAbsorbing(positions walk.PositionArray, bounds []float64) *Result {
	n := positions.NumParticles()
	active := allActive(n)
	out := make(walk.PositionArray, len(positions))

	out[0] = clonePositionRow(positions[0])
	for p, pos := range out[0] {
		if !inBounds(pos, bounds) {
			active[p] = false
		}
	}

	for t := 1; t < len(positions); t++ {
		row := make([]common.Vector, n)
		for p := 0; p < n; p++ {
			prev := out[t-1][p]
			if !active[p] {
				row[p] = prev.Clone()
				continue
			}
			pos := common.NewVector(walk.Dimension)
			for axis := 0; axis < walk.Dimension; axis++ {
				step := positions[t][p][axis] - positions[t-1][p][axis]
				pos[axis] = prev[axis] + step
			}
			if inBounds(pos, bounds) {
				row[p] = pos
			} else {
				active[p] = false
				row[p] = prev.Clone()
			}
		}
		out[t] = row
	}
	return &Result{Positions: out, Active: active}
}

// wrap maps value into [min, max) via modular arithmetic. In-range values
// pass through untouched, which keeps repeated application exact.
func wrap(value, min, max float64) float64 {
	if value >= min && value < max {
		return value
	}
	width := max - min
	m := math.Mod(value-min, width)
	if m < 0 {
		m += width
	}
	wrapped := min + m
	if wrapped >= max {
		// min + m can round up to max when m is within one ulp of width.
		wrapped = min
	}
	return wrapped
}

// reflect folds value back across whichever bound it exceeds until it lies in
// [min, max]. A single fold suffices unless one step overshoots the domain by
// more than its span.
func reflect(value, min, max float64) float64 {
	for value < min || value > max {
		if value > max {
			value = 2*max - value
		} else {
			value = 2*min - value
		}
	}
	return value
}

func inBounds(pos common.Vector, bounds []float64) bool {
	for axis, v := range pos {
		if v < bounds[axis*2] || v > bounds[axis*2+1] {
			return false
		}
	}
	return true
}

func allActive(n int) []bool {
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	return active
}

func clonePositionRow(row []common.Vector) []common.Vector {
	clone := make([]common.Vector, len(row))
	for i, pos := range row {
		clone[i] = pos.Clone()
	}
	return clone
}
