// Package stats derives ensemble statistics from simulated walks: the mean
// squared displacement series and a least-squares diffusion-coefficient
// estimate.
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"randomwalk-sim/internal/common"
	"randomwalk-sim/internal/walk"
)

// MSD computes the mean squared displacement series of a position array.
// The reference point for each particle is its row-0 position, so the result
// holds for walks started anywhere, not just at the origin. The series has
// one entry per time step (length T+1) and MSD(0) is always 0.
func MSD(positions walk.PositionArray) ([]float64, error) {
	if len(positions) == 0 || positions.NumParticles() == 0 {
		return nil, fmt.Errorf("position array must not be empty: %w", common.ErrInvalidArgument)
	}

	n := positions.NumParticles()
	msd := make([]float64, len(positions))
	for t, row := range positions {
		if len(row) != n {
			return nil, fmt.Errorf("position array is ragged: row %d has %d particles, expected %d: %w",
				t, len(row), n, common.ErrInvalidArgument)
		}
		sum := 0.0
		for p, pos := range row {
			sq, err := pos.SquaredDistance(positions[0][p])
			if err != nil {
				return nil, fmt.Errorf("particle %d at step %d: %w", p, t, err)
			}
			sum += sq
		}
		msd[t] = sum / float64(n)
	}
	return msd, nil
}

// DiffusionFit is the result of a diffusion-coefficient estimate.
type DiffusionFit struct {
	// D is the estimated diffusion coefficient, Slope / 4 in 2D.
	D float64
	// Slope and Intercept describe the fitted line MSD(t) ≈ Slope·t + Intercept.
	Slope     float64
	Intercept float64
}

// EstimateDiffusion fits MSD(t) vs t by ordinary least squares over t ≥ tStart
// and converts the slope to a diffusion coefficient via MSD(t) = 4Dt.
// tStart defaults to 1 at the call sites to skip the degenerate t=0 point;
// it must leave at least two points to fit, i.e. tStart < T.
func EstimateDiffusion(msd []float64, tStart int) (DiffusionFit, error) {
	lastT := len(msd) - 1
	if lastT < 1 {
		return DiffusionFit{}, fmt.Errorf("MSD series must cover at least one step, got %d entries: %w",
			len(msd), common.ErrInvalidArgument)
	}
	if tStart < 0 || tStart >= lastT {
		return DiffusionFit{}, fmt.Errorf("fit start %d leaves fewer than two points in a series of %d steps: %w",
			tStart, lastT, common.ErrInvalidArgument)
	}

	ts := make([]float64, 0, lastT-tStart+1)
	values := make([]float64, 0, lastT-tStart+1)
	for t := tStart; t <= lastT; t++ {
		ts = append(ts, float64(t))
		values = append(values, msd[t])
	}

	intercept, slope := stat.LinearRegression(ts, values, nil, false)
	return DiffusionFit{D: slope / 4, Slope: slope, Intercept: intercept}, nil
}
