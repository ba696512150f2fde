package walk

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"randomwalk-sim/internal/common"
)

// stepFunc produces the next displacement vector. Successive calls advance
// the run's private random source, so the generator is not safe for
// concurrent use; a run calls it from a single goroutine only.
type stepFunc func() common.Vector

// latticeSteps is the 4-connected neighbor set. Every lattice step has
// Manhattan length exactly 1.
var latticeSteps = [4]common.Vector{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

func newStepFunc(cfg Config, src rand.Source) (stepFunc, error) {
	switch cfg.Mode {
	case Lattice:
		rng := rand.New(src)
		return func() common.Vector {
			return latticeSteps[rng.Intn(len(latticeSteps))].Clone()
		}, nil
	case Continuous:
		angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
		size := cfg.StepSize
		return func() common.Vector {
			theta := angle.Rand()
			return common.Vector{size * math.Cos(theta), size * math.Sin(theta)}
		}, nil
	default:
		return nil, fmt.Errorf("unknown step mode %q: %w", cfg.Mode, common.ErrInvalidArgument)
	}
}
