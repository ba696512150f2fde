// Package config provides run configuration for the randomwalk CLI.
// It supports loading from YAML files overlaid on defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"randomwalk-sim/internal/boundary"
	"randomwalk-sim/internal/common"
	"randomwalk-sim/internal/walk"
)

// Config contains all settings for one simulation run.
type Config struct {
	// Walk configures the step generation.
	Walk WalkConfig `yaml:"walk"`

	// Boundary configures the optional boundary policy.
	Boundary BoundaryConfig `yaml:"boundary"`

	// Analysis configures the statistics pass.
	Analysis AnalysisConfig `yaml:"analysis"`
}

// WalkConfig configures the walk simulator.
type WalkConfig struct {
	// Particles is the number of independent walkers.
	Particles int `yaml:"particles"`

	// Steps is the number of time steps.
	Steps int `yaml:"steps"`

	// Mode selects the step rule: "lattice" or "continuous".
	Mode string `yaml:"mode"`

	// StepSize is the fixed step magnitude for continuous mode.
	StepSize float64 `yaml:"step_size,omitempty"`

	// Seed seeds the run. Zero seeds from the clock.
	Seed uint64 `yaml:"seed,omitempty"`
}

// BoundaryConfig configures the boundary policy applied after simulation.
type BoundaryConfig struct {
	// Kind is "periodic", "reflecting", "absorbing", or "" / "none" to run in
	// free space.
	Kind string `yaml:"kind,omitempty"`

	// Bounds is the flat domain layout [minX, maxX, minY, maxY].
	Bounds []float64 `yaml:"bounds,omitempty,flow"`
}

// Enabled reports whether a boundary policy should be applied.
func (b BoundaryConfig) Enabled() bool {
	return b.Kind != "" && b.Kind != "none"
}

// AnalysisConfig configures the MSD fit.
type AnalysisConfig struct {
	// TStart is the first time step included in the diffusion fit. The
	// default of 1 skips the degenerate t=0 point.
	TStart int `yaml:"t_start"`
}

// Default returns a Config with sensible defaults: a seeded-from-the-clock
// lattice walk of 1000 particles over 500 steps, no boundary, fit from t=1.
func Default() *Config {
	return &Config{
		Walk: WalkConfig{
			Particles: 1000,
			Steps:     500,
			Mode:      string(walk.Lattice),
			StepSize:  1.0,
		},
		Boundary: BoundaryConfig{
			Kind: "none",
		},
		Analysis: AnalysisConfig{
			TStart: 1,
		},
	}
}

// Load reads a YAML config file and overlays it on Default. Keys absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// WalkConfig converts the walk section to the simulator's config type.
func (c *Config) WalkConfig() walk.Config {
	return walk.Config{
		Particles: c.Walk.Particles,
		Steps:     c.Walk.Steps,
		Mode:      walk.Mode(c.Walk.Mode),
		StepSize:  c.Walk.StepSize,
		Seed:      c.Walk.Seed,
	}
}

// Validate checks the full configuration eagerly, mirroring the checks the
// simulation packages perform at call entry.
func (c *Config) Validate() error {
	if err := c.WalkConfig().Validate(); err != nil {
		return err
	}
	if c.Boundary.Enabled() {
		switch boundary.Kind(c.Boundary.Kind) {
		case boundary.Periodic, boundary.Reflecting, boundary.Absorbing:
		default:
			return fmt.Errorf("unknown boundary kind %q: %w", c.Boundary.Kind, common.ErrInvalidArgument)
		}
		if err := common.ValidateBounds(c.Boundary.Bounds, walk.Dimension); err != nil {
			return err
		}
	}
	if c.Analysis.TStart < 0 || c.Analysis.TStart >= c.Walk.Steps {
		return fmt.Errorf("fit start %d must lie in [0, %d): %w",
			c.Analysis.TStart, c.Walk.Steps, common.ErrInvalidArgument)
	}
	return nil
}
