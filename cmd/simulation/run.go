package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"randomwalk-sim/internal/boundary"
	"randomwalk-sim/internal/config"
	"randomwalk-sim/internal/stats"
	"randomwalk-sim/internal/walk"
)

var runFlags struct {
	configPath string
	particles  int
	steps      int
	mode       string
	stepSize   float64
	seed       uint64
	boundary   string
	bounds     []float64
	tStart     int
	output     string
}

// runCmd executes one simulate → boundary → MSD → fit pipeline.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation and estimate the diffusion coefficient",
	Long: `Runs the full pipeline: simulate the walk ensemble, apply the
configured boundary policy, compute the mean squared displacement, and fit
the diffusion coefficient. Flags override values from --config, which in
turn overrides the built-in defaults.`,
	RunE: runSimulation,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.configPath, "config", "c", "", "path to a YAML run configuration")
	f.IntVarP(&runFlags.particles, "particles", "n", 0, "number of independent walkers")
	f.IntVarP(&runFlags.steps, "steps", "t", 0, "number of time steps")
	f.StringVarP(&runFlags.mode, "mode", "m", "", "step rule: lattice or continuous")
	f.Float64Var(&runFlags.stepSize, "step-size", 0, "step magnitude for continuous mode")
	f.Uint64Var(&runFlags.seed, "seed", 0, "random seed (0 seeds from the clock)")
	f.StringVarP(&runFlags.boundary, "boundary", "b", "", "boundary policy: none, periodic, reflecting, or absorbing")
	f.Float64SliceVar(&runFlags.bounds, "bounds", nil, "domain as minX,maxX,minY,maxY")
	f.IntVar(&runFlags.tStart, "t-start", -1, "first time step included in the diffusion fit")
	f.StringVarP(&runFlags.output, "output", "o", "", "write the MSD series to this CSV file")
}

// buildConfig merges defaults, the optional config file, and any flags the
// user actually set, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if runFlags.configPath != "" {
		loaded, err := config.Load(runFlags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("particles") {
		cfg.Walk.Particles = runFlags.particles
	}
	if f.Changed("steps") {
		cfg.Walk.Steps = runFlags.steps
	}
	if f.Changed("mode") {
		cfg.Walk.Mode = runFlags.mode
	}
	if f.Changed("step-size") {
		cfg.Walk.StepSize = runFlags.stepSize
	}
	if f.Changed("seed") {
		cfg.Walk.Seed = runFlags.seed
	}
	if f.Changed("boundary") {
		cfg.Boundary.Kind = runFlags.boundary
	}
	if f.Changed("bounds") {
		cfg.Boundary.Bounds = runFlags.bounds
	}
	if f.Changed("t-start") {
		cfg.Analysis.TStart = runFlags.tStart
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	runID := fmt.Sprintf("run-%s", uuid.NewString()[:8])
	log := logger.With(zap.String("run", runID))
	log.Info("starting simulation",
		zap.Int("particles", cfg.Walk.Particles),
		zap.Int("steps", cfg.Walk.Steps),
		zap.String("mode", cfg.Walk.Mode),
		zap.Uint64("seed", cfg.Walk.Seed),
		zap.String("boundary", cfg.Boundary.Kind),
	)

	positions, err := walk.Simulate(cfg.WalkConfig())
	if err != nil {
		return err
	}

	if cfg.Boundary.Enabled() {
		result, err := boundary.Apply(positions, boundary.Kind(cfg.Boundary.Kind), cfg.Boundary.Bounds)
		if err != nil {
			return err
		}
		positions = result.Positions
		if boundary.Kind(cfg.Boundary.Kind) == boundary.Absorbing {
			absorbed := 0
			for _, active := range result.Active {
				if !active {
					absorbed++
				}
			}
			log.Info("absorbing boundary applied",
				zap.Int("absorbed", absorbed),
				zap.Int("surviving", cfg.Walk.Particles-absorbed),
			)
		}
	}

	msd, err := stats.MSD(positions)
	if err != nil {
		return err
	}
	fit, err := stats.EstimateDiffusion(msd, cfg.Analysis.TStart)
	if err != nil {
		return err
	}

	log.Debug("fit complete",
		zap.Float64("slope", fit.Slope),
		zap.Float64("intercept", fit.Intercept),
	)

	fmt.Printf("--- %s ---\n", runID)
	fmt.Printf("Particles: %d  Steps: %d  Mode: %s\n", cfg.Walk.Particles, cfg.Walk.Steps, cfg.Walk.Mode)
	fmt.Printf("Final MSD: %.4f\n", msd[len(msd)-1])
	fmt.Printf("Diffusion fit (t >= %d): D = %.4f (slope %.4f, intercept %.4f)\n",
		cfg.Analysis.TStart, fit.D, fit.Slope, fit.Intercept)

	if runFlags.output != "" {
		if err := writeMSD(runFlags.output, msd); err != nil {
			return err
		}
		log.Info("wrote MSD series", zap.String("path", runFlags.output))
	}
	return nil
}

// writeMSD writes the MSD series as a two-column CSV (t, msd) for plotting
// collaborators.
func writeMSD(path string, msd []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"t", "msd"}); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for t, value := range msd {
		record := []string{
			strconv.Itoa(t),
			strconv.FormatFloat(value, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
