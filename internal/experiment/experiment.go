package experiment

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/driftsim/internal/drift"
	"github.com/san-kum/driftsim/internal/metrics"
)

type Config struct {
	Params      drift.Params
	Populations int
	Seed        int64
}

func (c Config) Validate() error {
	if c.Populations < 0 {
		return fmt.Errorf("populations must be non-negative, got %d", c.Populations)
	}
	return c.Params.Validate()
}

type Result struct {
	Config       Config
	Trajectories []drift.Trajectory
	// Metrics holds one map per population, keyed by metric name.
	Metrics []map[string]float64
}

// Experiment simulates independent populations that share one parameter set.
type Experiment struct {
	cfg     Config
	metrics []metrics.Factory
}

func New(cfg Config, factories ...metrics.Factory) *Experiment {
	return &Experiment{cfg: cfg, metrics: factories}
}

// Source returns the random source for population idx of a run seeded with
// seed. Runs are reproducible regardless of goroutine scheduling.
func Source(seed int64, idx int) rand.Source {
	return rand.NewPCG(uint64(seed), uint64(idx))
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	n := e.cfg.Populations
	result := &Result{
		Config:       e.cfg,
		Trajectories: make([]drift.Trajectory, n),
		Metrics:      make([]map[string]float64, n),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			traj, err := drift.Simulate(e.cfg.Params, Source(e.cfg.Seed, i))
			if err != nil {
				return fmt.Errorf("population %d: %w", i, err)
			}

			ms := metrics.Build(e.metrics)
			for gen, p := range traj {
				for _, m := range ms {
					m.Observe(gen, p)
				}
			}
			values := make(map[string]float64, len(ms))
			for _, m := range ms {
				values[m.Name()] = m.Value()
			}

			result.Trajectories[i] = traj
			result.Metrics[i] = values
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// MetricValues collects one metric across all populations.
func (r *Result) MetricValues(name string) []float64 {
	out := make([]float64, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		if v, ok := m[name]; ok {
			out = append(out, v)
		}
	}
	return out
}
