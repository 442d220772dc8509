package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/driftsim/internal/drift"
	"github.com/san-kum/driftsim/internal/metrics"
)

func TestExperimentRun(t *testing.T) {
	cfg := Config{
		Params:      drift.Params{InitialFrequency: 0.5, PopulationSize: 100, Generations: 50},
		Populations: 5,
		Seed:        42,
	}

	result, err := New(cfg, metrics.Default()...).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Trajectories) != 5 {
		t.Fatalf("expected 5 trajectories, got %d", len(result.Trajectories))
	}
	for i, traj := range result.Trajectories {
		if len(traj) != 51 {
			t.Errorf("population %d: expected 51 entries, got %d", i, len(traj))
		}
		if got := result.Metrics[i][metrics.NameFinalFrequency]; got != traj.Final() {
			t.Errorf("population %d: final_frequency = %v, want %v", i, got, traj.Final())
		}
	}

	if got := len(result.MetricValues(metrics.NameFixed)); got != 5 {
		t.Errorf("expected 5 fixed values, got %d", got)
	}
}

func TestExperimentReproducible(t *testing.T) {
	cfg := Config{
		Params:      drift.Params{InitialFrequency: 0.3, PopulationSize: 20, Generations: 100},
		Populations: 8,
		Seed:        7,
	}

	a, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Trajectories {
		for g := range a.Trajectories[i] {
			if a.Trajectories[i][g] != b.Trajectories[i][g] {
				t.Fatalf("population %d diverges at generation %d", i, g)
			}
		}
	}
}

func TestExperimentPopulationsIndependent(t *testing.T) {
	cfg := Config{
		Params:      drift.Params{InitialFrequency: 0.5, PopulationSize: 1000, Generations: 20},
		Populations: 2,
		Seed:        1,
	}

	result, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for g := range result.Trajectories[0] {
		if result.Trajectories[0][g] != result.Trajectories[1][g] {
			same = false
			break
		}
	}
	if same {
		t.Error("populations produced identical trajectories")
	}
}

func TestExperimentZeroPopulations(t *testing.T) {
	cfg := Config{
		Params: drift.Params{InitialFrequency: 0.5, PopulationSize: 10, Generations: 10},
	}

	result, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Trajectories) != 0 {
		t.Errorf("expected no trajectories, got %d", len(result.Trajectories))
	}
}

func TestExperimentInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero size", Config{Params: drift.Params{InitialFrequency: 0.5}, Populations: 3}, drift.ErrInvalidParameter},
		{"bad frequency", Config{Params: drift.Params{InitialFrequency: 2, PopulationSize: 10}, Populations: 3}, drift.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg).Run(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := New(Config{Params: drift.Params{InitialFrequency: 0.5, PopulationSize: 10}, Populations: -1}).Run(context.Background()); err == nil {
		t.Error("expected error for negative populations")
	}
}

func TestExperimentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{
		Params:      drift.Params{InitialFrequency: 0.5, PopulationSize: 10, Generations: 10},
		Populations: 3,
	}
	if _, err := New(cfg).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.ListMetrics()
	if len(names) != 4 {
		t.Fatalf("expected 4 metrics, got %v", names)
	}
	for _, name := range names {
		fn, err := r.GetMetric(name)
		if err != nil {
			t.Fatalf("GetMetric(%s): %v", name, err)
		}
		if fn().Name() != name {
			t.Errorf("factory for %s built %s", name, fn().Name())
		}
	}

	if _, err := r.GetMetric("nonexistent"); err == nil {
		t.Error("expected error for unknown metric")
	}
}
