package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/driftsim/internal/drift"
	"github.com/san-kum/driftsim/internal/experiment"
)

func TestGenerations(t *testing.T) {
	trajs := []drift.Trajectory{
		{0.5, 1, 1},
		{0.5, 0, 0},
	}

	stats, err := Generations(trajs)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, 0, stats[0].Generation)
	assert.InDelta(t, 0.5, stats[0].Mean, 1e-12)
	assert.InDelta(t, 0, stats[0].Variance, 1e-12)
	assert.InDelta(t, 0.5, stats[0].Heterozygosity, 1e-12)

	assert.InDelta(t, 0.5, stats[1].Mean, 1e-12)
	assert.InDelta(t, 0.5, stats[1].Variance, 1e-12)
	assert.InDelta(t, 0, stats[2].Heterozygosity, 1e-12)
}

func TestGenerations_SinglePopulation(t *testing.T) {
	stats, err := Generations([]drift.Trajectory{{0.2, 0.4}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats[1].Variance)
	assert.InDelta(t, 0.4, stats[1].Mean, 1e-12)
}

func TestGenerations_Errors(t *testing.T) {
	_, err := Generations(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Generations([]drift.Trajectory{{0.5, 0.5}, {0.5}})
	assert.ErrorIs(t, err, ErrRagged)
}

func TestExpectedHeterozygosity(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedHeterozygosity(0.5, 100, 0), 1e-12)
	assert.InDelta(t, 0.5*math.Pow(0.99, 10), ExpectedHeterozygosity(0.5, 100, 10), 1e-12)
	assert.Equal(t, 0.0, ExpectedHeterozygosity(1, 100, 10))
	assert.True(t, math.IsNaN(ExpectedHeterozygosity(0.5, 0, 10)))
}

func TestOutcomes(t *testing.T) {
	trajs := []drift.Trajectory{
		{0.5, 1, 1, 1},
		{0.5, 0.5, 1, 1},
		{0.5, 0, 0, 0},
		{0.5, 0.5, 0.5, 0.5},
	}

	out, err := Outcomes(trajs)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Populations)
	assert.Equal(t, 2, out.Fixed)
	assert.Equal(t, 1, out.Lost)
	assert.Equal(t, 1, out.Segregating)
	assert.InDelta(t, 1.5, out.MeanFixationTime, 1e-12)
	assert.InDelta(t, 1, out.MeanLossTime, 1e-12)
	assert.InDelta(t, 0.5, out.FixedFraction(), 1e-12)
	assert.InDelta(t, 0.25, out.LostFraction(), 1e-12)
}

func TestOutcomes_NoAbsorption(t *testing.T) {
	out, err := Outcomes([]drift.Trajectory{{0.5, 0.5}})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.MeanFixationTime))
	assert.True(t, math.IsNaN(out.MeanLossTime))
}

func TestHeterozygosityDecay(t *testing.T) {
	const (
		p0   = 0.5
		size = 50
		gens = 20
	)
	cfg := experiment.Config{
		Params:      drift.Params{InitialFrequency: p0, PopulationSize: size, Generations: gens},
		Populations: 2000,
		Seed:        99,
	}
	result, err := experiment.New(cfg).Run(context.Background())
	require.NoError(t, err)

	stats, err := Generations(result.Trajectories)
	require.NoError(t, err)

	want := ExpectedHeterozygosity(p0, size, gens)
	assert.InDelta(t, want, stats[gens].Heterozygosity, 0.03)
	assert.InDelta(t, p0, stats[gens].Mean, 0.03)
}
