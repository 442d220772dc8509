package optim

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/driftsim/internal/analysis"
	"github.com/san-kum/driftsim/internal/drift"
	"github.com/san-kum/driftsim/internal/experiment"
	"github.com/san-kum/driftsim/internal/metrics"
)

// Sweep runs one experiment per (size, frequency) grid point.
type Sweep struct {
	Sizes       []int
	Frequencies []float64
	Generations int
	Populations int
	Seed        int64
}

type Point struct {
	Size                   int     `json:"size"`
	Frequency              float64 `json:"p0"`
	FixedFraction          float64 `json:"fixed_fraction"`
	LostFraction           float64 `json:"lost_fraction"`
	MeanHeterozygosity     float64 `json:"mean_heterozygosity"`
	FinalHeterozygosity    float64 `json:"final_heterozygosity"`
	ExpectedHeterozygosity float64 `json:"expected_heterozygosity"`
}

func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	if len(s.Sizes) == 0 || len(s.Frequencies) == 0 {
		return nil, fmt.Errorf("sweep needs at least one size and one frequency")
	}
	if s.Populations <= 0 {
		return nil, fmt.Errorf("sweep needs at least one population, got %d", s.Populations)
	}

	points := make([]Point, 0, len(s.Sizes)*len(s.Frequencies))
	for _, size := range s.Sizes {
		for _, p0 := range s.Frequencies {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			cfg := experiment.Config{
				Params:      drift.Params{InitialFrequency: p0, PopulationSize: size, Generations: s.Generations},
				Populations: s.Populations,
				Seed:        s.Seed,
			}
			result, err := experiment.New(cfg, metrics.Default()...).Run(ctx)
			if err != nil {
				return nil, fmt.Errorf("size=%d p0=%g: %w", size, p0, err)
			}

			pt, err := summarize(result)
			if err != nil {
				return nil, err
			}
			points = append(points, pt)
		}
	}
	return points, nil
}

func summarize(result *experiment.Result) (Point, error) {
	params := result.Config.Params
	out, err := analysis.Outcomes(result.Trajectories)
	if err != nil {
		return Point{}, err
	}
	stats, err := analysis.Generations(result.Trajectories)
	if err != nil {
		return Point{}, err
	}

	het := result.MetricValues(metrics.NameHeterozygosity)
	mean := 0.0
	if len(het) > 0 {
		mean = stat.Mean(het, nil)
	}

	return Point{
		Size:                   params.PopulationSize,
		Frequency:              params.InitialFrequency,
		FixedFraction:          out.FixedFraction(),
		LostFraction:           out.LostFraction(),
		MeanHeterozygosity:     mean,
		FinalHeterozygosity:    stats[len(stats)-1].Heterozygosity,
		ExpectedHeterozygosity: analysis.ExpectedHeterozygosity(params.InitialFrequency, params.PopulationSize, params.Generations),
	}, nil
}

// Best returns the point minimizing score.
func Best(points []Point, score func(Point) float64) (Point, bool) {
	best := math.Inf(1)
	var bestPoint Point
	found := false
	for _, pt := range points {
		if v := score(pt); v < best {
			best = v
			bestPoint = pt
			found = true
		}
	}
	return bestPoint, found
}

// HeterozygosityError scores how far the simulated final heterozygosity is
// from the Wright-Fisher expectation.
func HeterozygosityError(pt Point) float64 {
	return math.Abs(pt.FinalHeterozygosity - pt.ExpectedHeterozygosity)
}
