package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/driftsim/internal/drift"
)

var (
	ErrEmpty  = errors.New("analysis: no trajectories")
	ErrRagged = errors.New("analysis: trajectories differ in length")
)

type GenerationStats struct {
	Generation     int     `json:"generation"`
	Mean           float64 `json:"mean"`
	Variance       float64 `json:"variance"`
	Heterozygosity float64 `json:"heterozygosity"`
}

// Generations computes cross-population statistics for every generation.
// Heterozygosity is the mean of 2p(1-p) over populations.
func Generations(trajs []drift.Trajectory) ([]GenerationStats, error) {
	length, err := commonLength(trajs)
	if err != nil {
		return nil, err
	}

	col := make([]float64, len(trajs))
	het := make([]float64, len(trajs))
	out := make([]GenerationStats, length)
	for g := 0; g < length; g++ {
		for i, traj := range trajs {
			col[i] = traj[g]
			het[i] = 2 * traj[g] * (1 - traj[g])
		}

		mean, variance := stat.MeanVariance(col, nil)
		if len(col) < 2 {
			variance = 0
		}
		out[g] = GenerationStats{
			Generation:     g,
			Mean:           mean,
			Variance:       variance,
			Heterozygosity: stat.Mean(het, nil),
		}
	}
	return out, nil
}

// ExpectedHeterozygosity is the Wright-Fisher expectation of 2p(1-p) after t
// generations in a population of n allele copies.
func ExpectedHeterozygosity(p0 float64, n, t int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	return 2 * p0 * (1 - p0) * math.Pow(1-1/float64(n), float64(t))
}

func commonLength(trajs []drift.Trajectory) (int, error) {
	if len(trajs) == 0 {
		return 0, ErrEmpty
	}
	length := len(trajs[0])
	for _, traj := range trajs[1:] {
		if len(traj) != length {
			return 0, ErrRagged
		}
	}
	return length, nil
}
