package drift

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate runs the Wright-Fisher model for one population.
//
// The returned trajectory has params.Generations+1 entries and starts with
// params.InitialFrequency. A nil src draws from a freshly seeded source.
func Simulate(params Params, src rand.Source) (Trajectory, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	traj := make(Trajectory, params.Generations+1)
	traj[0] = params.InitialFrequency
	for i := 0; i < params.Generations; i++ {
		traj[i+1] = step(traj[i], params.PopulationSize, src)
	}
	return traj, nil
}

// Step advances one generation: it draws k ~ Binomial(n, p) and returns k/n.
// It rejects the same population sizes and frequencies Simulate does.
func Step(p float64, n int, src rand.Source) (float64, error) {
	if err := (Params{InitialFrequency: p, PopulationSize: n}).Validate(); err != nil {
		return 0, err
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return step(p, n, src), nil
}

func step(p float64, n int, src rand.Source) float64 {
	// Fixation and loss are absorbing.
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	b := distuv.Binomial{N: float64(n), P: p, Src: src}
	k := math.Round(b.Rand())
	k = math.Max(0, math.Min(k, float64(n)))
	return k / float64(n)
}
