// Package drift implements the Wright-Fisher genetic drift model.
//
// A population of N allele copies is resampled every generation: the next
// allele frequency is k/N where k ~ Binomial(N, p) and p is the current
// frequency. The package is a pure function of its inputs plus a random
// source:
//
//   - [Params]: initial frequency, population size and generation count
//   - [Trajectory]: allele frequency at generations 0..n
//   - [Simulate]: one population's trajectory
//   - [Step]: a single generation
//
// # Example
//
//	src := rand.NewPCG(42, 0)
//	traj, err := drift.Simulate(drift.Params{
//	    InitialFrequency: 0.5,
//	    PopulationSize:   100,
//	    Generations:      100,
//	}, src)
//
// # Multiple populations
//
// Simulate holds no state between calls. Independent populations are
// obtained by calling it repeatedly; see the experiment package for a
// seeded, parallel runner.
package drift
