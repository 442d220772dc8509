// Package analysis summarizes drift trajectories across populations.
//
// The package includes tools for comparing simulated populations with the
// Wright-Fisher expectations:
//
//   - [Generations]: mean, variance and heterozygosity per generation
//   - [ExpectedHeterozygosity]: 2p0(1-p0)(1-1/N)^t
//   - [Outcomes]: fixation and loss counts and mean absorption times
//
// # Fixation probability
//
// Under neutral drift an allele fixes with probability equal to its initial
// frequency:
//
//	out, _ := analysis.Outcomes(result.Trajectories)
//	estimate := out.FixedFraction() // close to p0 for many populations
package analysis
