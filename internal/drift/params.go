package drift

import "math"

// Params configures a single-population simulation.
type Params struct {
	InitialFrequency float64 `json:"p0" yaml:"p0"`
	PopulationSize   int     `json:"size" yaml:"size"`
	Generations      int     `json:"generations" yaml:"generations"`
}

// Validate reports the first parameter the model cannot run with.
func (p Params) Validate() error {
	if p.PopulationSize <= 0 {
		return &ParamError{Name: "population size", Value: float64(p.PopulationSize), Err: ErrInvalidParameter}
	}
	if math.IsNaN(p.InitialFrequency) || p.InitialFrequency < 0 || p.InitialFrequency > 1 {
		return &ParamError{Name: "initial frequency", Value: p.InitialFrequency, Err: ErrOutOfRange}
	}
	if p.Generations < 0 {
		return &ParamError{Name: "generations", Value: float64(p.Generations), Err: ErrOutOfRange}
	}
	return nil
}

// Trajectory is the allele frequency at generations 0..n.
type Trajectory []float64

// Final returns the frequency at the last generation.
func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return math.NaN()
	}
	return t[len(t)-1]
}

// AbsorbedAt returns the first generation at which the allele was fixed or
// lost, or -1 if it is still segregating.
func (t Trajectory) AbsorbedAt() int {
	for i, p := range t {
		if p == 0 || p == 1 {
			return i
		}
	}
	return -1
}
