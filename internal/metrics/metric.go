package metrics

// Metric accumulates a scalar over one population's trajectory.
type Metric interface {
	Name() string
	Observe(gen int, p float64)
	Value() float64
	Reset()
}

// Factory builds a fresh Metric. Populations run concurrently, so each one
// gets its own instances.
type Factory func() Metric

// Default returns the metrics recorded for every population.
func Default() []Factory {
	return []Factory{
		func() Metric { return NewFixationTime() },
		func() Metric { return NewFinalFrequency() },
		func() Metric { return NewHeterozygosity() },
		func() Metric { return NewFixed() },
	}
}

// Build instantiates one Metric per factory.
func Build(factories []Factory) []Metric {
	out := make([]Metric, 0, len(factories))
	for _, f := range factories {
		out = append(out, f())
	}
	return out
}
