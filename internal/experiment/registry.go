package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/driftsim/internal/metrics"
)

type Registry struct {
	metrics map[string]metrics.Factory
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics: make(map[string]metrics.Factory),
	}

	r.metrics[metrics.NameFixationTime] = func() metrics.Metric { return metrics.NewFixationTime() }
	r.metrics[metrics.NameFinalFrequency] = func() metrics.Metric { return metrics.NewFinalFrequency() }
	r.metrics[metrics.NameHeterozygosity] = func() metrics.Metric { return metrics.NewHeterozygosity() }
	r.metrics[metrics.NameFixed] = func() metrics.Metric { return metrics.NewFixed() }

	return r
}

func (r *Registry) GetMetric(name string) (metrics.Factory, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn, nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []metrics.Factory {
	return metrics.Default()
}
