package automation

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/driftsim/internal/analysis"
	"github.com/san-kum/driftsim/internal/config"
	"github.com/san-kum/driftsim/internal/drift"
	"github.com/san-kum/driftsim/internal/experiment"
	"github.com/san-kum/driftsim/internal/metrics"
)

// Scenario defines a scripted sequence of drift experiments
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single experiment in a scenario. Omitted fields take the
// dashboard defaults.
type Step struct {
	Name             string   `yaml:"name"`
	InitialFrequency float64  `yaml:"p0"`
	PopulationSize   int      `yaml:"size"`
	Generations      int      `yaml:"generations"`
	Populations      int      `yaml:"populations"`
	Seed             int64    `yaml:"seed"`
	Metrics          []string `yaml:"metrics"`
}

func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	type plain Step
	p := plain{
		InitialFrequency: config.DefaultFrequency,
		PopulationSize:   config.DefaultSize,
		Generations:      config.DefaultGenerations,
		Populations:      config.DefaultPopulations,
	}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = Step(p)
	return nil
}

func (s Step) Config() experiment.Config {
	return experiment.Config{
		Params: drift.Params{
			InitialFrequency: s.InitialFrequency,
			PopulationSize:   s.PopulationSize,
			Generations:      s.Generations,
		},
		Populations: s.Populations,
		Seed:        s.Seed,
	}
}

// StepResult pairs a step with its experiment output
type StepResult struct {
	Step    Step
	Result  *experiment.Result
	Outcome analysis.Outcome
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, log *zap.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		log.Info("running step",
			zap.Int("step", i+1),
			zap.Int("of", len(scenario.Steps)),
			zap.String("name", step.Name))

		factories, err := resolveMetrics(registry, step.Metrics)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := experiment.New(step.Config(), factories...).Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Step: step, Result: result}
		if len(result.Trajectories) > 0 {
			if sr.Outcome, err = analysis.Outcomes(result.Trajectories); err != nil {
				return results, fmt.Errorf("step %d analysis: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}

func resolveMetrics(registry *experiment.Registry, names []string) ([]metrics.Factory, error) {
	if len(names) == 0 {
		return registry.DefaultMetrics(), nil
	}
	factories := make([]metrics.Factory, 0, len(names))
	for _, name := range names {
		f, err := registry.GetMetric(name)
		if err != nil {
			return nil, err
		}
		factories = append(factories, f)
	}
	return factories, nil
}
