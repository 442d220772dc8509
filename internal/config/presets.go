package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		InitialFrequency: DefaultFrequency, PopulationSize: DefaultSize,
		Generations: DefaultGenerations, Populations: DefaultPopulations,
	},
	"small": {
		InitialFrequency: 0.5, PopulationSize: 10, Generations: 100, Populations: 10,
	},
	"large": {
		InitialFrequency: 0.5, PopulationSize: 1000, Generations: 1000, Populations: 5,
	},
	"rare": {
		InitialFrequency: 0.1, PopulationSize: 100, Generations: 500, Populations: 10,
	},
	"common": {
		InitialFrequency: 0.9, PopulationSize: 100, Generations: 500, Populations: 10,
	},
	"fixation": {
		InitialFrequency: 0.5, PopulationSize: 20, Generations: 1000, Populations: 10,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
