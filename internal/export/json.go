package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/driftsim/internal/analysis"
	"github.com/san-kum/driftsim/internal/experiment"
)

type Data struct {
	InitialFrequency float64                    `json:"p0"`
	PopulationSize   int                        `json:"size"`
	Generations      int                        `json:"generations"`
	Populations      int                        `json:"populations"`
	Seed             int64                      `json:"seed"`
	Trajectories     [][]float64                `json:"trajectories"`
	Metrics          []map[string]float64       `json:"metrics"`
	Stats            []analysis.GenerationStats `json:"stats,omitempty"`
}

func NewData(result *experiment.Result) Data {
	cfg := result.Config
	data := Data{
		InitialFrequency: cfg.Params.InitialFrequency,
		PopulationSize:   cfg.Params.PopulationSize,
		Generations:      cfg.Params.Generations,
		Populations:      cfg.Populations,
		Seed:             cfg.Seed,
		Trajectories:     make([][]float64, len(result.Trajectories)),
		Metrics:          result.Metrics,
	}
	for i, traj := range result.Trajectories {
		data.Trajectories[i] = traj
	}
	if stats, err := analysis.Generations(result.Trajectories); err == nil {
		data.Stats = stats
	}
	return data
}

func WriteJSON(w io.Writer, result *experiment.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewData(result))
}

// WriteFile picks the format from the name: "csv" or "json".
func WriteFile(path, format string, result *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Write(file, format, result); err != nil {
		return err
	}
	return file.Close()
}

func Write(w io.Writer, format string, result *experiment.Result) error {
	switch format {
	case "csv":
		return WriteCSV(w, result.Trajectories)
	case "json":
		return WriteJSON(w, result)
	default:
		return &FormatError{Format: format}
	}
}

type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return "unknown export format: " + e.Format
}
