package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/driftsim/internal/analysis"
	"github.com/san-kum/driftsim/internal/experiment"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func formatTime(t float64) string {
	if math.IsNaN(t) {
		return "-"
	}
	return fmt.Sprintf("%.1f", t)
}

// Summary renders the run parameters and outcome counts as a bordered panel.
func Summary(result *experiment.Result) string {
	cfg := result.Config
	lines := []string{
		titleStyle.Render("genetic drift"),
		row("initial p", fmt.Sprintf("%.3f", cfg.Params.InitialFrequency)),
		row("population size", fmt.Sprintf("%d", cfg.Params.PopulationSize)),
		row("generations", fmt.Sprintf("%d", cfg.Params.Generations)),
		row("populations", fmt.Sprintf("%d", cfg.Populations)),
		row("seed", fmt.Sprintf("%d", cfg.Seed)),
	}

	if out, err := analysis.Outcomes(result.Trajectories); err == nil {
		lines = append(lines,
			"",
			row("fixed", fmt.Sprintf("%d (%.0f%%)", out.Fixed, 100*out.FixedFraction())),
			row("lost", fmt.Sprintf("%d (%.0f%%)", out.Lost, 100*out.LostFraction())),
			row("segregating", fmt.Sprintf("%d", out.Segregating)),
			row("mean fixation t", formatTime(out.MeanFixationTime)),
			row("mean loss t", formatTime(out.MeanLossTime)),
		)
	}

	if stats, err := analysis.Generations(result.Trajectories); err == nil {
		last := stats[len(stats)-1]
		expected := analysis.ExpectedHeterozygosity(cfg.Params.InitialFrequency, cfg.Params.PopulationSize, last.Generation)
		lines = append(lines,
			"",
			row("mean final p", fmt.Sprintf("%.4f", last.Mean)),
			row("H final", fmt.Sprintf("%.4f", last.Heterozygosity)),
			row("H expected", fmt.Sprintf("%.4f", expected)),
		)
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}
