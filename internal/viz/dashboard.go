package viz

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/driftsim/internal/config"
	"github.com/san-kum/driftsim/internal/drift"
	"github.com/san-kum/driftsim/internal/experiment"
)

const frameInterval = time.Second / 30

type TickMsg time.Time

type slider struct {
	label string
	value float64
	min   float64
	max   float64
	step  float64
}

func (s *slider) nudge(dir float64) {
	v := s.value + dir*s.step
	v = math.Max(s.min, math.Min(s.max, v))
	// Snap to the step grid so repeated 0.1 steps stay on 0.1, 0.2, ...
	inv := math.Round(1 / s.step)
	s.value = math.Round(v*inv) / inv
}

const (
	sliderFrequency = iota
	sliderSize
	sliderGenerations
	sliderPopulations
)

// Model is the interactive drift dashboard. Changing any slider reruns the
// experiment; playback reveals one generation per frame.
type Model struct {
	sliders  []slider
	selected int
	seed     int64
	result   *experiment.Result
	err      error
	frame    int
	playing  bool
	width    int
}

func NewModel(cfg *config.Config) Model {
	m := Model{
		sliders: []slider{
			{label: "Initial frequency of A", value: cfg.InitialFrequency, min: 0, max: 1, step: config.FrequencyStep},
			{label: "Population size", value: float64(cfg.PopulationSize), min: 0, max: config.MaxSize, step: 1},
			{label: "Number of generations", value: float64(cfg.Generations), min: 0, max: config.MaxGenerations, step: 1},
			{label: "Number of populations", value: float64(cfg.Populations), min: 0, max: config.MaxPopulations, step: 1},
		},
		seed:  cfg.Seed,
		width: 80,
	}
	m.simulate()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) experimentConfig() experiment.Config {
	return experiment.Config{
		Params: drift.Params{
			InitialFrequency: m.sliders[sliderFrequency].value,
			PopulationSize:   int(m.sliders[sliderSize].value),
			Generations:      int(m.sliders[sliderGenerations].value),
		},
		Populations: int(m.sliders[sliderPopulations].value),
		Seed:        m.seed,
	}
}

func (m *Model) simulate() {
	m.result, m.err = experiment.New(m.experimentConfig()).Run(context.Background())
	m.frame = 0
	m.playing = m.err == nil
}

func (m Model) generations() int {
	return int(m.sliders[sliderGenerations].value)
}

// Update handles key input and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.selected = (m.selected + len(m.sliders) - 1) % len(m.sliders)
		case "down", "j", "tab":
			m.selected = (m.selected + 1) % len(m.sliders)
		case "left", "h", "-":
			m.sliders[m.selected].nudge(-1)
			m.simulate()
		case "right", "l", "+", "=":
			m.sliders[m.selected].nudge(1)
			m.simulate()
		case " ":
			if m.frame >= m.generations() {
				m.frame = 0
			}
			m.playing = !m.playing
		case "r":
			m.seed++
			m.simulate()
		case "end":
			m.frame = m.generations()
			m.playing = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TickMsg:
		if m.playing {
			if m.frame < m.generations() {
				m.frame++
			} else {
				m.playing = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Allele frequency changes with genetic drift"))
	b.WriteString("\n\n")

	controls := make([]string, 0, len(m.sliders))
	for i, s := range m.sliders {
		controls = append(controls, m.renderSlider(i, s))
	}
	b.WriteString(panelStyle.Render(strings.Join(controls, "\n")))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.result == nil || len(m.result.Trajectories) == 0:
		b.WriteString(mutedStyle.Render("no populations to show"))
	default:
		opts := DefaultPlotOptions()
		opts.Width = chartWidth(m.width)
		opts.Caption = fmt.Sprintf("t = %d / %d", m.frame, m.generations())
		b.WriteString(Plot(Frame(m.result.Trajectories, m.frame), opts))
	}
	b.WriteString("\n")

	state := "paused"
	if m.playing {
		state = "playing"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s  seed=%d  ↑/↓ select  ←/→ adjust  space play/pause  end skip  r reseed  q quit", state, m.seed)))
	return b.String()
}

func (m Model) renderSlider(i int, s slider) string {
	const barWidth = 30
	frac := 0.0
	if s.max > s.min {
		frac = (s.value - s.min) / (s.max - s.min)
	}
	filled := int(math.Round(frac * barWidth))
	bar := strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)

	value := fmt.Sprintf("%g", s.value)
	if s.step < 1 {
		value = fmt.Sprintf("%.1f", s.value)
	}

	label := labelStyle.Width(24).Render(s.label)
	if i == m.selected {
		return lipgloss.JoinHorizontal(lipgloss.Top, selectedStyle.Render("▸ "), label, selectedStyle.Render(bar), " ", valueStyle.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, "  ", label, mutedStyle.Render(bar), " ", valueStyle.Render(value))
}

func chartWidth(termWidth int) int {
	w := termWidth - 12
	if w < 20 {
		return 20
	}
	if w > 120 {
		return 120
	}
	return w
}
