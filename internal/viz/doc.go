// Package viz renders drift trajectories in the terminal.
//
//   - [Plot]: multi-population line chart (asciigraph)
//   - [Frame]: trajectories truncated to a generation, for animation
//   - [Summary]: styled run summary (lipgloss)
//   - [Model]: interactive dashboard (bubbletea)
//
// # Dashboard
//
//	m := viz.NewModel(config.DefaultConfig())
//	_, err := tea.NewProgram(m).Run()
package viz
