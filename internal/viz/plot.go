package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/driftsim/internal/drift"
)

var palette = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Orange,
	asciigraph.Purple,
}

type PlotOptions struct {
	Width   int
	Height  int
	Caption string
	Color   bool
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 80, Height: 15, Caption: "allele frequency p vs generation t", Color: true}
}

// Frame returns every trajectory truncated to generations 0..f.
func Frame(trajs []drift.Trajectory, f int) [][]float64 {
	out := make([][]float64, 0, len(trajs))
	for _, traj := range trajs {
		end := f + 1
		if end > len(traj) {
			end = len(traj)
		}
		if end < 0 {
			end = 0
		}
		out = append(out, traj[:end])
	}
	return out
}

// Plot draws all series on one chart with the y axis fixed to [0,1].
// It returns "" when there is nothing to draw.
func Plot(series [][]float64, opts PlotOptions) string {
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		switch len(s) {
		case 0:
			continue
		case 1:
			data = append(data, []float64{s[0], s[0]})
		default:
			data = append(data, s)
		}
	}
	if len(data) == 0 {
		return ""
	}

	options := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
	}
	if opts.Width > 0 {
		options = append(options, asciigraph.Width(opts.Width))
	}
	if opts.Caption != "" {
		options = append(options, asciigraph.Caption(opts.Caption))
	}
	if opts.Color {
		colors := make([]asciigraph.AnsiColor, len(data))
		for i := range colors {
			colors[i] = palette[i%len(palette)]
		}
		options = append(options, asciigraph.SeriesColors(colors...))
	}

	return asciigraph.PlotMany(data, options...)
}

func PlotTrajectories(trajs []drift.Trajectory, opts PlotOptions) string {
	series := make([][]float64, len(trajs))
	for i, traj := range trajs {
		series[i] = traj
	}
	return Plot(series, opts)
}
