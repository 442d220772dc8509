package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/san-kum/driftsim/internal/drift"
)

var csvHeader = []string{"pop", "t", "p"}

// WriteCSV writes trajectories in long format, one row per population and
// generation.
func WriteCSV(w io.Writer, trajs []drift.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for pop, traj := range trajs {
		for t, p := range traj {
			row := []string{
				strconv.Itoa(pop),
				strconv.Itoa(t),
				strconv.FormatFloat(p, 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the output of WriteCSV. Rows may appear in any order but
// populations must be numbered 0..m without gaps and each must cover
// generations 0..n without gaps.
func ReadCSV(r io.Reader) ([]drift.Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header")
	}
	if !slices.Equal(records[0], csvHeader) {
		return nil, fmt.Errorf("header %v, want %v", records[0], csvHeader)
	}
	rows := len(records) - 1

	byPop := make(map[int]map[int]float64)
	maxPop := -1
	for i, rec := range records[1:] {
		pop, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: pop: %w", i+2, err)
		}
		t, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: t: %w", i+2, err)
		}
		p, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: p: %w", i+2, err)
		}
		if pop < 0 || t < 0 {
			return nil, fmt.Errorf("row %d: negative index", i+2)
		}
		// Every population has at least one row.
		if pop >= rows || t >= rows {
			return nil, fmt.Errorf("row %d: index exceeds row count %d", i+2, rows)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("row %d: frequency %g outside [0,1]", i+2, p)
		}
		if byPop[pop] == nil {
			byPop[pop] = make(map[int]float64)
		}
		byPop[pop][t] = p
		if pop > maxPop {
			maxPop = pop
		}
	}

	trajs := make([]drift.Trajectory, maxPop+1)
	for pop := range trajs {
		gens := byPop[pop]
		if len(gens) == 0 {
			return nil, fmt.Errorf("population %d: no rows", pop)
		}
		traj := make(drift.Trajectory, len(gens))
		for t := range traj {
			p, ok := gens[t]
			if !ok {
				return nil, fmt.Errorf("population %d: missing generation %d", pop, t)
			}
			traj[t] = p
		}
		trajs[pop] = traj
	}
	return trajs, nil
}
