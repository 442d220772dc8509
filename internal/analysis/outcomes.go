package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/driftsim/internal/drift"
)

type Outcome struct {
	Populations      int     `json:"populations"`
	Fixed            int     `json:"fixed"`
	Lost             int     `json:"lost"`
	Segregating      int     `json:"segregating"`
	MeanFixationTime float64 `json:"mean_fixation_time"`
	MeanLossTime     float64 `json:"mean_loss_time"`
}

// Outcomes classifies every trajectory by its final state. Mean times are NaN
// when no population reached the corresponding boundary.
func Outcomes(trajs []drift.Trajectory) (Outcome, error) {
	if _, err := commonLength(trajs); err != nil {
		return Outcome{}, err
	}

	var fixTimes, lossTimes []float64
	out := Outcome{Populations: len(trajs)}
	for _, traj := range trajs {
		switch traj.Final() {
		case 1:
			out.Fixed++
			fixTimes = append(fixTimes, float64(traj.AbsorbedAt()))
		case 0:
			out.Lost++
			lossTimes = append(lossTimes, float64(traj.AbsorbedAt()))
		default:
			out.Segregating++
		}
	}

	out.MeanFixationTime = meanOrNaN(fixTimes)
	out.MeanLossTime = meanOrNaN(lossTimes)
	return out, nil
}

func (o Outcome) FixedFraction() float64 {
	if o.Populations == 0 {
		return 0
	}
	return float64(o.Fixed) / float64(o.Populations)
}

func (o Outcome) LostFraction() float64 {
	if o.Populations == 0 {
		return 0
	}
	return float64(o.Lost) / float64(o.Populations)
}

func meanOrNaN(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}
