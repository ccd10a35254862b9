package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/transester/internal/kinetics"
)

var ErrEmptyResult = errors.New("analysis: result has no samples")

// SeriesStats describes one quantity over a run.
type SeriesStats struct {
	Quantity kinetics.Quantity
	Initial  float64
	Final    float64
	Min      float64
	Max      float64
	Mean     float64
}

// Summary condenses a run into the figures an operator looks at: how far
// the reaction got, when it crosses the target conversion and how well the
// products balance against the consumed oil.
type Summary struct {
	Params           kinetics.Params
	Samples          int
	HalfLife         float64
	FinalConversion  float64
	TargetConversion float64
	// TimeToTarget is the analytic crossing time; it may lie past the horizon.
	TimeToTarget float64
	// ReachedAt is the first grid time at or above the target, -1 if never.
	ReachedAt float64
	// BalanceError is the largest |ester/3 - glycerin| over the run, in mL.
	BalanceError float64
	Series       []SeriesStats
}

// Summarize computes a Summary. target is a conversion fraction in (0, 1).
func Summarize(res *kinetics.Result, target float64) (*Summary, error) {
	if res == nil || res.Len() == 0 {
		return nil, ErrEmptyResult
	}
	if target <= 0 || target >= 1 || math.IsNaN(target) {
		return nil, fmt.Errorf("analysis: target conversion must be in (0, 1), got %g", target)
	}

	p := res.Params
	last := res.Len() - 1
	v0 := res.Oil[0]

	s := &Summary{
		Params:           p,
		Samples:          res.Len(),
		HalfLife:         kinetics.HalfLife(p.RateConstant),
		FinalConversion:  1 - res.Oil[last]/v0,
		TargetConversion: target,
		TimeToTarget:     kinetics.TimeToConversion(p.RateConstant, target),
		ReachedAt:        -1,
		Series:           make([]SeriesStats, 0, len(kinetics.Quantities)),
	}

	for i, oil := range res.Oil {
		if 1-oil/v0 >= target {
			s.ReachedAt = res.Times[i]
			break
		}
	}

	for i := range res.Times {
		d := math.Abs(res.Ester[i]/kinetics.StoichiometricFactor - res.Glycerin[i])
		if d > s.BalanceError {
			s.BalanceError = d
		}
	}

	for _, q := range kinetics.Quantities {
		values := res.Values(q)
		s.Series = append(s.Series, SeriesStats{
			Quantity: q,
			Initial:  values[0],
			Final:    values[last],
			Min:      floats.Min(values),
			Max:      floats.Max(values),
			Mean:     stat.Mean(values, nil),
		})
	}

	return s, nil
}

// Stats returns the entry for q.
func (s *Summary) Stats(q kinetics.Quantity) SeriesStats {
	for _, st := range s.Series {
		if st.Quantity == q {
			return st
		}
	}
	return SeriesStats{Quantity: q}
}
