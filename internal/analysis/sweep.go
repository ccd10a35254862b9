package analysis

import (
	"fmt"

	"github.com/san-kum/transester/internal/kinetics"
)

// SweepPoint is the end state of one run in a rate constant sweep.
type SweepPoint struct {
	RateConstant float64
	HalfLife     float64
	Conversion   float64
	Oil          float64
	Ester        float64
	Glycerin     float64
}

// SweepRateConstant runs base once per rate constant in [kMin, kMax] and
// records the state at the end of the horizon. Rate constants are spaced
// evenly; steps below 2 sweep only kMin.
func SweepRateConstant(base kinetics.Params, kMin, kMax float64, steps int) ([]SweepPoint, error) {
	if kMax < kMin {
		return nil, fmt.Errorf("analysis: sweep range [%g, %g] is empty", kMin, kMax)
	}

	var kStep float64
	if steps < 2 {
		steps = 1
	} else {
		kStep = (kMax - kMin) / float64(steps-1)
	}

	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		p := base
		p.RateConstant = kMin + float64(i)*kStep
		if i == steps-1 && steps > 1 {
			p.RateConstant = kMax
		}

		res, err := kinetics.Simulate(p)
		if err != nil {
			return nil, err
		}
		last := res.Len() - 1
		_, oil, ester, gly := res.At(last)

		points = append(points, SweepPoint{
			RateConstant: p.RateConstant,
			HalfLife:     kinetics.HalfLife(p.RateConstant),
			Conversion:   kinetics.Conversion(p.RateConstant, res.Times[last]),
			Oil:          oil,
			Ester:        ester,
			Glycerin:     gly,
		})
	}
	return points, nil
}

// Conversions returns the conversion column of a sweep, for plotting.
func Conversions(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Conversion
	}
	return out
}
