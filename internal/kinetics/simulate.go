package kinetics

import "math"

// gridTolerance is a few ulps, relative. It absorbs representation error when
// TotalDuration is meant to be an exact multiple of TimeStep
// (0.3 / 0.1 = 2.9999999999999996) without rounding up durations that fall
// genuinely short of the next grid point.
const gridTolerance = 4 * 0x1p-52

// Validate checks p field by field and returns the first violation as a
// *ParameterError.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"initial oil volume", p.InitialOilVolume},
		{"rate constant", p.RateConstant},
		{"total duration", p.TotalDuration},
		{"time step", p.TimeStep},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.name, f.value, "must be finite")
		}
	}

	if p.InitialOilVolume <= 0 {
		return invalid("initial oil volume", p.InitialOilVolume, "must be positive")
	}
	if p.RateConstant <= 0 {
		return invalid("rate constant", p.RateConstant, "must be positive")
	}
	if p.TotalDuration < 0 {
		return invalid("total duration", p.TotalDuration, "must not be negative")
	}
	if p.TimeStep <= 0 {
		return invalid("time step", p.TimeStep, "must be positive")
	}
	if steps := gridSteps(p.TotalDuration, p.TimeStep); steps+1 > MaxGridPoints {
		return invalid("time step", p.TimeStep, "grid exceeds maximum number of points")
	}
	return nil
}

// gridSteps returns floor(duration/step), snapping to the nearest integer
// when the quotient is within tolerance of it.
func gridSteps(duration, step float64) float64 {
	q := duration / step
	if r := math.Round(q); math.Abs(q-r) <= gridTolerance*math.Max(1, r) {
		return r
	}
	return math.Floor(q)
}

// GridLen is the number of samples a run with p produces.
func GridLen(p Params) int {
	return int(gridSteps(p.TotalDuration, p.TimeStep)) + 1
}

// Simulate evaluates the integrated first-order rate law on the uniform grid
// t_i = i*TimeStep, 0 <= t_i <= TotalDuration:
//
//	oil(t)      = V0 * exp(-k t)
//	ester(t)    = 3 * V0 * (1 - exp(-k t))
//	glycerin(t) = V0 * (1 - exp(-k t))
//
// Volumes are normalized by VolumeScale before evaluation and rescaled on
// output. Grid times come from the integer index so they never drift, and the
// final sample is exactly TotalDuration when it lies on the grid.
//
// When k*t is large enough for exp(-k t) to underflow, the decay term is 0:
// oil reports 0 and the products report their asymptotes. This is not an
// error.
func Simulate(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := GridLen(p)
	res := &Result{
		Params:   p,
		Times:    make([]float64, n),
		Oil:      make([]float64, n),
		Ester:    make([]float64, n),
		Glycerin: make([]float64, n),
	}

	basis := p.InitialOilVolume / VolumeScale
	for i := 0; i < n; i++ {
		t := float64(i) * p.TimeStep
		if i == n-1 && math.Abs(t-p.TotalDuration) <= gridTolerance*math.Max(1, p.TotalDuration) {
			t = p.TotalDuration
		}
		decay := math.Exp(-p.RateConstant * t)
		consumed := basis * (1 - decay)

		res.Times[i] = t
		res.Oil[i] = basis * decay * VolumeScale
		res.Ester[i] = StoichiometricFactor * consumed * VolumeScale
		res.Glycerin[i] = consumed * VolumeScale
	}

	return res, nil
}

// Conversion is the fraction of the initial oil consumed at time t.
func Conversion(k, t float64) float64 {
	return 1 - math.Exp(-k*t)
}

// HalfLife is the time for half of the oil to react.
func HalfLife(k float64) float64 {
	return math.Ln2 / k
}

// TimeToConversion is the time at which the given fraction (0 <= x < 1) of
// the oil has reacted. It returns +Inf for x >= 1.
func TimeToConversion(k, x float64) float64 {
	if x >= 1 {
		return math.Inf(1)
	}
	return -math.Log1p(-x) / k
}
