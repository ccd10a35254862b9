package kinetics

import "fmt"

const (
	// VolumeScale converts caller volumes (mL) to the model's internal unit and back.
	VolumeScale = 1000.0

	// StoichiometricFactor is the moles of ester produced per mole of triglyceride.
	StoichiometricFactor = 3.0

	DefaultInitialOilVolume = 1000.0
	DefaultRateConstant     = 0.1
	DefaultTotalDuration    = 24.0
	DefaultTimeStep         = 0.5

	// MaxGridPoints bounds the size of a single run.
	MaxGridPoints = 1_000_000
)

// Params are the inputs of a simulation run. Volumes are in mL, times in
// hours and the rate constant in 1/h.
type Params struct {
	InitialOilVolume float64
	RateConstant     float64
	TotalDuration    float64
	TimeStep         float64
}

func DefaultParams() Params {
	return Params{
		InitialOilVolume: DefaultInitialOilVolume,
		RateConstant:     DefaultRateConstant,
		TotalDuration:    DefaultTotalDuration,
		TimeStep:         DefaultTimeStep,
	}
}

func (p Params) String() string {
	return fmt.Sprintf("oil=%gmL k=%g/h duration=%gh dt=%gh",
		p.InitialOilVolume, p.RateConstant, p.TotalDuration, p.TimeStep)
}

// Quantity identifies one of the three reported species.
type Quantity int

const (
	Oil Quantity = iota
	Ester
	Glycerin
)

// Quantities lists every species in chart order.
var Quantities = []Quantity{Oil, Ester, Glycerin}

var quantityInfo = [...]struct {
	symbol string
	name   string
	color  string
}{
	Oil:      {"T", "Oil (triglycerides)", "#ff6384"},
	Ester:    {"E", "Methyl ester (biodiesel)", "#36a2eb"},
	Glycerin: {"G", "Glycerin", "#4bc0c0"},
}

func (q Quantity) valid() bool { return q >= Oil && q <= Glycerin }

// Symbol returns the single-letter concentration symbol (T, E or G).
func (q Quantity) Symbol() string {
	if !q.valid() {
		return "?"
	}
	return quantityInfo[q].symbol
}

// Label is the series label used on charts, e.g. "[T](t)".
func (q Quantity) Label() string {
	return "[" + q.Symbol() + "](t)"
}

func (q Quantity) Name() string {
	if !q.valid() {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
	return quantityInfo[q].name
}

// Color is the fixed hex color of the quantity's series.
func (q Quantity) Color() string {
	if !q.valid() {
		return "#ffffff"
	}
	return quantityInfo[q].color
}

func (q Quantity) String() string {
	return q.Label() + " " + q.Name()
}

// ParseQuantity accepts a symbol (T, E, G) or a lowercase name.
func ParseQuantity(s string) (Quantity, error) {
	switch s {
	case "T", "t", "oil":
		return Oil, nil
	case "E", "e", "ester":
		return Ester, nil
	case "G", "g", "glycerin":
		return Glycerin, nil
	}
	return Oil, fmt.Errorf("kinetics: unknown quantity %q", s)
}

type Point struct {
	Time  float64
	Value float64
}

// Series is one quantity sampled on the run's time grid.
type Series struct {
	Quantity Quantity
	Points   []Point
}

// Result holds the aligned output of a run. Times, Oil, Ester and Glycerin
// always have the same length.
type Result struct {
	Params   Params
	Times    []float64
	Oil      []float64
	Ester    []float64
	Glycerin []float64
}

func (r *Result) Len() int { return len(r.Times) }

// At returns the grid time and the three volumes at index i.
func (r *Result) At(i int) (t, oil, ester, glycerin float64) {
	return r.Times[i], r.Oil[i], r.Ester[i], r.Glycerin[i]
}

// Values returns the volume slice for q. The slice is shared with r.
func (r *Result) Values(q Quantity) []float64 {
	switch q {
	case Ester:
		return r.Ester
	case Glycerin:
		return r.Glycerin
	default:
		return r.Oil
	}
}

// Series builds the (time, value) view of q.
func (r *Result) Series(q Quantity) Series {
	values := r.Values(q)
	points := make([]Point, len(r.Times))
	for i, t := range r.Times {
		points[i] = Point{Time: t, Value: values[i]}
	}
	return Series{Quantity: q, Points: points}
}
