// Package kinetics computes the closed-form evolution of a first-order
// transesterification reaction (triglyceride -> 3 ester + glycerin).
//
// The package is the computational core of transester:
//
//   - [Params]: initial oil volume, apparent rate constant, horizon and step
//   - [Simulate]: pure function from [Params] to a [Result]
//   - [Result]: the shared time axis plus oil, ester and glycerin volumes
//   - [Quantity]: the three reported species and their chart metadata
//
// # Example
//
//	p := kinetics.DefaultParams()
//	p.RateConstant = 0.2
//	res, err := kinetics.Simulate(p)
//	if errors.Is(err, kinetics.ErrInvalidParameter) {
//	    // caller input problem, nothing was computed
//	}
//
// # Thread Safety
//
// Simulate holds no state and may be called from any goroutine. A [Result]
// is never mutated after it is returned.
package kinetics
