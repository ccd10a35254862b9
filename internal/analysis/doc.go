// Package analysis derives figures of merit from a kinetics run.
//
//   - [Summarize]: half-life, final conversion, time to a target conversion
//     and per-series statistics
//   - [SweepRateConstant]: final state across a range of rate constants
//
// # Target conversion
//
// The analytic time to reach a conversion is reported alongside the first
// grid point where the sampled run actually reaches it:
//
//	s, err := analysis.Summarize(res, 0.95)
//	if err == nil && s.ReachedAt < 0 {
//	    // horizon too short for 95% conversion
//	}
package analysis
