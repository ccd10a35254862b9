package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/transester/internal/kinetics"
)

func TestSummarizeDefaults(t *testing.T) {
	res, err := kinetics.Simulate(kinetics.DefaultParams())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	s, err := Summarize(res, 0.5)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	if s.Samples != 49 {
		t.Errorf("expected 49 samples, got %d", s.Samples)
	}
	if math.Abs(s.HalfLife-6.931471805599453) > 1e-9 {
		t.Errorf("expected half-life ln2/0.1, got %f", s.HalfLife)
	}
	if math.Abs(s.FinalConversion-(1-math.Exp(-2.4))) > 1e-9 {
		t.Errorf("unexpected final conversion %f", s.FinalConversion)
	}
	// 6.93 h lies between grid points 6.5 and 7.0.
	if s.ReachedAt != 7 {
		t.Errorf("expected target reached at 7h, got %f", s.ReachedAt)
	}
	if s.BalanceError > 1e-9 {
		t.Errorf("expected balanced products, got error %g", s.BalanceError)
	}

	oil := s.Stats(kinetics.Oil)
	if oil.Initial != 1000 || oil.Max != 1000 || oil.Min != oil.Final {
		t.Errorf("unexpected oil stats %+v", oil)
	}
	ester := s.Stats(kinetics.Ester)
	if ester.Min != 0 || ester.Max != ester.Final {
		t.Errorf("unexpected ester stats %+v", ester)
	}
	if !(ester.Mean > ester.Min && ester.Mean < ester.Max) {
		t.Errorf("ester mean %f outside range", ester.Mean)
	}
}

func TestSummarizeTargetNotReached(t *testing.T) {
	res, err := kinetics.Simulate(kinetics.Params{InitialOilVolume: 100, RateConstant: 0.01, TotalDuration: 5, TimeStep: 1})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	s, err := Summarize(res, 0.95)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if s.ReachedAt != -1 {
		t.Errorf("expected target not reached, got %f", s.ReachedAt)
	}
	if s.TimeToTarget <= 5 {
		t.Errorf("expected analytic crossing past horizon, got %f", s.TimeToTarget)
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize(nil, 0.5); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}

	res, _ := kinetics.Simulate(kinetics.DefaultParams())
	for _, target := range []float64{0, 1, -0.2, math.NaN()} {
		if _, err := Summarize(res, target); err == nil {
			t.Errorf("expected error for target %v", target)
		}
	}
}

func TestSweepRateConstant(t *testing.T) {
	points, err := SweepRateConstant(kinetics.DefaultParams(), 0.05, 0.25, 5)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	if points[0].RateConstant != 0.05 || points[4].RateConstant != 0.25 {
		t.Errorf("unexpected sweep ends %f, %f", points[0].RateConstant, points[4].RateConstant)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Conversion <= points[i-1].Conversion {
			t.Errorf("conversion should rise with k at point %d", i)
		}
		if points[i].Oil >= points[i-1].Oil {
			t.Errorf("remaining oil should fall with k at point %d", i)
		}
	}

	mid := points[2]
	if math.Abs(mid.RateConstant-0.15) > 1e-12 {
		t.Errorf("expected k=0.15 in the middle, got %f", mid.RateConstant)
	}
	if math.Abs(mid.Ester-3*mid.Glycerin) > 1e-9 {
		t.Errorf("ester should be 3x glycerin, got %f and %f", mid.Ester, mid.Glycerin)
	}
	if len(Conversions(points)) != 5 {
		t.Error("conversions column length mismatch")
	}
}

func TestSweepErrors(t *testing.T) {
	if _, err := SweepRateConstant(kinetics.DefaultParams(), 0.2, 0.1, 3); err == nil {
		t.Error("expected error for inverted range")
	}

	_, err := SweepRateConstant(kinetics.DefaultParams(), 0, 0.1, 3)
	if !errors.Is(err, kinetics.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter for k=0, got %v", err)
	}

	points, err := SweepRateConstant(kinetics.DefaultParams(), 0.1, 0.1, 1)
	if err != nil || len(points) != 1 {
		t.Errorf("single step sweep: %v, %d points", err, len(points))
	}
}
