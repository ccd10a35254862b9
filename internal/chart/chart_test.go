package chart

import (
	"strings"
	"testing"

	"github.com/san-kum/transester/internal/kinetics"
)

func simulate(t *testing.T, p kinetics.Params) *kinetics.Result {
	t.Helper()
	res, err := kinetics.Simulate(p)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	return res
}

func TestSetDataInPlace(t *testing.T) {
	c := New()
	if !c.Empty() {
		t.Fatal("new chart should be empty")
	}
	if got := c.Render(40, 8); got != "no data" {
		t.Errorf("expected placeholder, got %q", got)
	}

	first := simulate(t, kinetics.DefaultParams())
	c.SetData(first)

	handle := c
	p := kinetics.DefaultParams()
	p.RateConstant = 0.3
	p.TotalDuration = 12
	second := simulate(t, p)
	c.SetData(second)

	if handle != c {
		t.Fatal("chart handle changed")
	}
	if c.Updates() != 2 {
		t.Errorf("expected 2 updates, got %d", c.Updates())
	}
	if len(c.Times()) != second.Len() {
		t.Errorf("expected %d times, got %d", second.Len(), len(c.Times()))
	}
	for _, q := range kinetics.Quantities {
		data := c.Data(q)
		if len(data) != second.Len() || data[len(data)-1] != second.Values(q)[second.Len()-1] {
			t.Errorf("%s not replaced by latest run", q.Label())
		}
	}
}

func TestSeriesConfig(t *testing.T) {
	c := New()
	series := c.Series()
	if len(series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(series))
	}

	want := []string{"[T](t)", "[E](t)", "[G](t)"}
	for i, s := range series {
		if s.Quantity != kinetics.Quantities[i] {
			t.Errorf("series %d: expected %v, got %v", i, kinetics.Quantities[i], s.Quantity)
		}
		if !strings.HasPrefix(s.Label, want[i]) {
			t.Errorf("series %d: expected label prefix %q, got %q", i, want[i], s.Label)
		}
	}
}

func TestRender(t *testing.T) {
	c := New()
	c.SetData(simulate(t, kinetics.DefaultParams()))

	out := c.Render(60, 10)
	for _, s := range []string{Title, XAxisTitle, YAxisTitle, "[T](t)", "[E](t)", "[G](t)", "24"} {
		if !strings.Contains(out, s) {
			t.Errorf("render missing %q", s)
		}
	}

	lo, hi := c.YRange()
	if lo != 0 {
		t.Errorf("expected value axis to start at zero, got %f", lo)
	}
	if hi != c.Data(kinetics.Ester)[len(c.Times())-1] {
		t.Errorf("expected axis top at final ester volume, got %f", hi)
	}
}

func TestRenderQuantity(t *testing.T) {
	c := New()
	c.SetData(simulate(t, kinetics.DefaultParams()))

	out := c.RenderQuantity(kinetics.Glycerin, 40, 8)
	if !strings.Contains(out, "[G](t)") {
		t.Error("expected glycerin legend")
	}
	if strings.Contains(out, "[T](t)") {
		t.Error("did not expect oil legend")
	}
}

func TestRenderSinglePoint(t *testing.T) {
	c := New()
	c.SetData(simulate(t, kinetics.Params{InitialOilVolume: 1000, RateConstant: 0.1, TotalDuration: 0, TimeStep: 1}))

	out := c.Render(20, 5)
	if !strings.Contains(out, "[T](t)") {
		t.Error("expected legend on single point chart")
	}
}
