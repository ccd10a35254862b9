package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/transester/internal/kinetics"
)

func defaultRun(t *testing.T) *kinetics.Result {
	t.Helper()
	res, err := kinetics.Simulate(kinetics.DefaultParams())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	return res
}

func TestWriteCSV(t *testing.T) {
	res := defaultRun(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(records) != res.Len()+1 {
		t.Fatalf("expected %d records, got %d", res.Len()+1, len(records))
	}
	if strings.Join(records[0], ",") != "time_h,oil_ml,ester_ml,glycerin_ml" {
		t.Errorf("unexpected header %v", records[0])
	}
	if strings.Join(records[1], ",") != "0.000000,1000.000000,0.000000,0.000000" {
		t.Errorf("unexpected first row %v", records[1])
	}
	if records[len(records)-1][0] != "24.000000" {
		t.Errorf("unexpected final time %v", records[len(records)-1][0])
	}
}

func TestWriteJSON(t *testing.T) {
	res := defaultRun(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if data.Steps != res.Len() || len(data.Glycerin) != res.Len() {
		t.Errorf("expected %d steps, got %d", res.Len(), data.Steps)
	}
	if data.Params.RateConstant != 0.1 || data.Params.TimeStep != 0.5 {
		t.Errorf("unexpected params %+v", data.Params)
	}
	if !strings.Contains(buf.String(), `"initial_oil_volume_ml": 1000`) {
		t.Error("expected indented params block")
	}
}

func TestResultToSVG(t *testing.T) {
	res := defaultRun(t)

	svg := ResultToSVG(res, 800, 480)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("expected a complete svg document")
	}
	if n := strings.Count(svg, "<polyline"); n != 3 {
		t.Errorf("expected 3 polylines, got %d", n)
	}
	for _, s := range []string{"Time (h)", "Volume (mL)", "[T](t)", "[E](t)", "[G](t)", "#ff6384", "#36a2eb", "#4bc0c0"} {
		if !strings.Contains(svg, s) {
			t.Errorf("svg missing %q", s)
		}
	}

	if ResultToSVG(nil, 800, 480) != "" {
		t.Error("expected empty output for nil result")
	}
}
