package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/transester/internal/kinetics"
)

type ParamsData struct {
	InitialOilVolume float64 `json:"initial_oil_volume_ml"`
	RateConstant     float64 `json:"rate_constant_per_h"`
	TotalDuration    float64 `json:"total_duration_h"`
	TimeStep         float64 `json:"time_step_h"`
}

type ExportData struct {
	Params   ParamsData `json:"params"`
	Steps    int        `json:"steps"`
	Times    []float64  `json:"times"`
	Oil      []float64  `json:"oil"`
	Ester    []float64  `json:"ester"`
	Glycerin []float64  `json:"glycerin"`
}

func NewExportData(res *kinetics.Result) ExportData {
	p := res.Params
	return ExportData{
		Params: ParamsData{
			InitialOilVolume: p.InitialOilVolume,
			RateConstant:     p.RateConstant,
			TotalDuration:    p.TotalDuration,
			TimeStep:         p.TimeStep,
		},
		Steps:    res.Len(),
		Times:    res.Times,
		Oil:      res.Oil,
		Ester:    res.Ester,
		Glycerin: res.Glycerin,
	}
}

func WriteJSON(w io.Writer, res *kinetics.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(res))
}
