package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/transester/internal/kinetics"
)

var csvHeader = []string{"time_h", "oil_ml", "ester_ml", "glycerin_ml"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteCSV writes one row per grid point with a header line.
func WriteCSV(w io.Writer, res *kinetics.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := 0; i < res.Len(); i++ {
		t, oil, ester, gly := res.At(i)
		row := []string{formatFloat(t), formatFloat(oil), formatFloat(ester), formatFloat(gly)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
