package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/transester/internal/chart"
	"github.com/san-kum/transester/internal/kinetics"
)

const (
	svgMarginLeft   = 70.0
	svgMarginRight  = 20.0
	svgMarginTop    = 40.0
	svgMarginBottom = 50.0
	svgLegendWidth  = 190.0
)

// ResultToSVG draws the run as three polylines on a shared time axis with the
// value axis starting at zero.
func ResultToSVG(res *kinetics.Result, width, height int) string {
	if res == nil || res.Len() == 0 {
		return ""
	}

	c := chart.New()
	c.SetData(res)
	_, maxY := c.YRange()
	if maxY == 0 {
		maxY = 1
	}
	maxX := res.Times[res.Len()-1]
	if maxX == 0 {
		maxX = 1
	}

	plotW := float64(width) - svgMarginLeft - svgMarginRight - svgLegendWidth
	plotH := float64(height) - svgMarginTop - svgMarginBottom
	px := func(t float64) float64 { return svgMarginLeft + t/maxX*plotW }
	py := func(v float64) float64 { return svgMarginTop + plotH - v/maxY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="24" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>
`, svgMarginLeft+plotW/2, chart.Title))

	// axes
	sb.WriteString(fmt.Sprintf(`<g stroke="#333333" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, px(0), py(0), px(maxX), py(0), px(0), py(0), px(0), py(maxY)))

	sb.WriteString(fmt.Sprintf(`<g font-family="sans-serif" font-size="11" fill="#333333">
<text x="%.1f" y="%.1f" text-anchor="end">0</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.0f</text>
<text x="%.1f" y="%.1f" text-anchor="middle">0</text>
<text x="%.1f" y="%.1f" text-anchor="middle">%g</text>
</g>
`, px(0)-6, py(0)+4, px(0)-6, py(maxY)+4, maxY, px(0), py(0)+16, px(maxX), py(0)+16, maxX))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="13" text-anchor="middle">%s</text>
`, px(maxX/2), float64(height)-12, chart.XAxisTitle))
	sb.WriteString(fmt.Sprintf(`<text x="16" y="%.1f" font-family="sans-serif" font-size="13" text-anchor="middle" transform="rotate(-90 16 %.1f)">%s</text>
`, py(maxY/2), py(maxY/2), chart.YAxisTitle))

	for i, s := range c.Series() {
		color := s.Quantity.Color()
		values := c.Data(s.Quantity)

		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="2" points="`, color))
		for j, t := range res.Times {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(t), py(values[j])))
		}
		sb.WriteString(`"/>
`)

		ly := svgMarginTop + 10 + float64(i)*20
		lx := float64(width) - svgMarginRight - svgLegendWidth + 16
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="12" height="12" fill="%s"/>
<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12">%s</text>
`, lx, ly-10, color, lx+18, ly, s.Label))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func WriteSVG(w io.Writer, res *kinetics.Result, width, height int) error {
	_, err := io.WriteString(w, ResultToSVG(res, width, height))
	return err
}
