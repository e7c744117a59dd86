// Package export renders results as standalone SVG charts.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

// Series is one polyline of a chart. Points with NaN Y are skipped.
type Series struct {
	Name  string
	Color string
	X     []float64
	Y     []float64
}

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	Series []Series
}

const margin = 50

// CurvesToSVG draws every series of c on shared axes.
func CurvesToSVG(c Chart) string {
	minX, maxX, minY, maxY, ok := bounds(c.Series)
	if !ok || c.Width <= 2*margin || c.Height <= 2*margin {
		return ""
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}

	plotW := float64(c.Width - 2*margin)
	plotH := float64(c.Height - 2*margin)
	px := func(x float64) float64 { return margin + (x-minX)/rangeX*plotW }
	py := func(y float64) float64 { return margin + plotH - (y-minY)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="monospace" font-size="11">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, c.Width, c.Height, c.Width, c.Height))

	if c.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" fill="#ffffff" text-anchor="middle" font-size="14">%s</text>
`, c.Width/2, escape(c.Title)))
	}

	// Axes
	sb.WriteString(fmt.Sprintf(`<g stroke="#444466" fill="none">
<line x1="%d" y1="%d" x2="%d" y2="%d"/>
<line x1="%d" y1="%d" x2="%d" y2="%d"/>
</g>
`, margin, margin, margin, c.Height-margin, margin, c.Height-margin, c.Width-margin, c.Height-margin))

	sb.WriteString(`<g fill="#888899">` + "\n")
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle">%s</text>
`, margin, c.Height-margin+15, formatTick(minX)))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle">%s</text>
`, c.Width-margin, c.Height-margin+15, formatTick(maxX)))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end">%s</text>
`, margin-4, c.Height-margin, formatTick(minY)))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end">%s</text>
`, margin-4, margin+4, formatTick(maxY)))
	if c.XLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle">%s</text>
`, c.Width/2, c.Height-margin+30, escape(c.XLabel)))
	}
	if c.YLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" text-anchor="middle" transform="rotate(-90 12 %d)">%s</text>
`, c.Height/2, c.Height/2, escape(c.YLabel)))
	}
	sb.WriteString("</g>\n")

	for i, s := range c.Series {
		var d strings.Builder
		pen := "M"
		for j := range s.X {
			if j >= len(s.Y) || math.IsNaN(s.Y[j]) {
				pen = "M"
				continue
			}
			d.WriteString(fmt.Sprintf("%s%.1f,%.1f ", pen, px(s.X[j]), py(s.Y[j])))
			pen = "L"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, s.Color, strings.TrimSpace(d.String())))

		// Legend
		ly := margin + 14*i
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" text-anchor="end">%s</text>
`, c.Width-margin, ly, s.Color, escape(s.Name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SweepChart plots equilibrium planet temperature (°C) against flux for
// both sweep directions and the lifeless planet.
func SweepChart(res *sim.SweepResult, width, height int) Chart {
	c := Chart{
		Title:  "Equilibrium temperature",
		XLabel: "flux (W/m2)",
		YLabel: "temperature (C)",
		Width:  width,
		Height: height,
	}
	c.Series = append(c.Series, Series{Name: "with life (up)", Color: "#00ff88", X: res.Flux, Y: celsius(res.Ascending)})
	if len(res.Descending) == res.Len() {
		c.Series = append(c.Series, Series{Name: "with life (down)", Color: "#00ccff", X: res.Flux, Y: celsius(res.Descending)})
	}
	c.Series = append(c.Series, Series{Name: "no life", Color: "#ff4444", X: res.Flux, Y: celsius(res.Barren)})
	return c
}

// RunChart plots the planet and local temperatures (°C) of a constant-flux
// run against the generation index.
func RunChart(gens []sim.Generation, width, height int) Chart {
	x := make([]float64, len(gens))
	for i, g := range gens {
		x[i] = float64(g.Index)
	}
	states := sim.States(gens)
	temps := func(f func(daisy.State) float64) []float64 {
		out := make([]float64, len(states))
		for i, s := range states {
			out[i] = f(s) - daisy.ZeroCelsius
		}
		return out
	}
	return Chart{
		Title:  "Temperature by generation",
		XLabel: "generation",
		YLabel: "temperature (C)",
		Width:  width,
		Height: height,
		Series: []Series{
			{Name: "planet", Color: "#ffcc00", X: x, Y: temps(func(s daisy.State) float64 { return s.TempPlanet })},
			{Name: "white", Color: "#ffffff", X: x, Y: temps(func(s daisy.State) float64 { return s.TempWhite })},
			{Name: "black", Color: "#888899", X: x, Y: temps(func(s daisy.State) float64 { return s.TempBlack })},
		},
	}
}

func celsius(states []daisy.State) []float64 {
	out := make([]float64, len(states))
	for i, s := range states {
		out[i] = s.TempPlanet - daisy.ZeroCelsius
	}
	return out
}

func bounds(series []Series) (minX, maxX, minY, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range series {
		for j := range s.X {
			if j >= len(s.Y) || math.IsNaN(s.Y[j]) {
				continue
			}
			minX, maxX = math.Min(minX, s.X[j]), math.Max(maxX, s.X[j])
			minY, maxY = math.Min(minY, s.Y[j]), math.Max(maxY, s.Y[j])
			ok = true
		}
	}
	return
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
