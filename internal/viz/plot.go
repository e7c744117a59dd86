package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/daisyworld/internal/analysis"
	"github.com/san-kum/daisyworld/internal/daisy"
)

// Line is one curve of a terminal plot.
type Line struct {
	Name   string
	Data   []float64
	Color  asciigraph.AnsiColor
	Swatch lipgloss.Color
}

// Plot draws the lines on shared axes followed by a one-line legend.
// Lines without data are dropped.
func Plot(lines []Line, width, height int, caption string) string {
	data := make([][]float64, 0, len(lines))
	colors := make([]asciigraph.AnsiColor, 0, len(lines))
	legend := make([]string, 0, len(lines))
	for _, l := range lines {
		if len(l.Data) == 0 {
			continue
		}
		data = append(data, l.Data)
		colors = append(colors, l.Color)
		legend = append(legend, lipgloss.NewStyle().Foreground(l.Swatch).Render("━ "+l.Name))
	}
	if len(data) == 0 {
		return ""
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	)
	return graph + "\n" + strings.Join(legend, "  ")
}

// Series extracts one field of every state.
func Series(states []daisy.State, f func(daisy.State) float64) []float64 {
	out := make([]float64, len(states))
	for i, x := range states {
		out[i] = f(x)
	}
	return out
}

func planetC(x daisy.State) float64 { return x.TempPlanet - daisy.ZeroCelsius }
func whiteC(x daisy.State) float64 { return x.TempWhite - daisy.ZeroCelsius }
func blackC(x daisy.State) float64 { return x.TempBlack - daisy.ZeroCelsius }
func areaWhite(x daisy.State) float64 { return x.AreaWhite }
func areaBlack(x daisy.State) float64 { return x.AreaBlack }
func areaBare(x daisy.State) float64 { return x.AreaBare }

// TemperatureLines returns the planet, white and black temperatures in °C.
func TemperatureLines(states []daisy.State) []Line {
	return []Line{
		{Name: "planet", Data: Series(states, planetC), Color: asciigraph.Yellow, Swatch: lipgloss.Color("#ffcc00")},
		{Name: "white", Data: Series(states, whiteC), Color: asciigraph.White, Swatch: lipgloss.Color("#ffffff")},
		{Name: "black", Data: Series(states, blackC), Color: asciigraph.Gray, Swatch: lipgloss.Color("#888899")},
	}
}

// AreaLines returns the white, black and bare areas.
func AreaLines(states []daisy.State) []Line {
	return []Line{
		{Name: "white", Data: Series(states, areaWhite), Color: asciigraph.White, Swatch: lipgloss.Color("#ffffff")},
		{Name: "black", Data: Series(states, areaBlack), Color: asciigraph.Gray, Swatch: lipgloss.Color("#888899")},
		{Name: "bare", Data: Series(states, areaBare), Color: asciigraph.Yellow, Swatch: lipgloss.Color("#ffcc00")},
	}
}

// SweepTemperatureLines returns equilibrium planet temperature in °C against
// flux: with life in both directions and without life.
func SweepTemperatureLines(up, down, barren []daisy.State) []Line {
	return []Line{
		{Name: "life (up)", Data: Series(up, planetC), Color: asciigraph.Green, Swatch: lipgloss.Color("#00ff88")},
		{Name: "life (down)", Data: Series(down, planetC), Color: asciigraph.Blue, Swatch: lipgloss.Color("#0088ff")},
		{Name: "no life", Data: Series(barren, planetC), Color: asciigraph.Red, Swatch: lipgloss.Color("#ff4444")},
	}
}

// GrowthLines returns the growth rate of both species over the sampled
// temperatures.
func GrowthLines(points []analysis.GrowthPoint) []Line {
	white := make([]float64, len(points))
	black := make([]float64, len(points))
	for i, pt := range points {
		white[i], black[i] = pt.White, pt.Black
	}
	return []Line{
		{Name: "white", Data: white, Color: asciigraph.White, Swatch: lipgloss.Color("#ffffff")},
		{Name: "black", Data: black, Color: asciigraph.Gray, Swatch: lipgloss.Color("#888899")},
	}
}
