package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	MetricValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	MetricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	KeyHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
	ErrorText   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)

	// Slider bar colors
	BarHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	BarMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	BarLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// GradientText colors each rune of text on a line from startColor to endColor.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)

	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// ProgressBar renders a bar filled to percent, colored by level.
func ProgressBar(percent float64, width int) string {
	filled := int(percent*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.66 {
		return BarHigh.Render(bar)
	} else if percent > 0.33 {
		return BarMid.Render(bar)
	}
	return BarLow.Render(bar)
}

func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return Subtle.Render(left + " ✿ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		if c >= '0' && c <= '9' {
			val += int(c - '0')
		} else if c >= 'a' && c <= 'f' {
			val += int(c - 'a' + 10)
		} else if c >= 'A' && c <= 'F' {
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
