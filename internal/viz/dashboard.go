package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/daisyworld/internal/analysis"
	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

type Tab int

const (
	TabConstant Tab = iota
	TabVarying
)

func (t Tab) String() string {
	if t == TabVarying {
		return "varying flux"
	}
	return "constant flux"
}

const growthCaption = "growth rate by temperature (°C)"

// slider indices
const (
	sliderWhite = iota
	sliderBlack
	sliderSoil
	sliderInsulation
	sliderDistance
)

// Options configures a dashboard. Params carries everything the sliders do
// not control.
type Options struct {
	Params      daisy.Params
	DistanceAU  float64
	Generations int
	Sweep       sim.SweepSpec
	Theme       string
}

type Dashboard struct {
	base        daisy.Params
	generations int
	sweepSpec   sim.SweepSpec

	tab     Tab
	sliders [2][]Slider
	cursor  [2]int
	theme   int

	gens  []sim.Generation
	sweep *sim.SweepResult
	err   error

	width, height int
}

func NewDashboard(opts Options) (*Dashboard, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Sweep.Validate(); err != nil {
		return nil, err
	}
	if opts.Generations < 1 {
		return nil, fmt.Errorf("%w, got %d", daisy.ErrInvalidGenerations, opts.Generations)
	}
	if opts.DistanceAU == 0 {
		opts.DistanceAU = 1
	}
	flux, err := daisy.FluxAtDistance(opts.Params.FluxNominal, opts.DistanceAU)
	if err != nil {
		return nil, err
	}
	if err := daisy.CheckFlux(flux); err != nil {
		return nil, err
	}

	a := opts.Params.Albedo
	albedoSliders := func() []Slider {
		return []Slider{
			NewSlider("white albedo", 0.5, 1, 0.05, a.White),
			NewSlider("black albedo", 0, 0.5, 0.05, a.Black),
			NewSlider("soil albedo", 0.3, 0.7, 0.01, a.None),
			NewSlider("insulation", 0, 1, 0.05, opts.Params.Insulation),
		}
	}

	d := &Dashboard{
		base:        opts.Params,
		generations: opts.Generations,
		sweepSpec:   opts.Sweep,
		theme:       themeIndex(opts.Theme),
		width:       100,
		height:      40,
	}
	d.sliders[TabConstant] = append(albedoSliders(), NewSlider("distance (AU)", 0.8, 1.2, 0.01, opts.DistanceAU))
	d.sliders[TabVarying] = albedoSliders()

	d.recompute()
	return d, nil
}

// Params builds the parameter set of a tab from its sliders.
func (d *Dashboard) Params(t Tab) daisy.Params {
	s := d.sliders[t]
	p := d.base
	p.Albedo = daisy.Albedo{
		White: s[sliderWhite].Value,
		Black: s[sliderBlack].Value,
		None:  s[sliderSoil].Value,
	}
	p.Insulation = s[sliderInsulation].Value
	return p
}

// Flux is the stellar flux of the constant-flux tab.
func (d *Dashboard) Flux() (float64, error) {
	return daisy.FluxAtDistance(d.base.FluxNominal, d.sliders[TabConstant][sliderDistance].Value)
}

func (d *Dashboard) Tab() Tab                      { return d.tab }
func (d *Dashboard) Sliders(t Tab) []Slider        { return d.sliders[t] }
func (d *Dashboard) Generations() []sim.Generation { return d.gens }
func (d *Dashboard) Sweep() *sim.SweepResult       { return d.sweep }
func (d *Dashboard) Err() error                    { return d.err }

func (d *Dashboard) recompute() {
	d.err = nil
	switch d.tab {
	case TabConstant:
		flux, err := d.Flux()
		if err != nil {
			d.err = err
			return
		}
		d.gens, d.err = sim.RunConstantFlux(d.Params(TabConstant), flux, d.generations)
	case TabVarying:
		p := d.Params(TabVarying)
		d.sweep, d.err = sim.RunFluxSweep(p, p.FluxNominal, d.sweepSpec)
	}
}

func (d *Dashboard) Init() tea.Cmd { return nil }

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKey(msg)
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
	}
	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sliders := d.sliders[d.tab]
	cur := &d.cursor[d.tab]

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return d, tea.Quit
	case "tab":
		d.switchTab((d.tab + 1) % 2)
	case "1":
		d.switchTab(TabConstant)
	case "2":
		d.switchTab(TabVarying)
	case "up", "k":
		if *cur > 0 {
			*cur--
		}
	case "down", "j":
		if *cur < len(sliders)-1 {
			*cur++
		}
	case "left", "h":
		d.nudge(-1)
	case "right", "l":
		d.nudge(1)
	case "r":
		for i := range sliders {
			sliders[i].Reset()
		}
		d.recompute()
	case "t":
		d.theme = (d.theme + 1) % len(Themes)
	}
	return d, nil
}

func (d *Dashboard) switchTab(t Tab) {
	if t == d.tab {
		return
	}
	d.tab = t
	d.recompute()
}

func (d *Dashboard) nudge(n int) {
	s := &d.sliders[d.tab][d.cursor[d.tab]]
	before := s.Value
	s.Nudge(n)
	if s.Value != before {
		d.recompute()
	}
}

func (d *Dashboard) View() string {
	theme := Themes[d.theme]
	var b strings.Builder

	b.WriteString("\n  " + GradientText("DAISYWORLD", theme.Primary, theme.Secondary) + "  ")
	for t := TabConstant; t <= TabVarying; t++ {
		label := fmt.Sprintf(" %d %s ", int(t)+1, t)
		if t == d.tab {
			b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Underline(true).Render(label))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Muted).Render(label))
		}
	}
	b.WriteString("\n  " + Separator(max(d.width-4, 20)) + "\n\n")

	for i, s := range d.sliders[d.tab] {
		marker, name := "  ", lipgloss.NewStyle().Foreground(theme.Muted).Render(fmt.Sprintf("%-14s", s.Label))
		if i == d.cursor[d.tab] {
			marker = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("▸ ")
			name = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%-14s", s.Label))
		}
		b.WriteString(fmt.Sprintf("  %s%s %s %s\n", marker, name, ProgressBar(s.Fraction(), 24), MetricValue.Render(fmt.Sprintf("%.2f", s.Value))))
	}
	b.WriteString("\n")

	if d.err != nil {
		b.WriteString("  " + ErrorText.Render(d.err.Error()) + "\n")
	} else {
		plotW := max(d.width-16, 30)
		plotH := max((d.height-20)/2, 5)
		switch d.tab {
		case TabConstant:
			b.WriteString(d.viewConstant(plotW, plotH))
		case TabVarying:
			b.WriteString(d.viewVarying(plotW, plotH))
		}
	}

	b.WriteString("\n  " + KeyHint.Render("tab switch  j/k select  h/l adjust  r reset  t theme  q quit") + "\n")
	return b.String()
}

func (d *Dashboard) viewConstant(w, h int) string {
	if len(d.gens) == 0 {
		return ""
	}
	states := sim.States(d.gens)
	final := states[len(states)-1]
	flux, _ := d.Flux()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n\n",
		MetricLabel.Render("flux"), MetricValue.Render(fmt.Sprintf("%.0f W/m²", flux)),
		MetricLabel.Render("planet"), MetricValue.Render(fmt.Sprintf("%.1f °C", final.TempPlanet-daisy.ZeroCelsius)),
		MetricLabel.Render("daisies"), MetricValue.Render(fmt.Sprintf("%.0f%%", 100*final.Coverage())),
	))
	b.WriteString(Plot(TemperatureLines(states), w, h, "temperature (°C) by generation") + "\n\n")
	b.WriteString(Plot(AreaLines(states), w, h, "area fraction by generation") + "\n")

	growth, err := analysis.GrowthCurve(d.Params(TabConstant), analysis.DefaultGrowthFrom, analysis.DefaultGrowthTo, analysis.DefaultGrowthIntervals)
	if err == nil {
		b.WriteString("\n" + Plot(GrowthLines(growth), w, h, growthCaption) + "\n")
	}
	return b.String()
}

func (d *Dashboard) viewVarying(w, h int) string {
	if d.sweep == nil || d.sweep.Len() == 0 {
		return ""
	}
	res := d.sweep

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		MetricLabel.Render("flux"), MetricValue.Render(fmt.Sprintf("%.0f-%.0f W/m²", res.Flux[0], res.Flux[res.Len()-1])),
		MetricLabel.Render("points"), MetricValue.Render(fmt.Sprintf("%d", res.Len())),
	))
	if rep, err := analysis.Hysteresis(res, analysis.DefaultHysteresisTolerance); err == nil && len(rep.Loops) > 0 {
		loops := make([]string, len(rep.Loops))
		for i, l := range rep.Loops {
			loops[i] = fmt.Sprintf("%.0f-%.0f", l.FluxLow, l.FluxHigh)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", MetricLabel.Render("hysteresis"), MetricValue.Render(strings.Join(loops, ", "))))
	}
	b.WriteString("\n")
	b.WriteString(Plot(SweepTemperatureLines(res.Ascending, res.Descending, res.Barren), w, h, "equilibrium temperature (°C) by flux") + "\n\n")
	b.WriteString(Plot(AreaLines(res.Ascending), w, h, "equilibrium area by flux (ascending)") + "\n")
	return b.String()
}

// RunDashboard opens the dashboard in the alternate screen and blocks until
// the user quits.
func RunDashboard(opts Options) error {
	d, err := NewDashboard(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(d, tea.WithAltScreen()).Run()
	return err
}
