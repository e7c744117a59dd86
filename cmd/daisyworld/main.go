package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/daisyworld/internal/analysis"
	"github.com/san-kum/daisyworld/internal/config"
	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/export"
	"github.com/san-kum/daisyworld/internal/logging"
	"github.com/san-kum/daisyworld/internal/metrics"
	"github.com/san-kum/daisyworld/internal/optim"
	"github.com/san-kum/daisyworld/internal/sim"
	"github.com/san-kum/daisyworld/internal/storage"
	"github.com/san-kum/daisyworld/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string
	logger     *log.Logger

	// planet and daisies
	distance    float64
	flux        float64
	albedoWhite float64
	albedoBlack float64
	albedoSoil  float64
	insulation  float64
	generations int

	// sweep
	sweepMin   float64
	sweepMax   float64
	sweepStep  float64
	sweepGens  int
	noReverse  bool
	hystTol    float64
	showPlot   bool
	noSave     bool
	plotWidth  int
	plotHeight int

	// growth curve
	growthFrom      float64
	growthTo        float64
	growthIntervals int

	// grid search
	gridAxes   []string
	gridMetric string
	maximize   bool

	outFile   string
	svgWidth  int
	svgHeight int
	theme     string
	asYAML    bool
)

func main() {
	settings := config.ResolveSettings(os.LookupEnv)

	rootCmd := &cobra.Command{
		Use:          "daisyworld",
		Short:        "daisyworld climate feedback lab",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(os.Stderr, logLevel)
			return err
		},
		RunE: runDashboard,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", settings.DataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", settings.ConfigFile, "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run generations at constant flux",
		Args:  cobra.NoArgs,
		RunE:  runConstant,
	}
	addPlanetFlags(runCmd)
	runCmd.Flags().Float64Var(&distance, "distance", config.DefaultDistance, "orbital distance (AU)")
	runCmd.Flags().Float64Var(&flux, "flux", 0, "stellar flux in W/m² (overrides distance)")
	runCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "number of generations")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the run")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the stellar flux up and down",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addPlanetFlags(sweepCmd)
	addSweepFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&showPlot, "plot", true, "plot the equilibrium curves")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the sweep")

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "tabulate the daisy growth curves",
		Args:  cobra.NoArgs,
		RunE:  showGrowth,
	}
	growthCmd.Flags().Float64Var(&growthFrom, "from", analysis.DefaultGrowthFrom, "lowest temperature (°C)")
	growthCmd.Flags().Float64Var(&growthTo, "to", analysis.DefaultGrowthTo, "highest temperature (°C)")
	growthCmd.Flags().IntVar(&growthIntervals, "intervals", analysis.DefaultGrowthIntervals, "number of intervals")
	growthCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the curves")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	addPlotSizeFlags(plotCmd)

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run chart to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 500, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}
	presetsCmd.Flags().BoolVar(&asYAML, "yaml", false, "print presets as yaml")

	hysteresisCmd := &cobra.Command{
		Use:   "hysteresis [run_id]",
		Short: "find flux ranges where the sweep directions disagree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showHysteresis,
	}
	addPlanetFlags(hysteresisCmd)
	addSweepFlags(hysteresisCmd)

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "interactive terminal dashboard",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}
	dashboardCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "search a parameter grid for the best run metric",
		Args:  cobra.NoArgs,
		RunE:  runGrid,
	}
	gridCmd.Flags().StringArrayVar(&gridAxes, "param", nil, "axis as name=min:max:step ("+strings.Join(config.KnobNames(), ", ")+")")
	gridCmd.Flags().StringVar(&gridMetric, "metric", "coverage", "metric to optimise")
	gridCmd.Flags().BoolVar(&maximize, "maximize", false, "maximise instead of minimise")
	gridCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "number of generations")

	rootCmd.AddCommand(runCmd, sweepCmd, growthCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, hysteresisCmd, initCmd, gridCmd, dashboardCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if logger != nil {
			logger.Error(err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func addPlanetFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&albedoWhite, "albedo-white", 0.75, "white daisy albedo")
	cmd.Flags().Float64Var(&albedoBlack, "albedo-black", 0.25, "black daisy albedo")
	cmd.Flags().Float64Var(&albedoSoil, "albedo-soil", 0.5, "bare soil albedo")
	cmd.Flags().Float64Var(&insulation, "insulation", daisy.DefaultInsulation, "heat insulation between patches (0-1)")
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sweepMin, "min", sim.DefaultSweepMin, "lowest flux multiplier")
	cmd.Flags().Float64Var(&sweepMax, "max", sim.DefaultSweepMax, "highest flux multiplier")
	cmd.Flags().Float64Var(&sweepStep, "step", sim.DefaultSweepStep, "flux multiplier step")
	cmd.Flags().IntVar(&sweepGens, "generations", sim.DefaultGenerations, "generations per flux step")
	cmd.Flags().BoolVar(&noReverse, "no-reverse", false, "skip the descending pass")
	cmd.Flags().Float64Var(&hystTol, "tol", analysis.DefaultHysteresisTolerance, "hysteresis temperature tolerance (K)")
	addPlotSizeFlags(cmd)
}

func addPlotSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	cmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
}

// resolveConfig layers preset, config file and explicit flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("albedo-white", func() { cfg.Planet.Albedo.White = albedoWhite })
	set("albedo-black", func() { cfg.Planet.Albedo.Black = albedoBlack })
	set("albedo-soil", func() { cfg.Planet.Albedo.None = albedoSoil })
	set("insulation", func() { cfg.Planet.Insulation = insulation })
	set("distance", func() { cfg.Planet.DistanceAU = distance })
	set("min", func() { cfg.Sweep.Min = sweepMin })
	set("max", func() { cfg.Sweep.Max = sweepMax })
	set("step", func() { cfg.Sweep.Step = sweepStep })
	set("no-reverse", func() { cfg.Sweep.Reverse = !noReverse })
	if cmd.Name() == "run" || cmd.Name() == "grid" {
		set("generations", func() { cfg.Run.Generations = generations })
	} else {
		set("generations", func() { cfg.Sweep.GenerationsPerStep = sweepGens })
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configName(cfg *config.Config) string {
	if cfg.Name == "" {
		return "custom"
	}
	return cfg.Name
}

func runConstant(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	f, err := cfg.Flux()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("flux") {
		if err := daisy.CheckFlux(flux); err != nil {
			return err
		}
		f = flux
	}

	s := sim.New(p)
	for _, m := range metrics.Default(p) {
		s.AddMetric(m)
	}

	logger.Debug("running constant flux", "flux", f, "generations", cfg.Run.Generations)
	start := time.Now()

	result, err := s.Run(f, cfg.Run.Generations)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if !noSave {
		st, err := openStore()
		if err != nil {
			return err
		}
		runID, err := st.SaveRun(configName(cfg), p, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	final := result.Final()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("flux: %.1f W/m²\n", result.Flux)
	fmt.Printf("generations: %d\n", len(result.Generations))
	fmt.Printf("\nfinal state:\n")
	printState(final)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	if showPlot {
		states := result.States()
		fmt.Println()
		fmt.Println(viz.Plot(viz.TemperatureLines(states), plotWidth, plotHeight, "temperature (°C) by generation"))
		fmt.Println()
		fmt.Println(viz.Plot(viz.AreaLines(states), plotWidth, plotHeight, "area fraction by generation"))
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	spec := cfg.SweepSpec()
	logger.Debug("running sweep", "min", spec.Min, "max", spec.Max, "step", spec.Step, "reverse", spec.Reverse)
	start := time.Now()

	result, err := sim.RunFluxSweep(p, p.FluxNominal, spec)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if !noSave {
		st, err := openStore()
		if err != nil {
			return err
		}
		runID, err := st.SaveSweep(configName(cfg), p, spec, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("points: %d (%.1f to %.1f W/m²)\n", result.Len(), result.Flux[0], result.Flux[result.Len()-1])

	if rep, err := analysis.Hysteresis(result, hystTol); err == nil {
		printHysteresis(rep)
	}

	if showPlot {
		fmt.Println()
		plotSweep(result)
	}
	return nil
}

func showGrowth(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	points, err := analysis.GrowthCurve(p, growthFrom, growthTo, growthIntervals)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEMP (°C)\tWHITE\tBLACK")
	for _, pt := range points {
		fmt.Fprintf(w, "%.2f\t%.4f\t%.4f\n", pt.Celsius, pt.White, pt.Black)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showPlot {
		fmt.Println()
		fmt.Println(viz.Plot(viz.GrowthLines(points), 80, 10, fmt.Sprintf("growth rate, %.0f to %.0f °C", growthFrom, growthTo)))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tNAME\tTIME\tSIZE\tFLUX")

	for _, run := range runs {
		size, fluxDesc := fmt.Sprintf("%d gens", run.Generations), fmt.Sprintf("%.1f", run.Flux)
		if run.Kind == storage.KindSweep && run.Sweep != nil {
			size = fmt.Sprintf("%d points", run.Points)
			fluxDesc = fmt.Sprintf("%.2fx-%.2fx", run.Sweep.Min, run.Sweep.Max)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			size,
			fluxDesc,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n\n", meta.Kind)

	switch meta.Kind {
	case storage.KindSweep:
		res, err := st.LoadSweep(runID)
		if err != nil {
			return err
		}
		if res.Len() == 0 {
			return fmt.Errorf("no data to plot")
		}
		plotSweep(res)
	default:
		gens, err := st.LoadGenerations(runID)
		if err != nil {
			return err
		}
		if len(gens) == 0 {
			return fmt.Errorf("no data to plot")
		}
		states := sim.States(gens)
		fmt.Println(viz.Plot(viz.TemperatureLines(states), plotWidth, plotHeight, "temperature (°C) by generation"))
		fmt.Println()
		fmt.Println(viz.Plot(viz.AreaLines(states), plotWidth, plotHeight, "area fraction by generation"))
	}
	return nil
}

func plotSweep(res *sim.SweepResult) {
	fmt.Println(viz.Plot(viz.SweepTemperatureLines(res.Ascending, res.Descending, res.Barren), plotWidth, plotHeight,
		fmt.Sprintf("equilibrium temperature (°C), flux %.0f to %.0f W/m²", res.Flux[0], res.Flux[res.Len()-1])))
	fmt.Println()
	fmt.Println(viz.Plot(viz.AreaLines(res.Ascending), plotWidth, plotHeight, "equilibrium area (ascending flux)"))
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.WriteJSON(os.Stdout, meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	if meta.Kind == storage.KindSweep {
		res, err := st.LoadSweep(runID)
		if err != nil {
			return err
		}
		return storage.WriteSweepCSV(os.Stdout, res)
	}

	gens, err := st.LoadGenerations(runID)
	if err != nil {
		return err
	}
	return storage.WriteGenerationsCSV(os.Stdout, gens)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	var data any
	switch meta.Kind {
	case storage.KindSweep:
		res, err := st.LoadSweep(runID)
		if err != nil {
			return err
		}
		data = storage.NewSweepExport(meta.Params, *meta.Sweep, res)
	default:
		gens, err := st.LoadGenerations(runID)
		if err != nil {
			return err
		}
		data = storage.NewRunExport(meta.Params, &sim.Result{Flux: meta.Flux, Generations: gens, Metrics: meta.Metrics})
	}

	if outFile == "" {
		return storage.WriteJSON(os.Stdout, data)
	}

	file, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := storage.WriteJSON(file, data); err != nil {
		return err
	}
	logger.Info("exported", "run", runID, "path", outFile)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	var chart export.Chart
	switch meta.Kind {
	case storage.KindSweep:
		res, err := st.LoadSweep(runID)
		if err != nil {
			return err
		}
		chart = export.SweepChart(res, svgWidth, svgHeight)
	default:
		gens, err := st.LoadGenerations(runID)
		if err != nil {
			return err
		}
		chart = export.RunChart(gens, svgWidth, svgHeight)
	}

	svg := export.CurvesToSVG(chart)
	if svg == "" {
		return fmt.Errorf("no data to export")
	}

	path := outFile
	if path == "" {
		path = filepath.Clean(runID + ".svg")
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("exported", "run", runID, "path", path)
	return nil
}

func showPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	if len(args) == 1 {
		if config.GetPreset(args[0]) == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", args[0], names)
		}
		names = args
		asYAML = true
	}

	if !asYAML {
		fmt.Println("presets:")
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	enc.SetIndent(2)
	for _, name := range names {
		if err := enc.Encode(config.GetPreset(name)); err != nil {
			return err
		}
	}
	return nil
}

func showHysteresis(cmd *cobra.Command, args []string) error {
	var res *sim.SweepResult
	if len(args) == 1 {
		st, err := openStore()
		if err != nil {
			return err
		}
		loaded, err := st.LoadSweep(args[0])
		if err != nil {
			return err
		}
		res = loaded
	} else {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		p, err := cfg.Params()
		if err != nil {
			return err
		}
		spec := cfg.SweepSpec()
		spec.Reverse = true
		res, err = sim.RunFluxSweep(p, p.FluxNominal, spec)
		if err != nil {
			return err
		}
	}

	rep, err := analysis.Hysteresis(res, hystTol)
	if err != nil {
		return err
	}
	printHysteresis(rep)
	return nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(gridAxes) == 0 {
		return fmt.Errorf("at least one --param is required")
	}

	axes := make([]optim.Axis, 0, len(gridAxes))
	for _, spec := range gridAxes {
		axis, err := optim.ParseAxis(spec)
		if err != nil {
			return err
		}
		if _, ok := config.Knobs[axis.Name]; !ok {
			return fmt.Errorf("unknown setting: %s (available: %v)", axis.Name, config.KnobNames())
		}
		axes = append(axes, axis)
	}

	search := optim.NewGridSearch(axes...)
	logger.Debug("grid search", "points", search.Size(), "metric", gridMetric)

	sign := 1.0
	if maximize {
		sign = -1
	}
	evaluate := func(point map[string]float64) (float64, error) {
		c := cfg.Clone()
		for name, v := range point {
			if err := c.Set(name, v); err != nil {
				return 0, err
			}
		}
		p, err := c.Params()
		if err != nil {
			return 0, err
		}
		f, err := c.Flux()
		if err != nil {
			return 0, err
		}

		s := sim.New(p)
		for _, m := range metrics.Default(p) {
			s.AddMetric(m)
		}
		result, err := s.Run(f, c.Run.Generations)
		if err != nil {
			logger.Debug("skipping grid point", "point", point, "err", err)
			return 0, err
		}
		val, ok := result.Metrics[gridMetric]
		if !ok {
			return 0, fmt.Errorf("unknown metric: %s", gridMetric)
		}
		return sign * val, nil
	}

	best, score, err := search.Search(cmd.Context(), evaluate)
	if err != nil {
		return err
	}

	fmt.Printf("evaluated %d points\n", search.Size())
	fmt.Printf("best %s: %.6f\n", gridMetric, sign*score)
	printMetrics(best)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	logger.Info("wrote config", "path", args[0])
	return nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	return viz.RunDashboard(viz.Options{
		Params:      p,
		DistanceAU:  cfg.Planet.DistanceAU,
		Generations: cfg.Run.Generations,
		Sweep:       cfg.SweepSpec(),
		Theme:       theme,
	})
}

// openStore returns the run store under --data, creating the directory on
// first use.
func openStore() (*storage.Store, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, fmt.Errorf("open run store: %w", err)
	}
	return st, nil
}

func printState(x daisy.State) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  area\twhite %.4f\tblack %.4f\tbare %.4f\n", x.AreaWhite, x.AreaBlack, x.AreaBare)
	fmt.Fprintf(w, "  temp (°C)\twhite %.2f\tblack %.2f\tplanet %.2f\n",
		x.TempWhite-daisy.ZeroCelsius, x.TempBlack-daisy.ZeroCelsius, x.TempPlanet-daisy.ZeroCelsius)
	fmt.Fprintf(w, "  albedo\t%.4f\t\t\n", x.AlbedoMean)
	w.Flush()
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func printHysteresis(rep *analysis.HysteresisReport) {
	fmt.Printf("max gap: %.2f K at %.1f W/m²\n", rep.MaxGap, rep.MaxFlux)
	if len(rep.Loops) == 0 {
		fmt.Println("no hysteresis loops")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FLUX LOW\tFLUX HIGH\tMAX GAP (K)")
	for _, l := range rep.Loops {
		fmt.Fprintf(w, "%.1f\t%.1f\t%.2f\n", l.FluxLow, l.FluxHigh, l.MaxGap)
	}
	w.Flush()
}
