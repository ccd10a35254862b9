package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/transester/internal/analysis"
	"github.com/san-kum/transester/internal/chart"
	"github.com/san-kum/transester/internal/config"
	"github.com/san-kum/transester/internal/export"
	"github.com/san-kum/transester/internal/kinetics"
	"github.com/san-kum/transester/internal/logging"
	"github.com/san-kum/transester/internal/tui"
)

type options struct {
	configFile string
	preset     string
	debug      bool

	oil      float64
	k        float64
	duration float64
	dt       float64

	width     int
	height    int
	svgWidth  int
	svgHeight int
	target    float64
	out       string
	theme     string

	kMin      float64
	kMax      float64
	steps     int
	sweepPlot bool
	only      string
}

// main is the entry point for the transester CLI; it launches the
// interactive TUI when no subcommand is provided.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logging.Errorw("command failed", "error", err)
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "transester",
		Short:        "transesterification kinetics lab",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&opts.preset, "preset", "", "use preset configuration")
	pf.BoolVar(&opts.debug, "debug", false, "debug logging")
	pf.Float64Var(&opts.oil, "oil", kinetics.DefaultInitialOilVolume, "initial oil volume (mL)")
	pf.Float64Var(&opts.k, "k", kinetics.DefaultRateConstant, "apparent rate constant (1/h)")
	pf.Float64Var(&opts.duration, "time", kinetics.DefaultTotalDuration, "total duration (h)")
	pf.Float64Var(&opts.dt, "dt", kinetics.DefaultTimeStep, "time step (h)")
	rootCmd.Flags().StringVar(&opts.theme, "theme", "lab", "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate and print the series",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot oil, ester and glycerin volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotRun(cmd, opts)
		},
	}
	plotCmd.Flags().IntVar(&opts.width, "width", config.DefaultChartWidth, "chart width")
	plotCmd.Flags().IntVar(&opts.height, "height", config.DefaultChartHeight, "chart height")
	plotCmd.Flags().StringVar(&opts.only, "only", "", "plot a single quantity (T, E or G)")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "half-life, conversion and per-series statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarizeRun(cmd, opts)
		},
	}
	summaryCmd.Flags().Float64Var(&opts.target, "target", config.DefaultTargetConversion, "target conversion fraction")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export run data to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRun(cmd, opts, func(w io.Writer, res *kinetics.Result) error {
				return export.WriteCSV(w, res)
			})
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export run data to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRun(cmd, opts, func(w io.Writer, res *kinetics.Result) error {
				return export.WriteJSON(w, res)
			})
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export the chart as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRun(cmd, opts, func(w io.Writer, res *kinetics.Result) error {
				return export.WriteSVG(w, res, opts.svgWidth, opts.svgHeight)
			})
		},
	}
	exportSVGCmd.Flags().IntVar(&opts.svgWidth, "width", 800, "image width (px)")
	exportSVGCmd.Flags().IntVar(&opts.svgHeight, "height", 480, "image height (px)")

	for _, c := range []*cobra.Command{exportCSVCmd, exportJSONCmd, exportSVGCmd} {
		c.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "final conversion across a range of rate constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sweepRun(cmd, opts)
		},
	}
	sweepCmd.Flags().Float64Var(&opts.kMin, "k-min", 0.02, "lowest rate constant (1/h)")
	sweepCmd.Flags().Float64Var(&opts.kMax, "k-max", 0.5, "highest rate constant (1/h)")
	sweepCmd.Flags().IntVar(&opts.steps, "steps", 10, "number of rate constants")
	sweepCmd.Flags().BoolVar(&opts.sweepPlot, "plot", false, "plot conversion against k")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOIL\tK\tDURATION\tDT")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%gmL\t%g/h\t%gh\t%gh\n",
					name, p.InitialOilVolume, p.RateConstant, p.TotalDuration, p.TimeStep)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "transester.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			logging.Infow("wrote config", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	tuiCmd.Flags().StringVar(&opts.theme, "theme", "lab", "color theme")

	rootCmd.AddCommand(runCmd, plotCmd, summaryCmd, sweepCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, configCmd, tuiCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		p, err := config.GetPreset(opts.preset)
		if err != nil {
			return nil, err
		}
		cfg.Apply(p)
	}

	if opts.configFile != "" {
		var err error
		cfg, err = config.LoadOver(opts.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("oil") {
		cfg.InitialOilVolume = opts.oil
	}
	if flags.Changed("k") {
		cfg.RateConstant = opts.k
	}
	if flags.Changed("time") {
		cfg.TotalDuration = opts.duration
	}
	if flags.Changed("dt") {
		cfg.TimeStep = opts.dt
	}
	// export-svg sizes in pixels, not chart cells
	if cmd.Name() == "plot" {
		if flags.Changed("width") {
			cfg.Chart.Width = opts.width
		}
		if flags.Changed("height") {
			cfg.Chart.Height = opts.height
		}
	}
	if flags.Changed("target") {
		cfg.Summary.TargetConversion = opts.target
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Debugw("resolved configuration",
		"preset", opts.preset,
		"config", opts.configFile,
		"params", cfg.Params().String(),
	)
	return cfg, nil
}

func simulate(cmd *cobra.Command, opts *options) (*config.Config, *kinetics.Result, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, nil, err
	}
	res, err := kinetics.Simulate(cfg.Params())
	if err != nil {
		return nil, nil, err
	}
	logging.Debugw("simulation complete", "samples", res.Len())
	return cfg, res, nil
}

func runSimulation(cmd *cobra.Command, opts *options) error {
	cfg, res, err := simulate(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "transesterification: %s\n", cfg.Params())
	fmt.Fprintf(out, "samples: %d\n\n", res.Len())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "TIME(h)\tOIL(mL)\tESTER(mL)\tGLYCERIN(mL)\t")
	for i := 0; i < res.Len(); i++ {
		t, oil, ester, gly := res.At(i)
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t%.2f\t\n", t, oil, ester, gly)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s, err := analysis.Summarize(res, cfg.Summary.TargetConversion)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nhalf-life: %.2f h  conversion: %.1f%%\n", s.HalfLife, s.FinalConversion*100)
	return nil
}

func plotRun(cmd *cobra.Command, opts *options) error {
	var only *kinetics.Quantity
	if opts.only != "" {
		q, err := kinetics.ParseQuantity(opts.only)
		if err != nil {
			return err
		}
		only = &q
	}

	cfg, res, err := simulate(cmd, opts)
	if err != nil {
		return err
	}

	c := chart.New()
	c.SetData(res)

	var graph string
	if only != nil {
		graph = c.RenderQuantity(*only, cfg.Chart.Width, cfg.Chart.Height)
	} else {
		graph = c.Render(cfg.Chart.Width, cfg.Chart.Height)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", cfg.Params())
	fmt.Fprintln(out, graph)
	return nil
}

func summarizeRun(cmd *cobra.Command, opts *options) error {
	cfg, res, err := simulate(cmd, opts)
	if err != nil {
		return err
	}

	s, err := analysis.Summarize(res, cfg.Summary.TargetConversion)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", cfg.Params())
	fmt.Fprintf(out, "samples: %d\n", s.Samples)
	fmt.Fprintf(out, "half-life: %.3f h\n", s.HalfLife)
	fmt.Fprintf(out, "final conversion: %.2f%%\n", s.FinalConversion*100)
	fmt.Fprintf(out, "time to %.0f%% conversion: %.3f h", s.TargetConversion*100, s.TimeToTarget)
	if s.ReachedAt < 0 {
		fmt.Fprintf(out, " (beyond horizon)\n")
	} else {
		fmt.Fprintf(out, " (grid: %.2f h)\n", s.ReachedAt)
	}
	fmt.Fprintf(out, "balance error: %.3g mL\n\n", s.BalanceError)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tINITIAL\tFINAL\tMIN\tMAX\tMEAN")
	for _, st := range s.Series {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			st.Quantity.Label(), st.Initial, st.Final, st.Min, st.Max, st.Mean)
	}
	return w.Flush()
}

func sweepRun(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	points, err := analysis.SweepRateConstant(cfg.Params(), opts.kMin, opts.kMax, opts.steps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sweep over %.0f h, oil %.0f mL\n\n", cfg.TotalDuration, cfg.InitialOilVolume)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "K(1/h)\tHALF-LIFE(h)\tCONVERSION\tOIL(mL)\tESTER(mL)\tGLYCERIN(mL)\t")
	for _, pt := range points {
		fmt.Fprintf(w, "%.4f\t%.2f\t%.1f%%\t%.2f\t%.2f\t%.2f\t\n",
			pt.RateConstant, pt.HalfLife, pt.Conversion*100, pt.Oil, pt.Ester, pt.Glycerin)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if opts.sweepPlot && len(points) > 1 {
		graph := asciigraph.Plot(analysis.Conversions(points),
			asciigraph.Height(cfg.Chart.Height),
			asciigraph.Width(cfg.Chart.Width),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Precision(2),
			asciigraph.Caption(fmt.Sprintf("conversion, k %g → %g", opts.kMin, opts.kMax)),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}
	return nil
}

func exportRun(cmd *cobra.Command, opts *options, write func(io.Writer, *kinetics.Result) error) error {
	_, res, err := simulate(cmd, opts)
	if err != nil {
		return err
	}

	if opts.out == "" {
		return write(cmd.OutOrStdout(), res)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := write(f, res); err != nil {
		return err
	}
	logging.Infow("exported run", "path", opts.out, "samples", res.Len())
	return f.Close()
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	return tui.RunInteractive(tui.Options{
		Params:           cfg.Params(),
		TargetConversion: cfg.Summary.TargetConversion,
		Theme:            opts.theme,
	})
}
