// Package cli wires the benchmark harness into a urfave/cli/v2 App, the
// teacher's CLI framework of choice. spec.md §6's positional grammar
// (`--1|--2|--3 <path>`) is expressed as a trio of BoolFlags named "1",
// "2", "3" plus a positional path argument, the natural urfave/cli
// encoding of that token grammar.
package cli

import (
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/nfiedler/mkqsortbench/bench"
	"github.com/nfiedler/mkqsortbench/config"
	"github.com/nfiedler/mkqsortbench/output"
	"github.com/nfiedler/mkqsortbench/tui"
)

var (
	tier1Flag = &cli.BoolFlag{Name: "1", Usage: "use <path> as a FileGenerator at SMALL size only"}
	tier2Flag = &cli.BoolFlag{Name: "2", Usage: "use <path> as a FileGenerator at SMALL and MEDIUM sizes"}
	tier3Flag = &cli.BoolFlag{Name: "3", Usage: "use <path> as a FileGenerator at all sizes"}

	configFlag      = &cli.StringFlag{Name: "config", Usage: "path to a BenchConfig TOML file"}
	chartFlag       = &cli.StringFlag{Name: "chart", Usage: "write an HTML bar chart of results to this path"}
	jsonFlag        = &cli.BoolFlag{Name: "json", Usage: "emit results as indented JSON instead of a text table"}
	jsonCompactFlag = &cli.BoolFlag{Name: "json-compact", Usage: "emit results as compact JSON"}
	tuiFlag         = &cli.BoolFlag{Name: "tui", Usage: "show a live progress dashboard instead of printing results when the run ends"}
)

// App is the mkqsortbench command line application.
var App = &cli.App{
	Name:  "mkqsortbench",
	Usage: "benchmark multikey quicksort, burstsort, and baseline string sorters",
	Flags: []cli.Flag{tier1Flag, tier2Flag, tier3Flag, configFlag, chartFlag, jsonFlag, jsonCompactFlag, tuiFlag},
	Action: func(c *cli.Context) error {
		return run(c, os.Stdout)
	},
}

func run(c *cli.Context, stdout io.Writer) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	gens, err := cfg.ResolveGenerators()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	sizes, err := cfg.ResolveSizes()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	driver := bench.NewDriver(gens, sizes)
	driver.RunCount = cfg.RunCount

	var report *bench.Report
	if cfg.Output.TUI {
		report, err = runWithDashboard(driver)
	} else {
		report, err = driver.Run()
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := emit(stdout, report, cfg); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// resolveConfig turns the CLI flags and positional arguments into a
// BenchConfig, implementing spec.md §6's three argument forms plus the
// --config escape hatch this expansion adds.
func resolveConfig(c *cli.Context) (*config.BenchConfig, error) {
	tierCount := boolCount(c.Bool("1"), c.Bool("2"), c.Bool("3"))
	args := c.Args().Slice()

	if c.IsSet("config") {
		if tierCount > 0 || len(args) > 0 {
			return nil, fmt.Errorf("--config is mutually exclusive with --1/--2/--3 and positional arguments")
		}
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return nil, err
		}
		applyOutputFlags(c, cfg)
		return cfg, nil
	}

	switch {
	case tierCount == 0 && len(args) == 0:
		cfg := config.Default()
		applyOutputFlags(c, cfg)
		return cfg, nil

	case tierCount == 1 && len(args) == 1:
		cfg := &config.BenchConfig{
			Generators: []string{"file"},
			FilePath:   args[0],
			RunCount:   bench.DefaultRunCount,
			Sizes:      tierSizes(c),
		}
		applyOutputFlags(c, cfg)
		return cfg, nil

	default:
		return nil, fmt.Errorf("usage: mkqsortbench [--1|--2|--3 <path>] [--config <path>] [--chart <path>] [--json|--json-compact] [--tui]")
	}
}

func boolCount(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func tierSizes(c *cli.Context) []string {
	switch {
	case c.Bool("1"):
		return []string{"SMALL"}
	case c.Bool("2"):
		return []string{"SMALL", "MEDIUM"}
	default:
		return []string{"SMALL", "MEDIUM", "LARGE"}
	}
}

func applyOutputFlags(c *cli.Context, cfg *config.BenchConfig) {
	if c.IsSet("chart") {
		cfg.Output.ChartPath = c.String("chart")
	}
	if c.Bool("json") {
		cfg.Output.JSON = true
	}
	if c.Bool("json-compact") {
		cfg.Output.JSON = true
		cfg.Output.Compact = true
	}
	if c.Bool("tui") {
		cfg.Output.TUI = true
	}
}

// emit writes the report in whichever form cfg.Output selects, and renders
// a chart file as a side effect when ChartPath is set.
func emit(w io.Writer, report *bench.Report, cfg *config.BenchConfig) error {
	if cfg.Output.ChartPath != "" {
		if err := output.RenderChart(report, cfg.Output.ChartPath); err != nil {
			return err
		}
	}
	if cfg.Output.JSON {
		return output.WriteJSON(w, report, cfg.Output.Compact)
	}
	return output.WriteText(w, report)
}

// runWithDashboard drives the benchmark on a background goroutine while a
// tui.Dashboard shows live progress, returning once both the benchmark and
// the dashboard's event loop have finished.
func runWithDashboard(driver *bench.Driver) (*bench.Report, error) {
	dashboard := tui.NewDashboard()

	var report *bench.Report
	var runErr error
	go func() {
		report, runErr = driveWithProgress(driver, dashboard)
		dashboard.Finish()
	}()

	if err := dashboard.Run(); err != nil {
		return nil, fmt.Errorf("cli: dashboard: %w", err)
	}
	return report, runErr
}

func driveWithProgress(driver *bench.Driver, dashboard *tui.Dashboard) (*bench.Report, error) {
	dashboard.ReportProgress(fmt.Sprintf("running %d generators x %d sizes...", len(driver.Generators), len(driver.Sizes)))
	report, err := driver.Run()
	if err != nil {
		return nil, err
	}
	for _, result := range report.Results {
		dashboard.ReportResult(result)
	}
	return report, nil
}
