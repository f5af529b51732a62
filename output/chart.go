package output

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/nfiedler/mkqsortbench/bench"
)

// RenderChart draws a grouped bar chart, one category per (generator,
// size), one series per runner, and writes it as a standalone HTML file at
// filename. Structurally the bar-chart analogue of the teacher's
// PlotHeatmap: build chart data, set global options, render to a created
// file.
func RenderChart(report *bench.Report, filename string) error {
	categories, series := groupByRunner(report)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Sort benchmark results",
			Width:           "160vh",
			Height:          "90vh",
			Theme:           types.ThemeVintage,
			BackgroundColor: "transparent",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Elapsed time by runner",
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "generator / size"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	bar.SetXAxis(categories)
	for _, runnerName := range runnerOrder(report) {
		bar.AddSeries(runnerName, series[runnerName])
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(bar)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("output: creating chart file %s: %w", filename, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("output: rendering chart: %w", err)
	}
	return nil
}

// groupByRunner returns the ordered (generator, size) category labels and,
// for each runner, one bar-chart data point per category.
func groupByRunner(report *bench.Report) ([]string, map[string][]opts.BarData) {
	var categories []string
	seenCategory := make(map[string]bool)
	series := make(map[string][]opts.BarData)
	index := make(map[string]int)

	for _, result := range report.Results {
		category := fmt.Sprintf("%s/%s", result.Generator, result.Size)
		if !seenCategory[category] {
			seenCategory[category] = true
			index[category] = len(categories)
			categories = append(categories, category)
			for runnerName := range series {
				series[runnerName] = append(series[runnerName], opts.BarData{Value: 0})
			}
		}
		if _, ok := series[result.Runner]; !ok {
			series[result.Runner] = make([]opts.BarData, len(categories))
		}
		series[result.Runner][index[category]] = opts.BarData{Value: result.ElapsedMillis}
	}
	return categories, series
}

// runnerOrder returns each runner name in its first-seen order, so the
// chart's legend matches the table's runner ordering.
func runnerOrder(report *bench.Report) []string {
	var order []string
	seen := make(map[string]bool)
	for _, result := range report.Results {
		if !seen[result.Runner] {
			seen[result.Runner] = true
			order = append(order, result.Runner)
		}
	}
	return order
}
