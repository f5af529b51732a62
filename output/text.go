// Package output renders a bench.Report as tabular text, JSON, or an HTML
// bar chart, per spec.md §4.7.4 and this repository's added output surface.
package output

import (
	"fmt"
	"io"

	"github.com/nfiedler/mkqsortbench/bench"
)

// WriteText prints one header per (generator, size) pair followed by one
// line per runner's elapsed milliseconds, in the order Report.Results was
// built.
func WriteText(w io.Writer, report *bench.Report) error {
	var generator string
	var size string
	for _, result := range report.Results {
		sizeName := result.Size.String()
		if result.Generator != generator || sizeName != size {
			generator, size = result.Generator, sizeName
			if _, err := fmt.Fprintf(w, "\n%s / %s\n", generator, size); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %-12s %6d ms\n", result.Runner, result.ElapsedMillis); err != nil {
			return err
		}
	}
	for _, warning := range report.Warnings {
		if _, err := fmt.Fprintf(w, "\nskipped: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}
