package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nfiedler/mkqsortbench/bench"
)

// Row is one (generator, size, runner) measurement in JSON form.
type Row struct {
	Generator     string `json:"generator"`
	Size          string `json:"size"`
	Runner        string `json:"runner"`
	ElapsedMillis uint32 `json:"elapsed_ms"`
}

// Document is the top-level JSON shape written by WriteJSON.
type Document struct {
	Results  []Row    `json:"results"`
	Warnings []string `json:"warnings,omitempty"`
}

// ToDocument converts a bench.Report into its JSON-serializable form.
func ToDocument(report *bench.Report) Document {
	doc := Document{Results: make([]Row, len(report.Results)), Warnings: report.Warnings}
	for i, result := range report.Results {
		doc.Results[i] = Row{
			Generator:     result.Generator,
			Size:          result.Size.String(),
			Runner:        result.Runner,
			ElapsedMillis: result.ElapsedMillis,
		}
	}
	return doc
}

// WriteJSON writes report as JSON to w, indented unless compact is true.
func WriteJSON(w io.Writer, report *bench.Report, compact bool) error {
	doc := ToDocument(report)
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("output: encoding report: %w", err)
	}
	return nil
}
