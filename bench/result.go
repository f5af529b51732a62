package bench

import "github.com/nfiedler/mkqsortbench/generators"

// Result is the trimmed-mean elapsed time, in milliseconds, for one runner
// sorting one generator's workload at one size tier.
type Result struct {
	Generator     string
	Size          generators.DataSize
	Runner        string
	ElapsedMillis uint32
}

// Report is every Result the driver produced, in the order they were
// measured: generator, then size, then runner, matching the nesting spec.md
// §4.7.4 uses for its tabular output. Warnings holds one line per
// (generator, size) combination the driver skipped after a generator
// fault, per spec.md §7 ("surfaced... prints and continues").
type Report struct {
	Results  []Result
	Warnings []string
}
