// Package bench drives the five runners across every configured generator
// and size tier, timing each sort with a warm-up pass and a trimmed-mean
// measurement pass, per spec.md §4.7.
package bench

import (
	"fmt"
	"time"

	"github.com/nfiedler/mkqsortbench/generators"
	"github.com/nfiedler/mkqsortbench/runners"
)

// DefaultRunCount is RUN_COUNT from spec.md §4.7.2.
const DefaultRunCount = 5

// Driver runs the fixed runner roster against a set of generators and
// sizes, reusing a WorkloadCache so the warm-up pass and the measurement
// pass don't regenerate the same workload.
type Driver struct {
	Generators []generators.Generator
	Sizes      []generators.DataSize
	Runners    []runners.Runner
	RunCount   int
	cache      *generators.WorkloadCache
}

// NewDriver builds a Driver over gens and sizes using the fixed runner
// roster and DefaultRunCount.
func NewDriver(gens []generators.Generator, sizes []generators.DataSize) *Driver {
	return &Driver{
		Generators: gens,
		Sizes:      sizes,
		Runners:    runners.Roster(),
		RunCount:   DefaultRunCount,
		cache:      generators.NewWorkloadCache(),
	}
}

// Run executes the warm-up pass followed by the measurement pass, returning
// a Report in generator/size/runner order.
func (d *Driver) Run() (*Report, error) {
	if d.RunCount < 3 || d.RunCount%2 == 0 {
		return nil, fmt.Errorf("bench: RunCount must be odd and >= 3, got %d", d.RunCount)
	}
	if err := d.warmup(); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, gen := range d.Generators {
		for _, size := range d.Sizes {
			data, err := d.cache.Get(gen, size)
			if err != nil {
				// The warm-up pass above already proved this generator can
				// produce a SMALL workload; a fault at a larger size (e.g. a
				// file with too few lines) skips just this row instead of
				// aborting the rest of the run, per spec.md §7.
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s/%s: %v", gen.DisplayName(), size, err))
				continue
			}
			for _, runner := range d.Runners {
				elapsed, err := d.measure(runner, data)
				if err != nil {
					return nil, fmt.Errorf("%s/%s/%s: %w", gen.DisplayName(), size, runner.Name(), err)
				}
				report.Results = append(report.Results, Result{
					Generator:     gen.DisplayName(),
					Size:          size,
					Runner:        runner.Name(),
					ElapsedMillis: elapsed,
				})
			}
		}
	}
	return report, nil
}

// warmup generates every generator's SMALL workload once and runs every
// runner over a fresh copy of it, discarding the timings, so the
// measurement pass below starts from a populated cache and a warmed-up
// allocator, per spec.md §4.7.1.
func (d *Driver) warmup() error {
	for _, gen := range d.Generators {
		data, err := d.cache.Get(gen, generators.SMALL)
		if err != nil {
			return fmt.Errorf("warmup: %w", err)
		}
		for _, runner := range d.Runners {
			if err := runner.Sort(cloneStrings(data)); err != nil {
				return fmt.Errorf("warmup: %s: %w", runner.Name(), err)
			}
		}
	}
	return nil
}

// measure runs runner over RunCount fresh copies of data, timing each sort
// in milliseconds, and returns the trimmed mean of the samples.
func (d *Driver) measure(runner runners.Runner, data []string) (uint32, error) {
	samples := make([]uint32, d.RunCount)
	for i := 0; i < d.RunCount; i++ {
		copyOfData := cloneStrings(data)
		start := time.Now()
		if err := runner.Sort(copyOfData); err != nil {
			return 0, err
		}
		samples[i] = uint32(time.Since(start).Milliseconds())
	}
	return trimmedMean(samples), nil
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
