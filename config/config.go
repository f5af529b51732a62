// Package config loads optional TOML configuration for the benchmark
// harness, the way the teacher's config package does: read the file, decode
// with BurntSushi/toml, fill in defaults for anything left unset.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/nfiedler/mkqsortbench/generators"
)

// OutputConfig controls how a Report is presented once the driver finishes.
type OutputConfig struct {
	JSON      bool   `toml:"json"`
	Compact   bool   `toml:"compact"`
	ChartPath string `toml:"chartPath"`
	TUI       bool   `toml:"tui"`
}

// BenchConfig is the full set of options a TOML file may supply, loaded via
// --config. Every field has a default so an absent file, or a file that
// only sets one field, still produces a runnable configuration.
type BenchConfig struct {
	Sizes      []string     `toml:"sizes"`
	Generators []string     `toml:"generators"`
	FilePath   string       `toml:"filePath"`
	RunCount   int          `toml:"runCount"`
	Output     OutputConfig `toml:"output"`
}

// Default returns the configuration spec.md §6's zero-argument CLI form
// implies: random and pseudo-word generators, every size, RUN_COUNT=5.
func Default() *BenchConfig {
	return &BenchConfig{
		Sizes:      []string{"SMALL", "MEDIUM", "LARGE"},
		Generators: []string{"random", "pseudoword"},
		RunCount:   5,
	}
}

// Load reads and decodes the TOML file at path, then fills any field left
// at its zero value with Default's value.
func Load(path string) (*BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := &BenchConfig{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	def := Default()
	if len(cfg.Sizes) == 0 {
		cfg.Sizes = def.Sizes
	}
	if len(cfg.Generators) == 0 {
		cfg.Generators = def.Generators
	}
	if cfg.RunCount == 0 {
		cfg.RunCount = def.RunCount
	}
	if cfg.RunCount < 3 || cfg.RunCount%2 == 0 {
		return nil, fmt.Errorf("config: runCount must be odd and >= 3, got %d", cfg.RunCount)
	}
	for _, g := range cfg.Generators {
		if g == "file" && cfg.FilePath == "" {
			return nil, fmt.Errorf("config: generators includes %q but filePath is empty", "file")
		}
	}
	return cfg, nil
}

// ResolveSizes converts the configured size names into generators.DataSize
// values, in the order given.
func (c *BenchConfig) ResolveSizes() ([]generators.DataSize, error) {
	out := make([]generators.DataSize, 0, len(c.Sizes))
	for _, name := range c.Sizes {
		switch name {
		case "SMALL":
			out = append(out, generators.SMALL)
		case "MEDIUM":
			out = append(out, generators.MEDIUM)
		case "LARGE":
			out = append(out, generators.LARGE)
		default:
			return nil, fmt.Errorf("config: unknown size %q", name)
		}
	}
	return out, nil
}

// ResolveGenerators builds a Generator for each configured generator name.
func (c *BenchConfig) ResolveGenerators() ([]generators.Generator, error) {
	out := make([]generators.Generator, 0, len(c.Generators))
	for _, name := range c.Generators {
		switch name {
		case "random":
			out = append(out, generators.NewRandomGenerator())
		case "pseudoword":
			out = append(out, generators.NewPseudoWordGenerator())
		case "file":
			out = append(out, generators.NewFileGenerator(c.FilePath))
		default:
			return nil, fmt.Errorf("config: unknown generator %q", name)
		}
	}
	return out, nil
}
