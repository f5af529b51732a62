package generators

import "testing"

type countingGenerator struct {
	calls int
	name  string
}

func (g *countingGenerator) DisplayName() string { return g.name }

func (g *countingGenerator) Generate(size DataSize) ([]string, error) {
	g.calls++
	return []string{"a", "b", "c"}, nil
}

func TestWorkloadCache_GeneratesOncePerKey(t *testing.T) {
	cache := NewWorkloadCache()
	gen := &countingGenerator{name: "counting"}

	if _, err := cache.Get(gen, SMALL); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, err := cache.Get(gen, SMALL); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}

	if _, err := cache.Get(gen, MEDIUM); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("generator called %d times after new size, want 2", gen.calls)
	}
}

func TestWorkloadCache_PropagatesGeneratorError(t *testing.T) {
	cache := NewWorkloadCache()
	gen := NewFileGenerator("/nonexistent/path/does/not/exist.txt")
	if _, err := cache.Get(gen, SMALL); err == nil {
		t.Fatal("expected error from failing generator, got nil")
	}
}
