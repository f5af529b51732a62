package generators

import "testing"

func TestRandomGenerator_ProducesFixedLengthStrings(t *testing.T) {
	gen := NewRandomGenerator()
	out, err := gen.Generate(SMALL)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(out) != Count(SMALL) {
		t.Fatalf("got %d strings, want %d", len(out), Count(SMALL))
	}
	for _, s := range out[:100] {
		if len(s) != randomLength {
			t.Fatalf("string %q has length %d, want %d", s, len(s), randomLength)
		}
		for _, c := range s {
			if !isAlphanumeric(byte(c)) {
				t.Fatalf("string %q contains non-alphanumeric byte %q", s, c)
			}
		}
	}
}

func TestRandomGenerator_DisplayName(t *testing.T) {
	if got := NewRandomGenerator().DisplayName(); got != "Random" {
		t.Fatalf("DisplayName() = %q, want Random", got)
	}
}

func isAlphanumeric(b byte) bool {
	for i := 0; i < len(alphanumeric); i++ {
		if alphanumeric[i] == b {
			return true
		}
	}
	return false
}
