// Package testutil holds test-only helpers shared across packages,
// grounded on the teacher's own testutil: generate a scratch input file,
// return its path and a cleanup function.
package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// GenerateWordFile creates a temporary file with numLines words, one per
// line, cycling through a small fixed vocabulary so the file is
// deterministic across runs. Returns the file path and a cleanup function.
func GenerateWordFile(t *testing.T, numLines int) (string, func()) {
	t.Helper()

	if numLines < 1 {
		numLines = 1
	}

	tmpFile, err := os.CreateTemp("", "test_words_*.txt")
	if err != nil {
		t.Fatalf("failed to create temp word file: %v", err)
	}

	sampleWords := []string{
		"apple", "bramble", "cascade", "driftwood", "ember",
		"falcon", "granite", "harbor", "isotope", "juniper",
	}

	var content strings.Builder
	for i := 0; i < numLines; i++ {
		content.WriteString(sampleWords[i%len(sampleWords)])
		content.WriteString(fmt.Sprintf("-%d\n", i))
	}

	if _, err := tmpFile.WriteString(content.String()); err != nil {
		t.Fatalf("failed to write temp word file: %v", err)
	}
	tmpFile.Close()

	cleanup := func() {
		os.Remove(tmpFile.Name())
	}
	return tmpFile.Name(), cleanup
}

// TempFilePath returns a path for a file matching pattern that does not
// yet exist, for tests that want to assert on file-not-found behavior.
func TempFilePath(t *testing.T, pattern string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	path := tmpFile.Name()
	tmpFile.Close()
	os.Remove(path)
	return path
}
