package generators

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// FileGenerator reads up to Count(size) lines from a file, failing if the
// file has fewer lines than requested. Its display name is the base name
// of the file it reads.
type FileGenerator struct {
	path string
	name string
}

// NewFileGenerator constructs a FileGenerator reading from path. It does
// not open the file until Generate is called.
func NewFileGenerator(path string) *FileGenerator {
	return &FileGenerator{path: path, name: filepath.Base(path)}
}

func (g *FileGenerator) DisplayName() string { return g.name }

func (g *FileGenerator) Generate(size DataSize) ([]string, error) {
	want := Count(size)
	f, err := os.Open(g.path)
	if err != nil {
		return nil, &Error{Generator: g.name, Size: size, Err: fmt.Errorf("opening %s: %w", g.path, err)}
	}
	defer f.Close()

	data := make([]string, 0, want)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for want > 0 && scanner.Scan() {
		data = append(data, scanner.Text())
		want--
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Generator: g.name, Size: size, Err: fmt.Errorf("reading %s: %w", g.path, err)}
	}
	if want > 0 {
		return nil, &Error{
			Generator: g.name,
			Size:      size,
			Err:       fmt.Errorf("file %q has too few lines (%d more needed)", g.name, want),
		}
	}
	return data, nil
}
