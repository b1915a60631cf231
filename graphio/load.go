package graphio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/kcover/core"
)

// Load reads a graph file, choosing the decoder from its extension.
func Load(path string) (core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	g, err := Decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode reads a graph from r; name is only used to pick the format.
func Decode(r io.Reader, name string) (core.Graph, error) {
	if IsYAML(name) {
		return DecodeYAML(r)
	}

	return ParseMapLiteral(r)
}

// IsYAML reports whether name has a YAML or JSON extension.
func IsYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// FormatCenters writes centers sorted ascending as `[1, 2]` followed by a newline.
func FormatCenters(w io.Writer, centers []int) error {
	sorted := append([]int(nil), centers...)
	sort.Ints(sorted)

	var b strings.Builder
	b.WriteByte('[')
	for i, c := range sorted {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteString("]\n")
	_, err := io.WriteString(w, b.String())

	return err
}
