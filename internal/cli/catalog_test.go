package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/rocket/pkg/errors"
	"github.com/matzehuels/rocket/pkg/parts"
)

func TestCatalogTable(t *testing.T) {
	out, err := runRoot(t, "catalog")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, p := range parts.Default().Parts() {
		if !strings.Contains(out, p.ID) {
			t.Errorf("table is missing part %s", p.ID)
		}
	}
	for _, header := range []string{"ID", "Category", "Connector", "Height", "Weight", "Shape"} {
		if !strings.Contains(out, header) {
			t.Errorf("table is missing header %s", header)
		}
	}
}

func TestCatalogDOT(t *testing.T) {
	out, err := runRoot(t, "catalog", "--format", "dot")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != parts.ToDOT(parts.Default()) {
		t.Error("dot output should match parts.ToDOT for the built-in catalog")
	}
}

func TestCatalogOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.dot")
	out, err := runRoot(t, "catalog", "-f", "dot", "-o", path)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty when writing to a file, got %d bytes", len(out))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph parts {") {
		t.Errorf("file does not hold a DOT graph: %.40q", data)
	}
}

func TestCatalogInvalidFormat(t *testing.T) {
	_, err := runRoot(t, "catalog", "--format", "png")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("got %v, want INVALID_FORMAT", err)
	}
}
