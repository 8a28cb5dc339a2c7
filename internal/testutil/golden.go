package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

// AssertGolden compares output with testdata/<goldenName> in the package
// under test. Setting UPDATE_GOLDEN rewrites the file first.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join("testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	if diff := cmp.Diff(string(data), output); diff != "" {
		t.Fatalf("output mismatch for %s (-want +got):\n%s", goldenName, diff)
	}
}

// Screen strips escape sequences from terminal output and normalises line
// endings so rendered screens can be compared as plain text.
func Screen(output string) string {
	return strings.ReplaceAll(ansi.Strip(output), "\r\n", "\n")
}
