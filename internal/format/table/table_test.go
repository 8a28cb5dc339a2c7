package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"python", "12"},
		{"go", "3"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"python  12",
		"go       3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "bb"}, {"ccc"}}, nil)
	want := []string{"a    bb", "ccc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestColumnsFillsTopToBottom(t *testing.T) {
	items := []string{"go", "node", "python", "rust", "zig"}
	got := Columns(items, 24)
	want := []string{
		"go    python  zig",
		"node  rust",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
}

func TestColumnsSingleColumnWithoutWidth(t *testing.T) {
	got := Columns([]string{"go", "node"}, 0)
	if diff := cmp.Diff([]string{"go", "node"}, got); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
	if Columns(nil, 80) != nil {
		t.Fatal("expected nil for no items")
	}
}

func TestCellWidthCountsWideRunes(t *testing.T) {
	if w := cellWidth("日本"); w != 4 {
		t.Fatalf("expected width 4, got %d", w)
	}
}
