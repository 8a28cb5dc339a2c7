package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each column.
// Trailing padding on the last column is dropped.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], cellWidth(cell))
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(row)-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// Columns arranges items top-to-bottom in as many columns as fit in width.
// A width <= 0 yields a single column.
func Columns(items []string, width int) []string {
	if len(items) == 0 {
		return nil
	}
	widest := 0
	for _, item := range items {
		widest = max(widest, cellWidth(item))
	}
	cols := 1
	if width > 0 {
		cols = max(1, (width+len(columnGap))/(widest+len(columnGap)))
	}
	rowCount := (len(items) + cols - 1) / cols
	rows := make([][]string, rowCount)
	for i, item := range items {
		r := i % rowCount
		rows[r] = append(rows[r], item)
	}
	return Format(rows, nil)
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
