package shapefmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ToMarkdownTable renders the record set as a GitHub-flavored Markdown
// table: a key-union header, a separator line, and one row per record.
// Columns are padded to their widest cell, minimum 3 for the separator
// dashes.
func ToMarkdownTable(v any) string {
	recs := normalize(v)
	keys := keyUnion(recs)
	if len(keys) == 0 {
		return ""
	}

	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = rowFor(r, keys)
	}
	widths := columnWidths(keys, rows, 3)

	var b strings.Builder
	writeMarkdownRow(&b, keys, widths)
	sep := make([]string, len(keys))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(sep, " | "))
	for _, row := range rows {
		writeMarkdownRow(&b, row, widths)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeMarkdownRow(b *strings.Builder, cells []string, widths []int) {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padCell(cell, width)
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(padded, " | "))
}

// columnWidths computes per-column display widths over the header and all
// rows, with a minimum width per column.
func columnWidths(header []string, rows [][]string, min int) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		if widths[i] < min {
			widths[i] = min
		}
	}
	return widths
}

// padCell left-aligns a cell to the given display width.
func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
