// ABOUTME: Plain-text table formatting for terminal output
// ABOUTME: Columns are padded by display width so wide runes stay aligned

package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Format renders headers and rows as an aligned text table. Rows shorter
// than the header are padded with empty cells, longer rows are truncated.
func Format(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow(&b, headers, widths)
	separator := make([]string, len(headers))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	writeRow(&b, separator, widths)
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		writeRow(&b, cells, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
		}
	}
	b.WriteString("\n")
}
