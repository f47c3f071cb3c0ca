// ABOUTME: Aligned plain-text tables measured in terminal cells
// ABOUTME: Wide (CJK) cells are measured and truncated with go-runewidth

package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	colGap   = 2
	ellipsis = "…"
)

// Table renders headers and rows as aligned columns. When the printer has a
// width, every column is capped at an equal share of it.
func (p *Printer) Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	maxCol := 0
	if p.width > 0 {
		maxCol = max((p.width-colGap*(cols-1))/cols, runewidth.StringWidth(ellipsis)+1)
	}
	cell := func(s string) string {
		if maxCol > 0 {
			return runewidth.Truncate(s, maxCol, ellipsis)
		}
		return s
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(cell(h))
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(cell(row[i])))
		}
	}

	var b strings.Builder
	writeRow := func(values []string, header bool) {
		for i := range cols {
			var v string
			if i < len(values) {
				v = cell(values[i])
			}
			last := i == cols-1
			if !last {
				v = runewidth.FillRight(v, widths[i])
			}
			if header {
				v = p.Header(v)
			}
			b.WriteString(v)
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, true)
	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = p.paint(styleDim, strings.Repeat("─", w))
	}
	b.WriteString(strings.Join(seps, strings.Repeat(" ", colGap)))
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, false)
	}
	return b.String()
}
