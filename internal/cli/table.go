// Package cli provides command-line interface utilities.
package cli

import "strings"

// Table is a simple column formatter with dynamic widths, used for the text
// report and the scale listing.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded with empty cells;
// long rows are truncated to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	line := make([]string, len(t.headers))
	for i, h := range t.headers {
		line[i] = padRight(h, widths[i])
	}
	result.WriteString(strings.Join(line, gap))
	result.WriteString("\n")

	for i, w := range widths {
		line[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(line, gap))
	result.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			line[i] = padRight(cell, widths[i])
		}
		result.WriteString(strings.Join(line, gap))
		result.WriteString("\n")
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
