// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Level", "Name", "Hex"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Palette", "Colours"})

	// Add matching row
	table.AddRow([]string{"Clothing", "#8b4513"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"Makeup"})
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected row to be padded to 2 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"Lips", "#ff6f61", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Level", "Name"})
	table.AddRow([]string{"1", "Porcelain"})
	table.AddRow([]string{"10", "Ebony"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Level") {
		t.Errorf("Expected header to start with Level, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "-----") {
		t.Errorf("Expected separator line, got %q", lines[1])
	}

	// Columns should be aligned: "Name" starts at the same offset everywhere.
	offset := strings.Index(lines[0], "Name")
	if offset < 0 {
		t.Fatalf("Header missing Name column: %q", lines[0])
	}
	if lines[2][offset:offset+9] != "Porcelain" {
		t.Errorf("Expected Porcelain at column offset %d, got %q", offset, lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty render for headerless table, got %q", got)
	}
}
