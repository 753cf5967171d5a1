package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Theme", "Samples", "Shortest"}
	rows := [][]string{
		{"coding", "3", "22"},
		{"literature", "12", "30"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Theme      Samples Shortest" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "coding           3       22" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "literature      12       30" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"A", "B"}, [][]string{{"🌟", "x"}}, nil)
	if lines[1] != "🌟 x" {
		t.Fatalf("unexpected wide rune row: %q", lines[1])
	}
	if lines[0] != "A  B" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestTruncateCell(t *testing.T) {
	if got := truncateCell("short", 10); got != "short" {
		t.Fatalf("expected untouched cell, got %q", got)
	}
	if got := truncateCell("The Earth revolves", 8); got != "The Ear…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
