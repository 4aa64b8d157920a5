package table

import (
	"strings"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	out := Format([]string{"ID", "TITLE"}, [][]string{
		{"1", "Rome"},
		{"22", "Milan"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID  TITLE" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "--  -----" {
		t.Errorf("unexpected separator %q", lines[1])
	}
	if lines[2] != "1   Rome" {
		t.Errorf("unexpected row %q", lines[2])
	}
	if lines[3] != "22  Milan" {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestFormatWideRunes(t *testing.T) {
	out := Format([]string{"TITLE", "LANG"}, [][]string{
		{"東京", "ja"},
		{"Rome", "it"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 東京 occupies four display cells, same as Rome, so both pad to the
	// five-cell TITLE column
	if lines[2] != "東京   ja" {
		t.Errorf("unexpected row %q", lines[2])
	}
	if lines[3] != "Rome   it" {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestFormatShortRowPadded(t *testing.T) {
	out := Format([]string{"A", "B"}, [][]string{{"only"}})
	if !strings.Contains(out, "only") {
		t.Errorf("short row missing: %q", out)
	}
}

func TestFormatNoHeaders(t *testing.T) {
	if out := Format(nil, [][]string{{"x"}}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
