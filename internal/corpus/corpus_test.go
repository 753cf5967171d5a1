package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typetheme/internal/model"
)

func TestBuiltinHasFourThemes(t *testing.T) {
	p := Builtin()
	if err := p.Validate(); err != nil {
		t.Fatalf("builtin pool invalid: %v", err)
	}
	want := []model.Theme{model.ThemeCoding, model.ThemeLiterature, model.ThemeQuotes, model.ThemeScience}
	got := p.Themes()
	if len(got) != len(want) {
		t.Fatalf("expected %d themes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("theme %d: expected %q, got %q", i, want[i], got[i])
		}
		if len(p.Samples(want[i])) != 3 {
			t.Fatalf("expected 3 samples for %q", want[i])
		}
	}
}

func TestMergeKeepsBuiltinsFirstAndDedupes(t *testing.T) {
	extra := FromMap(map[model.Theme][]string{
		"Art":              {"Less is more."},
		model.ThemeScience: {"Every action has an equal and opposite reaction.", "Light bends near mass."},
	})
	p := Merge(Builtin(), extra)
	themes := p.Themes()
	if themes[len(themes)-1] != "art" {
		t.Fatalf("expected extra theme last, got %v", themes)
	}
	if n := len(p.Samples(model.ThemeScience)); n != 4 {
		t.Fatalf("expected 4 science samples after dedupe, got %d", n)
	}
}

func TestFromMapDropsInvalidSamples(t *testing.T) {
	p := FromMap(map[model.Theme][]string{
		"empty": {"", "   ", "tab\tinside"},
		"ok":    {"fine"},
	})
	if p.Has("empty") {
		t.Fatalf("expected theme without valid samples to be dropped")
	}
	if !p.Has("ok") {
		t.Fatalf("expected theme ok to be kept")
	}
}

func TestValidateEmptyPool(t *testing.T) {
	if err := (Pool{}).Validate(); err == nil {
		t.Fatalf("expected error for empty pool")
	}
}

func TestResolve(t *testing.T) {
	p := Builtin()
	tests := []struct {
		in   string
		want model.Theme
		ok   bool
	}{
		{"coding", model.ThemeCoding, true},
		{"  Science ", model.ThemeScience, true},
		{"litrature", model.ThemeLiterature, true},
		{"quo", model.ThemeQuotes, true},
		{"zzz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := p.Resolve(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Resolve(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNextWraps(t *testing.T) {
	p := Builtin()
	if got := p.Next(model.ThemeScience, 1); got != model.ThemeCoding {
		t.Fatalf("expected wrap to coding, got %q", got)
	}
	if got := p.Next(model.ThemeCoding, -1); got != model.ThemeScience {
		t.Fatalf("expected wrap back to science, got %q", got)
	}
}

func TestLoadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	if err := os.WriteFile(path, []byte("first line\n\n  \r\nsecond line\r\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("load lines: %v", err)
	}
	if len(lines) != 2 || lines[0] != "first line" || lines[1] != "second line" {
		t.Fatalf("unexpected lines: %q", lines)
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadLines(empty); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestValidSample(t *testing.T) {
	if !ValidSample("const hello = 'world';") {
		t.Fatalf("expected code sample to be valid")
	}
	for _, text := range []string{"", "  ", "two\nlines"} {
		if ValidSample(text) {
			t.Fatalf("expected %q to be rejected", text)
		}
	}
}
