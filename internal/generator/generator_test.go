package generator

import "testing"

func TestSeededPickIsReproducible(t *testing.T) {
	samples := []string{"a", "b", "c", "d", "e"}
	g1 := NewSeeded(42)
	g2 := NewSeeded(42)
	for i := 0; i < 20; i++ {
		if a, b := g1.Pick(samples), g2.Pick(samples); a != b {
			t.Fatalf("pick %d differs: %q vs %q", i, a, b)
		}
	}
}

func TestPickStaysInPool(t *testing.T) {
	samples := []string{"x", "y"}
	g := New()
	for i := 0; i < 50; i++ {
		got := g.Pick(samples)
		if got != "x" && got != "y" {
			t.Fatalf("unexpected pick %q", got)
		}
	}
	if got := g.Pick(nil); got != "" {
		t.Fatalf("expected empty pick for empty pool, got %q", got)
	}
}

func TestPickerFunc(t *testing.T) {
	var p Picker = PickerFunc(func(samples []string) string { return samples[len(samples)-1] })
	if got := p.Pick([]string{"first", "last"}); got != "last" {
		t.Fatalf("expected last, got %q", got)
	}
}
