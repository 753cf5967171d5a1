package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typetheme/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "corpus.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestAddAndListSamples(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	id1, err := st.AddSample(ctx, "Art", "Less is more.")
	if err != nil {
		t.Fatalf("add sample: %v", err)
	}
	id2, err := st.AddSample(ctx, "art", "Less is more.")
	if err != nil {
		t.Fatalf("add duplicate sample: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("duplicate sample should keep id %d, got %d", id1, id2)
	}
	if _, err := st.AddSample(ctx, model.ThemeScience, "Light bends near mass."); err != nil {
		t.Fatalf("add sample: %v", err)
	}

	all, err := st.ListSamples(ctx, "")
	if err != nil {
		t.Fatalf("list samples: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(all))
	}
	if all[0].Theme != "art" || all[0].CreatedAt.IsZero() {
		t.Fatalf("unexpected first sample: %+v", all[0])
	}

	science, err := st.ListSamples(ctx, model.ThemeScience)
	if err != nil {
		t.Fatalf("list science samples: %v", err)
	}
	if len(science) != 1 || science[0].Text != "Light bends near mass." {
		t.Fatalf("unexpected science samples: %+v", science)
	}
}

func TestAddSampleValidation(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.AddSample(ctx, " ", "text"); err == nil {
		t.Fatalf("expected error for empty theme")
	}
	if _, err := st.AddSample(ctx, "art", "  "); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestAddSamplesCountsNewRows(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	added, err := st.AddSamples(ctx, "quotes", []string{"One.", "Two.", "One.", ""})
	if err != nil {
		t.Fatalf("add samples: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 new samples, got %d", added)
	}
	added, err = st.AddSamples(ctx, "quotes", []string{"Two.", "Three."})
	if err != nil {
		t.Fatalf("add samples: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 new sample, got %d", added)
	}
}

func TestRemoveSample(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	id, err := st.AddSample(ctx, "art", "Less is more.")
	if err != nil {
		t.Fatalf("add sample: %v", err)
	}
	removed, err := st.RemoveSample(ctx, id)
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v, %v", removed, err)
	}
	removed, err = st.RemoveSample(ctx, id)
	if err != nil || removed {
		t.Fatalf("expected second removal to report false, got %v, %v", removed, err)
	}
}

func TestPoolGroupsByTheme(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.AddSamples(ctx, "art", []string{"A.", "B."}); err != nil {
		t.Fatalf("add samples: %v", err)
	}
	if _, err := st.AddSample(ctx, "coding", "x := 1"); err != nil {
		t.Fatalf("add sample: %v", err)
	}
	pool, err := st.Pool(ctx)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	if len(pool["art"]) != 2 || len(pool[model.ThemeCoding]) != 1 {
		t.Fatalf("unexpected pool: %v", pool)
	}
}

func TestReopenKeepsSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := st.AddSample(context.Background(), "art", "Less is more."); err != nil {
		t.Fatalf("add sample: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	samples, err := st.ListSamples(context.Background(), "art")
	if err != nil || len(samples) != 1 {
		t.Fatalf("expected persisted sample, got %v, %v", samples, err)
	}
}
