package registry

import (
	"testing"

	"github.com/drakoger/tracker/internal/models"
)

func TestEnsureCategory(t *testing.T) {
	r := New()

	r.EnsureCategory("Chores")
	r.EnsureCategory("Chores")

	groups := r.FetchAll()
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Name != "Chores" || len(groups[0].Entries) != 0 {
		t.Errorf("group = %+v, want empty Chores", groups[0])
	}
}

func TestAddEntry(t *testing.T) {
	t.Run("appends to existing group", func(t *testing.T) {
		r := New()
		r.EnsureCategory("Chores")
		r.AddEntry(models.Tracker{ID: "a", Name: "A"}, "Chores")
		r.AddEntry(models.Tracker{ID: "b", Name: "B"}, "Chores")

		groups := r.FetchAll()
		if len(groups) != 1 || len(groups[0].Entries) != 2 {
			t.Fatalf("groups = %+v, want one group with two entries", groups)
		}
		if groups[0].Entries[0].ID != "a" || groups[0].Entries[1].ID != "b" {
			t.Error("entries not in insertion order")
		}
	})

	t.Run("creates group on demand", func(t *testing.T) {
		r := New()
		r.AddEntry(models.Tracker{ID: "a", Name: "A"}, "New")

		groups := r.FetchAll()
		if len(groups) != 1 || groups[0].Name != "New" || len(groups[0].Entries) != 1 {
			t.Fatalf("groups = %+v, want New with one entry", groups)
		}
	})
}

func TestFetchAll(t *testing.T) {
	t.Run("sorted by name ascending", func(t *testing.T) {
		r := New()
		r.EnsureCategory("Zeta")
		r.EnsureCategory("Alpha")
		r.EnsureCategory("Mid")

		groups := r.FetchAll()
		want := []string{"Alpha", "Mid", "Zeta"}
		for i, g := range groups {
			if g.Name != want[i] {
				t.Errorf("groups[%d] = %q, want %q", i, g.Name, want[i])
			}
		}
	})

	t.Run("returns copies", func(t *testing.T) {
		r := New()
		r.AddEntry(models.Tracker{ID: "a"}, "G")

		got := r.FetchAll()
		got[0].Entries[0].ID = "mutated"

		if r.FetchAll()[0].Entries[0].ID != "a" {
			t.Error("mutation of FetchAll result leaked into registry")
		}
	})
}
