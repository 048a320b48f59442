package polyedit

import (
	"slices"
	"testing"
)

func TestLibraryAddDeduplicates(t *testing.T) {
	lib := NewLibrary()
	a := NewPolylineFrom(pts(0, 0, 10, 0))
	dup := NewPolylineFrom(pts(0, 0, 10, 0))
	b := NewPolylineFrom(pts(0, 0, 5, 5, 10, 0))

	if !lib.Add(b) || !lib.Add(a) {
		t.Fatal("Add() = false for distinct polylines")
	}
	if lib.Add(dup) {
		t.Error("Add() = true for an equal polyline")
	}
	if lib.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lib.Len())
	}

	got := slices.Collect(lib.All())
	if got[0] != a || got[1] != b {
		t.Errorf("All() order = %v, want [a b]", got)
	}

	if found, ok := lib.Find(dup); !ok || found != a {
		t.Errorf("Find() = %v, %v, want a, true", found, ok)
	}
}

func TestLibraryGetRemove(t *testing.T) {
	lib := NewLibrary()
	p := NewPolylineFrom(pts(0, 0, 10, 0))
	lib.Add(p)

	if got, ok := lib.Get(p.ID); !ok || got != p {
		t.Errorf("Get() = %v, %v, want p, true", got, ok)
	}
	if !lib.Remove(p.ID) {
		t.Fatal("Remove() = false for a stored polyline")
	}
	if !p.HasFlags(FlagDeleted) {
		t.Error("Remove() did not set FlagDeleted")
	}
	if lib.Remove(p.ID) {
		t.Error("Remove() = true for a removed polyline")
	}
	if _, ok := lib.Get(p.ID); ok {
		t.Error("Get() found a removed polyline")
	}
}

func TestLibraryNormalize(t *testing.T) {
	lib := NewLibrary()
	a := NewPolylineFrom(pts(0, 0, 10, 0))
	b := NewPolylineFrom(pts(0, 0, 20, 0))
	c := NewPolylineFrom(pts(0, 0, 30, 0))
	lib.Add(a)
	lib.Add(b)
	lib.Add(c)

	// Editing b in place makes it equal to a and c sorts before it.
	b.SetPoint(1, Vt(10, 0))
	c.SetPoint(1, Vt(1, 0))

	if dropped := lib.Normalize(); dropped != 1 {
		t.Errorf("Normalize() = %d, want 1", dropped)
	}

	got := slices.Collect(lib.All())
	if len(got) != 2 || got[0] != c || got[1] != a {
		t.Errorf("after Normalize = %v, want [c a]", got)
	}
}
