package polyedit

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Library is an ordered collection of distinct polylines.
//
// Items are kept sorted by Compare and structurally equal polylines are
// stored once. Editing a polyline in place can break the order; call
// Normalize afterwards.
type Library struct {
	items []*Polyline
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{}
}

// Len returns the number of polylines.
func (l *Library) Len() int {
	return len(l.items)
}

// Add inserts p in order. It reports false, leaving the library unchanged,
// when an equal polyline is already present.
func (l *Library) Add(p *Polyline) bool {
	i, found := slices.BinarySearchFunc(l.items, p, Compare)
	if found {
		return false
	}
	l.items = slices.Insert(l.items, i, p)
	return true
}

// Find returns the stored polyline equal to p.
func (l *Library) Find(p *Polyline) (*Polyline, bool) {
	i, found := slices.BinarySearchFunc(l.items, p, Compare)
	if !found {
		return nil, false
	}
	return l.items[i], true
}

// Get returns the polyline with the given identity.
func (l *Library) Get(id uuid.UUID) (*Polyline, bool) {
	for _, p := range l.items {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Remove deletes the polyline with the given identity and marks it
// FlagDeleted. It reports whether one was found.
func (l *Library) Remove(id uuid.UUID) bool {
	for i, p := range l.items {
		if p.ID == id {
			p.SetFlags(FlagDeleted)
			l.items = slices.Delete(l.items, i, i+1)
			return true
		}
	}
	return false
}

// Normalize re-sorts the library after in-place edits and drops later
// duplicates, keeping the first of each equal run in the previous order.
// It returns the number of polylines dropped.
func (l *Library) Normalize() int {
	slices.SortStableFunc(l.items, Compare)
	before := len(l.items)
	l.items = slices.CompactFunc(l.items, Equal)
	return before - len(l.items)
}

// All returns an iterator over the polylines in order.
func (l *Library) All() iter.Seq[*Polyline] {
	return slices.Values(l.items)
}
