package polyedit

import "github.com/google/uuid"

// ItemFlags holds the status bits a host editor sets on library items.
type ItemFlags uint32

const (
	// FlagDeleted marks an item removed from its library but not yet freed.
	FlagDeleted ItemFlags = 1 << iota

	// FlagSkip marks an item excluded from the current selection pass.
	FlagSkip
)

// Item is the identity and status shared by every drawable library item.
type Item struct {
	ID    uuid.UUID
	Flags ItemFlags
}

func newItem() Item {
	return Item{ID: uuid.New()}
}

// SetFlags sets the given bits.
func (it *Item) SetFlags(f ItemFlags) {
	it.Flags |= f
}

// ClearFlags clears the given bits.
func (it *Item) ClearFlags(f ItemFlags) {
	it.Flags &^= f
}

// HasFlags reports whether any of the given bits is set.
func (it *Item) HasFlags(f ItemFlags) bool {
	return it.Flags&f != 0
}
