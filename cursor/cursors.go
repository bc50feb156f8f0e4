package cursor

import (
	"errors"
	"slices"
)

// Errors returned by CursorSet operations.
var (
	ErrEmptySet      = errors.New("cursor set is empty")
	ErrUnknownCursor = errors.New("unknown cursor id")
)

// CursorSet manages multiple independent cursors keyed by stable IDs.
// Exactly one cursor is primary once any cursor has been added; a fresh
// empty set is a valid state only before the first Add.
type CursorSet struct {
	cursors map[ID]Cursor
	order   []ID // insertion order; order[0] is the default primary
	primary ID
	nextID  ID
}

// NewCursorSet creates an empty cursor set.
func NewCursorSet() *CursorSet {
	return &CursorSet{
		cursors: make(map[ID]Cursor),
	}
}

// Add inserts a cursor, assigns it a fresh unique ID and returns it.
// The first cursor added becomes primary.
func (cs *CursorSet) Add(c Cursor) ID {
	id := cs.nextID
	cs.nextID++

	cs.cursors[id] = c
	cs.order = append(cs.order, id)
	if len(cs.order) == 1 {
		cs.primary = id
	}

	return id
}

// Get returns the cursor with the given ID.
func (cs *CursorSet) Get(id ID) (Cursor, bool) {
	c, ok := cs.cursors[id]
	return c, ok
}

// Update replaces the cursor with the given ID.
func (cs *CursorSet) Update(id ID, c Cursor) error {
	if _, ok := cs.cursors[id]; !ok {
		return ErrUnknownCursor
	}
	cs.cursors[id] = c
	return nil
}

// Remove deletes the cursor with the given ID. Removing the primary
// promotes the oldest remaining cursor.
func (cs *CursorSet) Remove(id ID) error {
	if _, ok := cs.cursors[id]; !ok {
		return ErrUnknownCursor
	}

	delete(cs.cursors, id)
	if i := slices.Index(cs.order, id); i >= 0 {
		cs.order = slices.Delete(cs.order, i, i+1)
	}

	if cs.primary == id && len(cs.order) > 0 {
		cs.primary = cs.order[0]
	}

	return nil
}

// Primary returns the designated primary cursor.
func (cs *CursorSet) Primary() (Cursor, error) {
	if len(cs.order) == 0 {
		return Cursor{}, ErrEmptySet
	}
	return cs.cursors[cs.primary], nil
}

// PrimaryID returns the ID of the primary cursor.
func (cs *CursorSet) PrimaryID() (ID, error) {
	if len(cs.order) == 0 {
		return 0, ErrEmptySet
	}
	return cs.primary, nil
}

// SetPrimary reassigns primacy to the cursor with the given ID.
func (cs *CursorSet) SetPrimary(id ID) error {
	if _, ok := cs.cursors[id]; !ok {
		return ErrUnknownCursor
	}
	cs.primary = id
	return nil
}

// Len returns the number of cursors in the set.
func (cs *CursorSet) Len() int {
	return len(cs.order)
}

// IDs returns the cursor IDs in insertion order.
// The returned slice is safe to modify without affecting the set.
func (cs *CursorSet) IDs() []ID {
	return slices.Clone(cs.order)
}

// ForEach calls f for each cursor in insertion order.
func (cs *CursorSet) ForEach(f func(id ID, c Cursor)) {
	for _, id := range cs.order {
		f(id, cs.cursors[id])
	}
}

// Clone returns a deep copy of the cursor set, including anchors.
func (cs *CursorSet) Clone() *CursorSet {
	clone := &CursorSet{
		cursors: make(map[ID]Cursor, len(cs.cursors)),
		order:   slices.Clone(cs.order),
		primary: cs.primary,
		nextID:  cs.nextID,
	}
	for id, c := range cs.cursors {
		if c.Anchor != nil {
			anchor := *c.Anchor
			c.Anchor = &anchor
		}
		clone.cursors[id] = c
	}
	return clone
}
