package cursor

import (
	"fmt"

	"github.com/Umair-Engn/fresh/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// ID uniquely identifies a cursor within a CursorSet. IDs are stable for
// the cursor's whole lifetime and never reused within a set.
type ID uint64

// Cursor represents an insertion point in the buffer, with an optional
// selection anchor marking the other end of a selection. Position and
// anchor may be in either order.
type Cursor struct {
	Position ByteOffset
	Anchor   *ByteOffset // nil means no selection, a caret only
}

// New creates a caret at the given position, with no selection.
func New(position ByteOffset) Cursor {
	return Cursor{Position: position}
}

// NewWithAnchor creates a cursor with an active selection between anchor
// and position.
func NewWithAnchor(position, anchor ByteOffset) Cursor {
	return Cursor{Position: position, Anchor: &anchor}
}

// HasSelection returns true if the cursor has an anchor.
func (c Cursor) HasSelection() bool {
	return c.Anchor != nil
}

// SelectionRange returns the selected range normalized to Start <= End,
// and whether a selection exists. A zero-width selection is possible when
// the anchor equals the position.
func (c Cursor) SelectionRange() (Range, bool) {
	if c.Anchor == nil {
		return Range{}, false
	}
	if *c.Anchor <= c.Position {
		return buffer.NewRange(*c.Anchor, c.Position), true
	}
	return buffer.NewRange(c.Position, *c.Anchor), true
}

// Collapse returns a copy of the cursor with the selection dropped.
func (c Cursor) Collapse() Cursor {
	return Cursor{Position: c.Position}
}

// WithPosition returns a copy of the cursor moved to the given position,
// keeping the anchor.
func (c Cursor) WithPosition(position ByteOffset) Cursor {
	return Cursor{Position: position, Anchor: c.Anchor}
}

// Equals returns true if two cursors have the same position and anchor.
func (c Cursor) Equals(other Cursor) bool {
	if c.Position != other.Position {
		return false
	}
	if (c.Anchor == nil) != (other.Anchor == nil) {
		return false
	}
	return c.Anchor == nil || *c.Anchor == *other.Anchor
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.Anchor == nil {
		return fmt.Sprintf("Cursor(%d)", c.Position)
	}
	return fmt.Sprintf("Cursor(%d,anchor=%d)", c.Position, *c.Anchor)
}
