// Package cursor tracks insertion points and selections over a buffer.
//
// A Cursor is a byte-offset position plus an optional selection anchor.
// Anchor and position may be in either order; selection direction is never
// normalized away. A nil anchor means a plain caret.
//
// A CursorSet holds any number of cursors keyed by stable IDs. The first
// cursor added becomes primary until primacy is reassigned. The set knows
// how to remap every tracked position across an insert or delete performed
// anywhere in the buffer:
//
//	cs := cursor.NewCursorSet()
//	id := cs.Add(cursor.New(10))
//
//	cs.AdjustAfterInsert(5, 3)                  // cursor now at 13
//	cs.AdjustAfterDelete(buffer.NewRange(0, 4)) // cursor now at 9
//
// Adjustment is pure position remapping: it never changes cursor count or
// identity and takes no reference to a Buffer. The caller (EditorState)
// keeps the buffer mutation and the adjustment call in sync.
//
// NextBoundary and PrevBoundary locate grapheme-cluster boundaries so that
// command collaborators can move carets over user-perceived characters
// rather than raw bytes.
package cursor
