package editor

import (
	"errors"
	"fmt"

	"github.com/Umair-Engn/fresh/buffer"
	"github.com/Umair-Engn/fresh/cursor"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// ErrNotInvertible is returned by Invert for events that do not carry
// enough information to construct their own inverse.
var ErrNotInvertible = errors.New("event is not invertible")

// Kind discriminates the event variants.
type Kind uint8

const (
	KindInsert     Kind = iota // text inserted at a position
	KindDelete                 // a byte range removed
	KindMoveCursor             // a cursor repositioned, no buffer mutation
)

// String returns the string representation of the event kind.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindMoveCursor:
		return "move-cursor"
	default:
		return "unknown"
	}
}

// Event is an immutable description of a single mutation. It is a value,
// not a reference into buffer state: it remains valid and replayable after
// the buffer has changed. Exactly one Apply consumes an event; callers may
// retain it afterwards for inversion or replay.
type Event struct {
	kind      Kind
	position  ByteOffset   // insert/move target position
	text      string       // inserted text (insert) or removed text (delete)
	rng       buffer.Range // delete range
	cursorID  cursor.ID
	anchor    ByteOffset // move anchor, meaningful when hasAnchor
	hasAnchor bool
}

// NewInsert creates an event inserting text at the given position.
// cursorID names the cursor that originated the edit; it is used for the
// final caret placement, never for position computation.
func NewInsert(position ByteOffset, text string, cursorID cursor.ID) Event {
	return Event{
		kind:     KindInsert,
		position: position,
		text:     text,
		cursorID: cursorID,
	}
}

// NewDelete creates an event removing the half-open byte range rng.
// deletedText must be the exact text occupying rng at apply time; the
// mismatch check is what makes stale events detectable, and the captured
// text is what makes the event invertible.
func NewDelete(rng buffer.Range, deletedText string, cursorID cursor.ID) Event {
	return Event{
		kind:     KindDelete,
		rng:      rng,
		text:     deletedText,
		cursorID: cursorID,
	}
}

// NewMoveCursor creates an event setting the named cursor's position and
// anchor directly. A nil anchor clears the selection. The anchor value is
// copied; the caller's pointer is not retained.
func NewMoveCursor(cursorID cursor.ID, position ByteOffset, anchor *ByteOffset) Event {
	ev := Event{
		kind:     KindMoveCursor,
		position: position,
		cursorID: cursorID,
	}
	if anchor != nil {
		ev.anchor = *anchor
		ev.hasAnchor = true
	}
	return ev
}

// Kind returns the event variant.
func (e Event) Kind() Kind {
	return e.kind
}

// CursorID returns the cursor that originated the event.
func (e Event) CursorID() cursor.ID {
	return e.cursorID
}

// Position returns the target position of an insert or move event.
func (e Event) Position() ByteOffset {
	return e.position
}

// Text returns the inserted text of an insert event.
func (e Event) Text() string {
	if e.kind != KindInsert {
		return ""
	}
	return e.text
}

// Range returns the byte range of a delete event.
func (e Event) Range() buffer.Range {
	return e.rng
}

// DeletedText returns the captured text of a delete event.
func (e Event) DeletedText() string {
	if e.kind != KindDelete {
		return ""
	}
	return e.text
}

// Anchor returns the anchor of a move event, or nil when the move clears
// the selection. The returned pointer is a copy on every call.
func (e Event) Anchor() *ByteOffset {
	if !e.hasAnchor {
		return nil
	}
	anchor := e.anchor
	return &anchor
}

// Invert returns the event that undoes this one. An insert inverts to a
// delete over the inserted range with the inserted text captured; a delete
// inverts to an insert of the captured text at the range start. MoveCursor
// carries no pre-state, so the caller must have recorded the previous
// position itself; Invert fails with ErrNotInvertible.
func (e Event) Invert() (Event, error) {
	switch e.kind {
	case KindInsert:
		rng := buffer.NewRange(e.position, e.position+ByteOffset(len(e.text)))
		return NewDelete(rng, e.text, e.cursorID), nil
	case KindDelete:
		return NewInsert(e.rng.Start, e.text, e.cursorID), nil
	default:
		return Event{}, fmt.Errorf("invert %s: %w", e.kind, ErrNotInvertible)
	}
}

// String returns a human-readable representation of the event.
func (e Event) String() string {
	switch e.kind {
	case KindInsert:
		return fmt.Sprintf("Insert(%d, %q, cursor %d)", e.position, e.text, e.cursorID)
	case KindDelete:
		return fmt.Sprintf("Delete(%s, %q, cursor %d)", e.rng, e.text, e.cursorID)
	case KindMoveCursor:
		if e.hasAnchor {
			return fmt.Sprintf("MoveCursor(%d -> %d, anchor %d)", e.cursorID, e.position, e.anchor)
		}
		return fmt.Sprintf("MoveCursor(%d -> %d)", e.cursorID, e.position)
	default:
		return "Event(unknown)"
	}
}
