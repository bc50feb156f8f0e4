package editor

import (
	"errors"
	"fmt"

	"github.com/Umair-Engn/fresh/buffer"
	"github.com/Umair-Engn/fresh/cursor"
)

// ErrStaleEdit is returned when a delete event's captured text does not
// match the buffer content at its range, indicating the event was computed
// against outdated state. The caller recovers by re-deriving the event.
var ErrStaleEdit = errors.New("deleted text does not match buffer content")

// EditorState owns one Buffer and one CursorSet and keeps them mutually
// consistent across edits. Viewport dimensions are stored for rendering
// collaborators and are otherwise opaque to the core.
type EditorState struct {
	buf       *buffer.Buffer
	cursors   *cursor.CursorSet
	width     int
	height    int
	observers []Observer
}

// New creates an editor state owning the given buffer, with a single
// primary cursor at offset 0.
func New(buf *buffer.Buffer, width, height int) *EditorState {
	cs := cursor.NewCursorSet()
	cs.Add(cursor.New(0))

	return &EditorState{
		buf:     buf,
		cursors: cs,
		width:   width,
		height:  height,
	}
}

// Buffer returns the owned buffer. Rendering collaborators read it; only
// Apply mutates it.
func (s *EditorState) Buffer() *buffer.Buffer {
	return s.buf
}

// Cursors returns the owned cursor set.
func (s *EditorState) Cursors() *cursor.CursorSet {
	return s.cursors
}

// Size returns the stored viewport dimensions.
func (s *EditorState) Size() (width, height int) {
	return s.width, s.height
}

// Resize updates the stored viewport dimensions.
func (s *EditorState) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Clone returns an independent deep copy for the snapshot pattern: the
// clone shares no mutable state with the original. Observers are not
// carried over; they belong to the live state.
func (s *EditorState) Clone() *EditorState {
	return &EditorState{
		buf:     s.buf.Clone(),
		cursors: s.cursors.Clone(),
		width:   s.width,
		height:  s.height,
	}
}

// Apply performs one event transactionally: either the buffer and every
// cursor end in a mutually consistent state, or nothing is mutated. All
// validation precedes the first mutation.
func (s *EditorState) Apply(ev Event) error {
	var err error

	switch ev.kind {
	case KindInsert:
		err = s.applyInsert(ev)
	case KindDelete:
		err = s.applyDelete(ev)
	case KindMoveCursor:
		err = s.applyMoveCursor(ev)
	default:
		err = fmt.Errorf("apply: unknown event kind %d", ev.kind)
	}

	if err != nil {
		return err
	}

	s.notify(ev)
	return nil
}

func (s *EditorState) applyInsert(ev Event) error {
	if _, ok := s.cursors.Get(ev.cursorID); !ok {
		return fmt.Errorf("apply insert: cursor %d: %w", ev.cursorID, cursor.ErrUnknownCursor)
	}

	if err := s.buf.Insert(ev.position, ev.text); err != nil {
		return fmt.Errorf("apply insert at %d: %w", ev.position, err)
	}

	length := ByteOffset(len(ev.text))
	s.cursors.AdjustAfterInsert(ev.position, length)

	// The generic rule already shifts a cursor sitting exactly at the
	// insertion point, but the originating caret must land after its own
	// insertion no matter how that rule evolves. Pinned by tests.
	c, _ := s.cursors.Get(ev.cursorID)
	c.Position = ev.position + length
	_ = s.cursors.Update(ev.cursorID, c)

	return nil
}

func (s *EditorState) applyDelete(ev Event) error {
	if _, ok := s.cursors.Get(ev.cursorID); !ok {
		return fmt.Errorf("apply delete: cursor %d: %w", ev.cursorID, cursor.ErrUnknownCursor)
	}

	rng := ev.rng
	if !rng.IsValid() || rng.Start < 0 || rng.End > s.buf.Len() {
		return fmt.Errorf("apply delete %s: %w", rng, buffer.ErrOutOfBounds)
	}

	if s.buf.TextRange(rng.Start, rng.End) != ev.text {
		return fmt.Errorf("apply delete %s: %w", rng, ErrStaleEdit)
	}

	if err := s.buf.Delete(rng); err != nil {
		return fmt.Errorf("apply delete %s: %w", rng, err)
	}

	s.cursors.AdjustAfterDelete(rng)

	// A delete always collapses the originating cursor's selection and
	// leaves its caret at the start of the removed region.
	_ = s.cursors.Update(ev.cursorID, cursor.New(rng.Start))

	return nil
}

func (s *EditorState) applyMoveCursor(ev Event) error {
	if _, ok := s.cursors.Get(ev.cursorID); !ok {
		return fmt.Errorf("apply move: cursor %d: %w", ev.cursorID, cursor.ErrUnknownCursor)
	}

	if ev.position < 0 || ev.position > s.buf.Len() {
		return fmt.Errorf("apply move to %d: %w", ev.position, buffer.ErrOutOfBounds)
	}
	if ev.hasAnchor && (ev.anchor < 0 || ev.anchor > s.buf.Len()) {
		return fmt.Errorf("apply move anchor %d: %w", ev.anchor, buffer.ErrOutOfBounds)
	}

	c := cursor.New(ev.position)
	if ev.hasAnchor {
		c = cursor.NewWithAnchor(ev.position, ev.anchor)
	}
	_ = s.cursors.Update(ev.cursorID, c)

	return nil
}
