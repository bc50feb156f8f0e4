// Package editor orchestrates the editing core: it owns one Buffer and one
// CursorSet and applies Events to both as a single atomic unit.
//
// An Event is an immutable, self-describing value for one mutation: an
// insert, a delete, or a cursor move. Delete events carry the exact text
// they remove, so every insert and delete can be inverted from its own
// fields; undo/redo, macro replay and collaborative editing can be built
// on a recorded event sequence without snapshotting buffer state.
//
// EditorState.Apply is a pure reducer over (state, event): re-applying the
// same event sequence from the same initial state is deterministic. Apply
// never fails partially. All validation happens before any mutation, so a
// malformed event (bad offsets, unknown cursor, stale deleted text) leaves
// buffer and cursors exactly as they were.
//
//	buf := buffer.New()
//	st := editor.New(buf, 80, 24)
//
//	id, _ := st.Cursors().PrimaryID()
//	err := st.Apply(editor.NewInsert(0, "hello world", id))
//
// The state is designed for single-threaded synchronous use: Apply is not
// reentrant, nothing blocks or performs I/O, and concurrent readers take a
// Clone (or a buffer Snapshot) instead of sharing the live state.
package editor
