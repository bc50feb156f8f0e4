// Package buffer provides the mutable text store at the bottom of the
// editing core: a byte sequence of Unicode text plus a derived line index
// that maps line numbers to byte offsets.
//
// The line index is a flat, strictly increasing table of line-start offsets,
// maintained incrementally across edits. Lookups in either direction are
// O(log lines) via binary search; the observable results are always
// identical to a full rebuild of the index from the current content.
//
// All positions are byte offsets, never character or grapheme counts.
// Callers are responsible for keeping offsets on encoding boundaries; the
// WithBoundaryCheck option turns on validation that rejects offsets falling
// inside a multi-byte UTF-8 sequence.
//
// Basic usage:
//
//	buf := buffer.FromString("hello\nworld")
//
//	buf.Insert(5, ",")                 // "hello,\nworld"
//	buf.Delete(buffer.NewRange(0, 6))  // "\nworld"
//
//	off, _ := buf.LineToByte(1)        // 1
//	line, _ := buf.ByteToLine(3)       // 1
//
// Buffer has no cursor awareness and performs no I/O. It is not safe for
// concurrent use; the owning EditorState serializes all access, and
// Snapshot or Clone provide independent copies for concurrent readers.
package buffer
