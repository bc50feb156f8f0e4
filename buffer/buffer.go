package buffer

import (
	"errors"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Errors returned by buffer operations.
var (
	ErrOutOfBounds     = errors.New("offset out of bounds")
	ErrInvalidBoundary = errors.New("offset inside multi-byte sequence")
)

// Buffer owns the text content and its derived line index.
// Offsets are byte offsets into the content; the line index holds the byte
// offset of the first byte of every line, with entry 0 always 0.
type Buffer struct {
	id            string
	content       []byte
	lineIndex     []ByteOffset
	checkBoundary bool
}

// New creates a new empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:        uuid.NewString(),
		lineIndex: []ByteOffset{0},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// FromString creates a buffer with initial content.
// The line index is built from scratch in O(n).
func FromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.content = []byte(s)
	b.lineIndex = buildLineIndex(b.content)
	return b
}

// ID returns the buffer's stable identifier. Clones and snapshots of a
// buffer share its ID; independently created buffers never collide.
func (b *Buffer) ID() string {
	return b.id
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.content)
}

// TextRange returns the text in [start, end), clamped to content bounds.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	n := b.Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return string(b.content[start:end])
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.content))
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lineIndex)
}

// LineText returns the text of a specific line (without newline).
// Returns "" for line numbers outside the buffer.
func (b *Buffer) LineText(line int) string {
	if line < 0 || line >= len(b.lineIndex) {
		return ""
	}
	start := b.lineIndex[line]
	end := b.Len()
	if line+1 < len(b.lineIndex) {
		end = b.lineIndex[line+1] - 1 // exclude the terminator
	}
	return string(b.content[start:end])
}

// Coordinate Conversion

// LineToByte returns the byte offset of the start of a line.
// Lines past the last line clamp to the end of content: the index behaves
// as if one more virtual line start existed at EOF, so cursors can be
// placed there. Negative line numbers fail with ErrOutOfBounds.
func (b *Buffer) LineToByte(line int) (ByteOffset, error) {
	if line < 0 {
		return 0, ErrOutOfBounds
	}
	if line >= len(b.lineIndex) {
		return b.Len(), nil
	}
	return b.lineIndex[line], nil
}

// ByteToLine returns the 0-indexed line containing the given byte offset,
// found as the greatest line start <= offset via binary search.
// offset == Len() maps to the last line.
func (b *Buffer) ByteToLine(offset ByteOffset) (int, error) {
	if offset < 0 || offset > b.Len() {
		return 0, ErrOutOfBounds
	}
	// First index whose line start is past the offset; the line containing
	// the offset is the one before it. lineIndex[0] == 0 guarantees idx >= 1.
	idx, _ := slices.BinarySearch(b.lineIndex, offset+1)
	return idx - 1, nil
}

// Write Operations

// Insert splices text into the content at the given position.
// Line starts past the position shift by len(text), and every newline in
// text contributes a new line start. Cursors are not adjusted here; that
// is the caller's explicit next step.
func (b *Buffer) Insert(position ByteOffset, text string) error {
	if position < 0 || position > b.Len() {
		return ErrOutOfBounds
	}
	if b.checkBoundary && !b.atBoundary(position) {
		return ErrInvalidBoundary
	}
	if len(text) == 0 {
		return nil
	}

	b.content = slices.Insert(b.content, int(position), []byte(text)...)
	b.spliceIndexInsert(position, text)

	return nil
}

// Delete removes the bytes in the given half-open range.
// Line starts whose terminator fell inside the range are dropped, and
// later entries shift down by the range length.
func (b *Buffer) Delete(rng Range) error {
	if !rng.IsValid() || rng.Start < 0 || rng.End > b.Len() {
		return ErrOutOfBounds
	}
	if b.checkBoundary && (!b.atBoundary(rng.Start) || !b.atBoundary(rng.End)) {
		return ErrInvalidBoundary
	}
	if rng.IsEmpty() {
		return nil
	}

	b.content = slices.Delete(b.content, int(rng.Start), int(rng.End))
	b.spliceIndexDelete(rng)

	return nil
}

// Clone returns an independent copy of the buffer. Mutating the clone
// never affects the original, and vice versa. The ID is shared.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		id:            b.id,
		content:       slices.Clone(b.content),
		lineIndex:     slices.Clone(b.lineIndex),
		checkBoundary: b.checkBoundary,
	}
}

// atBoundary reports whether the offset lies on a UTF-8 sequence boundary.
func (b *Buffer) atBoundary(offset ByteOffset) bool {
	if offset <= 0 || offset >= b.Len() {
		return true
	}
	return utf8.RuneStart(b.content[offset])
}
