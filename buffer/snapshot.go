package buffer

import "slices"

// Snapshot is a read-only view of a buffer at a specific point in time.
// It is fully independent of the originating buffer: later edits to the
// buffer never show through, so a snapshot is safe to hand to a concurrent
// reader such as a renderer or background formatter.
type Snapshot struct {
	id        string
	content   []byte
	lineIndex []ByteOffset
}

// Snapshot captures the current buffer state.
func (b *Buffer) Snapshot() *Snapshot {
	return &Snapshot{
		id:        b.id,
		content:   slices.Clone(b.content),
		lineIndex: slices.Clone(b.lineIndex),
	}
}

// ID returns the identifier of the buffer this snapshot was taken from.
func (s *Snapshot) ID() string {
	return s.id
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return string(s.content)
}

// TextRange returns the text in [start, end), clamped to content bounds.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	n := s.Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return string(s.content[start:end])
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.content))
}

// IsEmpty returns true if the snapshot has no content.
func (s *Snapshot) IsEmpty() bool {
	return len(s.content) == 0
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lineIndex)
}

// LineToByte returns the byte offset of the start of a line, with the same
// clamping convention as Buffer.LineToByte.
func (s *Snapshot) LineToByte(line int) (ByteOffset, error) {
	if line < 0 {
		return 0, ErrOutOfBounds
	}
	if line >= len(s.lineIndex) {
		return s.Len(), nil
	}
	return s.lineIndex[line], nil
}

// ByteToLine returns the 0-indexed line containing the given byte offset.
func (s *Snapshot) ByteToLine(offset ByteOffset) (int, error) {
	if offset < 0 || offset > s.Len() {
		return 0, ErrOutOfBounds
	}
	i, _ := slices.BinarySearch(s.lineIndex, offset+1)
	return i - 1, nil
}
