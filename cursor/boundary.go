package cursor

import "github.com/rivo/uniseg"

// NextBoundary returns the first grapheme-cluster boundary in text after
// the given offset, clamped to len(text). Moving a caret to the returned
// offset advances it by one user-perceived character.
func NextBoundary(text string, offset ByteOffset) ByteOffset {
	n := ByteOffset(len(text))
	if offset >= n {
		return n
	}
	if offset < 0 {
		offset = 0
	}

	var pos ByteOffset
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += ByteOffset(len(cluster))
		if pos > offset {
			return pos
		}
	}
	return n
}

// PrevBoundary returns the last grapheme-cluster boundary in text strictly
// before the given offset, clamped to 0.
func PrevBoundary(text string, offset ByteOffset) ByteOffset {
	if offset <= 0 {
		return 0
	}
	n := ByteOffset(len(text))
	if offset > n {
		offset = n
	}

	var pos, prev ByteOffset
	state := -1
	rest := text
	for len(rest) > 0 && pos < offset {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		prev = pos
		pos += ByteOffset(len(cluster))
	}
	if pos < offset {
		return pos
	}
	return prev
}
