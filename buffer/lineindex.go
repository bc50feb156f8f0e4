package buffer

import (
	"slices"
	"sort"
)

// buildLineIndex scans content and returns the full line-start table:
// offset 0 plus the position after every newline. A trailing newline
// therefore yields a final empty line, matching editor convention.
func buildLineIndex(content []byte) []ByteOffset {
	index := make([]ByteOffset, 1, 16)
	index[0] = 0

	for i, c := range content {
		if c == '\n' {
			index = append(index, ByteOffset(i)+1)
		}
	}

	return index
}

// spliceIndexInsert updates the line index for an insertion of text at
// position. Line starts strictly after the position shift right; starts at
// exactly the position stay, because their terminator did not move. New
// starts for newlines inside text land in sorted order between the two.
func (b *Buffer) spliceIndexInsert(position ByteOffset, text string) {
	delta := ByteOffset(len(text))

	at := sort.Search(len(b.lineIndex), func(i int) bool {
		return b.lineIndex[i] > position
	})
	for i := at; i < len(b.lineIndex); i++ {
		b.lineIndex[i] += delta
	}

	var added []ByteOffset
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			added = append(added, position+ByteOffset(i)+1)
		}
	}
	if len(added) > 0 {
		b.lineIndex = slices.Insert(b.lineIndex, at, added...)
	}
}

// spliceIndexDelete updates the line index for a deletion of rng.
// A line start in (Start, End] had its terminator deleted, so the entry is
// dropped; entries past End shift left by the deleted length. Entry 0 is
// never touched. The result is identical to rebuilding from content.
func (b *Buffer) spliceIndexDelete(rng Range) {
	lo := sort.Search(len(b.lineIndex), func(i int) bool {
		return b.lineIndex[i] > rng.Start
	})
	hi := sort.Search(len(b.lineIndex), func(i int) bool {
		return b.lineIndex[i] > rng.End
	})

	b.lineIndex = slices.Delete(b.lineIndex, lo, hi)

	delta := rng.Len()
	for i := lo; i < len(b.lineIndex); i++ {
		b.lineIndex[i] -= delta
	}
}
