package cursor

// AdjustForInsertion remaps a single offset across an insertion of
// insertLen bytes at insertOffset. An offset exactly at the insertion
// point shifts with the inserted text: insertions happen before a caret's
// conceptual position, so typing pushes a caret sitting there forward.
func AdjustForInsertion(offset, insertOffset, insertLen ByteOffset) ByteOffset {
	if offset < insertOffset {
		return offset
	}
	return offset + insertLen
}

// AdjustForDeletion remaps a single offset across a deletion of rng.
// Offsets strictly before the range are unchanged; offsets inside the
// range collapse to its start (they cannot reference deleted content);
// offsets at or after the end shift down by the deleted length.
func AdjustForDeletion(offset ByteOffset, rng Range) ByteOffset {
	if offset < rng.Start {
		return offset
	}
	if offset < rng.End {
		return rng.Start
	}
	return offset - rng.Len()
}

// AdjustAfterInsert remaps every cursor in the set across an insertion of
// length bytes at position. Positions and anchors are adjusted by the same
// rule, independently. Cursor count and identity never change.
func (cs *CursorSet) AdjustAfterInsert(position, length ByteOffset) {
	for id, c := range cs.cursors {
		c.Position = AdjustForInsertion(c.Position, position, length)
		if c.Anchor != nil {
			anchor := AdjustForInsertion(*c.Anchor, position, length)
			c.Anchor = &anchor
		}
		cs.cursors[id] = c
	}
}

// AdjustAfterDelete remaps every cursor in the set across a deletion of
// rng, applying AdjustForDeletion to positions and anchors independently.
func (cs *CursorSet) AdjustAfterDelete(rng Range) {
	for id, c := range cs.cursors {
		c.Position = AdjustForDeletion(c.Position, rng)
		if c.Anchor != nil {
			anchor := AdjustForDeletion(*c.Anchor, rng)
			c.Anchor = &anchor
		}
		cs.cursors[id] = c
	}
}
