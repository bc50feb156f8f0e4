package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}

	if off, err := b.LineToByte(0); err != nil || off != 0 {
		t.Errorf("expected line 0 at offset 0, got %d (%v)", off, err)
	}
}

func TestFromString(t *testing.T) {
	text := "Hello, World!"
	b := FromString(text)

	if b.Text() != text {
		t.Errorf("expected %q, got %q", text, b.Text())
	}

	if b.Len() != int64(len(text)) {
		t.Errorf("expected length %d, got %d", len(text), b.Len())
	}
}

func TestFromStringMultiline(t *testing.T) {
	b := FromString("line1\nline2\nline3")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	if b.LineText(0) != "line1" {
		t.Errorf("expected line1, got %q", b.LineText(0))
	}

	if b.LineText(1) != "line2" {
		t.Errorf("expected line2, got %q", b.LineText(1))
	}

	if b.LineText(2) != "line3" {
		t.Errorf("expected line3, got %q", b.LineText(2))
	}
}

func TestFromStringTrailingNewline(t *testing.T) {
	b := FromString("a\n")

	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}

	if b.LineText(1) != "" {
		t.Errorf("expected empty last line, got %q", b.LineText(1))
	}
}

func TestBufferID(t *testing.T) {
	b1 := New()
	b2 := New()

	if b1.ID() == "" {
		t.Error("buffer ID should not be empty")
	}
	if b1.ID() == b2.ID() {
		t.Error("independent buffers should have distinct IDs")
	}
	if b1.Clone().ID() != b1.ID() {
		t.Error("a clone should keep the buffer ID")
	}
}

func TestInsert(t *testing.T) {
	b := FromString("Hello World")

	if err := b.Insert(5, ","); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", b.Text())
	}
}

func TestInsertAtStart(t *testing.T) {
	b := FromString("World")

	if err := b.Insert(0, "Hello "); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "Hello World" {
		t.Errorf("expected 'Hello World', got %q", b.Text())
	}
}

func TestInsertAtEnd(t *testing.T) {
	b := FromString("Hello")

	if err := b.Insert(5, " World"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "Hello World" {
		t.Errorf("expected 'Hello World', got %q", b.Text())
	}
}

func TestInsertOutOfBounds(t *testing.T) {
	b := FromString("Hello")

	if err := b.Insert(100, "X"); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	if err := b.Insert(-1, "X"); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	if b.Text() != "Hello" {
		t.Errorf("failed insert must not mutate content, got %q", b.Text())
	}
}

func TestInsertNewlines(t *testing.T) {
	b := FromString("ab")

	if err := b.Insert(1, "x\ny\n"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "ax\ny\nb" {
		t.Errorf("expected 'ax\\ny\\nb', got %q", b.Text())
	}

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	if b.LineText(0) != "ax" || b.LineText(1) != "y" || b.LineText(2) != "b" {
		t.Errorf("unexpected lines: %q %q %q", b.LineText(0), b.LineText(1), b.LineText(2))
	}
}

func TestInsertAtLineStart(t *testing.T) {
	b := FromString("a\nb")

	// Inserting at an existing line start must leave that start in place.
	if err := b.Insert(2, "x"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "a\nxb" {
		t.Errorf("expected 'a\\nxb', got %q", b.Text())
	}

	if off, _ := b.LineToByte(1); off != 2 {
		t.Errorf("expected line 1 at offset 2, got %d", off)
	}
}

func TestDelete(t *testing.T) {
	b := FromString("Hello, World!")

	if err := b.Delete(NewRange(5, 7)); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if b.Text() != "HelloWorld!" {
		t.Errorf("expected 'HelloWorld!', got %q", b.Text())
	}
}

func TestDeleteInvalidRange(t *testing.T) {
	b := FromString("Hello")

	if err := b.Delete(NewRange(3, 2)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for inverted range, got %v", err)
	}

	if err := b.Delete(NewRange(0, 100)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	if b.Text() != "Hello" {
		t.Errorf("failed delete must not mutate content, got %q", b.Text())
	}
}

func TestDeleteAcrossLines(t *testing.T) {
	b := FromString("a\nb\nc")

	if err := b.Delete(NewRange(1, 3)); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if b.Text() != "a\nc" {
		t.Errorf("expected 'a\\nc', got %q", b.Text())
	}

	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}

	if off, _ := b.LineToByte(1); off != 2 {
		t.Errorf("expected line 1 at offset 2, got %d", off)
	}
}

func TestDeleteTerminatorMergesLines(t *testing.T) {
	b := FromString("ab\ncd")

	if err := b.Delete(NewRange(0, 3)); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if b.Text() != "cd" {
		t.Errorf("expected 'cd', got %q", b.Text())
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	texts := []string{"", "hello", "hello\nworld\n", "a\n\n\nb"}
	inserts := []string{"x", "multi\nline\ntext", "\n", "日本語"}

	for _, base := range texts {
		for _, ins := range inserts {
			for pos := ByteOffset(0); pos <= ByteOffset(len(base)); pos++ {
				b := FromString(base)
				if err := b.Insert(pos, ins); err != nil {
					t.Fatalf("insert %q at %d in %q: %v", ins, pos, base, err)
				}
				if err := b.Delete(NewRange(pos, pos+ByteOffset(len(ins)))); err != nil {
					t.Fatalf("delete at %d in %q: %v", pos, base, err)
				}
				if b.Text() != base {
					t.Fatalf("round trip mismatch: got %q, want %q", b.Text(), base)
				}
			}
		}
	}
}

func TestLineToByteClampsPastEnd(t *testing.T) {
	b := FromString("one\ntwo")

	off, err := b.LineToByte(99)
	if err != nil {
		t.Fatalf("line past end should clamp, got error %v", err)
	}
	if off != b.Len() {
		t.Errorf("expected clamp to %d, got %d", b.Len(), off)
	}

	if _, err := b.LineToByte(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for negative line, got %v", err)
	}
}

func TestByteToLine(t *testing.T) {
	b := FromString("ab\ncd\nef")

	cases := []struct {
		offset ByteOffset
		line   int
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 1}, {5, 1},
		{6, 2}, {7, 2}, {8, 2}, // 8 == Len maps to last line
	}

	for _, tc := range cases {
		line, err := b.ByteToLine(tc.offset)
		if err != nil {
			t.Fatalf("ByteToLine(%d): %v", tc.offset, err)
		}
		if line != tc.line {
			t.Errorf("ByteToLine(%d) = %d, want %d", tc.offset, line, tc.line)
		}
	}

	if _, err := b.ByteToLine(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := b.ByteToLine(b.Len() + 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestLineByteInverse(t *testing.T) {
	b := FromString("first\nsecond\n\nfourth\nfifth")

	for line := 0; line < b.LineCount(); line++ {
		off, err := b.LineToByte(line)
		if err != nil {
			t.Fatalf("LineToByte(%d): %v", line, err)
		}
		got, err := b.ByteToLine(off)
		if err != nil {
			t.Fatalf("ByteToLine(%d): %v", off, err)
		}
		if got != line {
			t.Errorf("ByteToLine(LineToByte(%d)) = %d", line, got)
		}
	}
}

func TestThousandLines(t *testing.T) {
	b := FromString(strings.Repeat("line\n", 1000))

	if b.Len() != 5000 {
		t.Fatalf("expected 5000 bytes, got %d", b.Len())
	}

	off, err := b.LineToByte(500)
	if err != nil || off != 2500 {
		t.Errorf("LineToByte(500) = %d (%v), want 2500", off, err)
	}

	line, err := b.ByteToLine(2500)
	if err != nil || line != 500 {
		t.Errorf("ByteToLine(2500) = %d (%v), want 500", line, err)
	}
}

func TestTextRange(t *testing.T) {
	b := FromString("hello world")

	if got := b.TextRange(0, 5); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := b.TextRange(6, 100); got != "world" {
		t.Errorf("clamped range should yield 'world', got %q", got)
	}
	if got := b.TextRange(5, 5); got != "" {
		t.Errorf("empty range should yield empty string, got %q", got)
	}
}

func TestBoundaryCheck(t *testing.T) {
	b := FromString("日本語", WithBoundaryCheck())

	if err := b.Insert(1, "x"); !errors.Is(err, ErrInvalidBoundary) {
		t.Errorf("expected ErrInvalidBoundary, got %v", err)
	}

	if err := b.Insert(3, "x"); err != nil {
		t.Errorf("offset 3 is a rune boundary, got %v", err)
	}

	if err := b.Delete(NewRange(4, 7)); !errors.Is(err, ErrInvalidBoundary) {
		t.Errorf("expected ErrInvalidBoundary for mid-rune start, got %v", err)
	}
}

func TestBoundaryCheckOffByDefault(t *testing.T) {
	b := FromString("日本語")

	if err := b.Insert(1, "x"); err != nil {
		t.Errorf("boundary check should be off by default, got %v", err)
	}
}

func TestClone(t *testing.T) {
	b := FromString("shared text")
	c := b.Clone()

	if err := c.Insert(0, "clone: "); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "shared text" {
		t.Errorf("mutating a clone must not affect the original, got %q", b.Text())
	}

	if err := b.Delete(NewRange(0, 7)); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if c.Text() != "clone: shared text" {
		t.Errorf("mutating the original must not affect a clone, got %q", c.Text())
	}
}

func TestSnapshotIndependence(t *testing.T) {
	b := FromString("one\ntwo")
	snap := b.Snapshot()

	if err := b.Insert(0, "zero\n"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if snap.Text() != "one\ntwo" {
		t.Errorf("snapshot must not see later edits, got %q", snap.Text())
	}
	if snap.LineCount() != 2 {
		t.Errorf("expected 2 lines in snapshot, got %d", snap.LineCount())
	}
	if line, err := snap.ByteToLine(4); err != nil || line != 1 {
		t.Errorf("snapshot ByteToLine(4) = %d (%v), want 1", line, err)
	}
	if snap.ID() != b.ID() {
		t.Error("snapshot should carry the buffer ID")
	}
}
