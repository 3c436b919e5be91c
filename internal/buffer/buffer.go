// Package buffer implements the twin-buffer input stream the lexer reads
// from: a double-segment byte buffer with a single forward cursor and
// one- or two-character retraction across segment boundaries.
//
// Segment layout: a 2*Size byte array split into [0, Size) and
// [Size, 2*Size). The cursor advances modulo 2*Size; whichever segment is
// not currently under the cursor holds either unconsumed file bytes or a
// NUL-terminated tail planted at end-of-file. A single retract flag
// couples Retract/RetractTwo with the refill logic so a just-retracted
// segment isn't clobbered before the DFA re-reads it.
package buffer

import "io"

// Size is the recommended per-segment size (B in the spec).
const Size = 256

// NUL is the end-of-file sentinel planted immediately after the last real
// byte of a refilled segment.
const NUL = 0

// Buffer is the twin-buffer input stream.
type Buffer struct {
	r       io.Reader
	data    [2 * Size]byte
	cursor  int  // forward cursor, in [0, 2*Size)
	retract bool // suppress the next refill: the last move crossed a boundary backward
	eof     bool // a NUL sentinel has been planted somewhere in data
}

// New wraps r in a twin buffer. The first segment is filled eagerly so the
// first Advance call returns real data.
func New(r io.Reader) *Buffer {
	b := &Buffer{r: r}
	b.refill(0)
	return b
}

// refill reads up to Size bytes into segment `half` (0 or 1), NUL-terminating
// on short read or EOF.
func (b *Buffer) refill(half int) {
	if b.eof {
		return
	}
	start := half * Size
	n, err := io.ReadFull(b.r, b.data[start:start+Size])
	if n < Size {
		b.data[start+n] = NUL
		b.eof = true
	}
	_ = err
}

// Advance returns the next character and moves the cursor forward by one,
// refilling the far segment when the cursor crosses a boundary.
func (b *Buffer) Advance() byte {
	c := b.data[b.cursor]
	prev := b.cursor
	b.cursor = (b.cursor + 1) % (2 * Size)

	if b.retract {
		// The segment we would refill still holds bytes the DFA hasn't
		// consumed yet because of a prior retract; skip exactly one refill.
		b.retract = false
		return c
	}

	if prev == Size-1 {
		b.refill(1)
	} else if prev == 2*Size-1 {
		b.refill(0)
	}
	return c
}

// Retract moves the cursor back by one character. If that step crosses a
// segment boundary, the retract flag is set so the boundary-crossing
// refill that would otherwise follow is suppressed.
func (b *Buffer) Retract() {
	crossed := b.cursor == 0 || b.cursor == Size
	b.cursor = (b.cursor - 1 + 2*Size) % (2 * Size)
	if crossed {
		b.retract = true
	}
}

// RetractTwo retracts two characters under the same boundary discipline as
// Retract, for DFA states that peek two characters ahead. The lexer's
// multi-character operator states call Retract once per character instead.
func (b *Buffer) RetractTwo() {
	b.Retract()
	b.Retract()
}

// Mark returns the current cursor position, to be paired with Slice.
func (b *Buffer) Mark() int {
	return b.cursor
}

// Slice copies the lexeme between begin (inclusive) and the current cursor
// (exclusive) into a new string, handling wrap-around across the 2*Size
// boundary.
func (b *Buffer) Slice(begin int) string {
	if begin == b.cursor {
		return ""
	}
	buf := make([]byte, 0, 32)
	for i := begin; i != b.cursor; i = (i + 1) % (2 * Size) {
		c := b.data[i]
		if c == NUL {
			break
		}
		buf = append(buf, c)
	}
	return string(buf)
}
