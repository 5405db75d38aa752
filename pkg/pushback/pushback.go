package pushback

import (
	"bufio"
	"io"
)

// Reader reads single bytes from an io.Reader and accepts an unbounded
// number of pushed-back bytes. bufio.Reader.UnreadByte only holds one byte,
// which is not enough to rewind a whole token plus the whitespace consumed
// in front of it, so pushed-back bytes live on an explicit stack here.
//
// Pushed-back bytes come off the stack last-in first-out: to restore a
// consumed run, push it back in reverse order.
type Reader struct {
	br      *bufio.Reader
	pending []byte
}

// NewReader wraps r. The Reader borrows r and never closes it; whoever
// opened the underlying stream is responsible for closing it.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadByte returns the most recently pushed-back byte, if any, and
// otherwise the next byte of the underlying stream. Once the stream is
// exhausted and no pushed-back bytes remain it returns io.EOF.
func (r *Reader) ReadByte() (byte, error) {
	if n := len(r.pending); n > 0 {
		b := r.pending[n-1]
		r.pending = r.pending[:n-1]
		return b, nil
	}
	return r.br.ReadByte()
}

// UnreadByte pushes b back so that the next ReadByte returns it. It may be
// called any number of times between reads.
func (r *Reader) UnreadByte(b byte) {
	r.pending = append(r.pending, b)
}
