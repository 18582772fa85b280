// Package binary provides bounds-checked, byte-order aware access to brain
// buffers.
package binary

import (
	"encoding/binary"
	"errors"
)

// ErrOutOfBounds is returned when a read would go past the end of the buffer.
var ErrOutOfBounds = errors.New("read past end of buffer")

// Reader reads fixed-width integers from a byte slice in a configured byte
// order. Reads never go past len(buf) and never copy: ReadBytes returns a
// view into the underlying slice.
type Reader struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a reader over buf positioned at 0.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{
		buf:   buf,
		order: order,
		pos:   0,
	}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying slice but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{
		buf:   r.buf,
		order: r.order,
		pos:   offset,
	}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of bytes between the position and the end.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// ReadBytes returns the next n bytes and advances past them.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.Peek(n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(buf), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// Skip advances the position by n bytes. Skipping to exactly the end of
// the buffer is allowed; skipping past it is not.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos < 0 || n > len(r.buf)-r.pos {
		return ErrOutOfBounds
	}
	r.pos += n
	return nil
}

// Peek returns n bytes without advancing the position.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n < 0 || r.pos < 0 || r.pos > len(r.buf) || n > len(r.buf)-r.pos {
		return nil, ErrOutOfBounds
	}
	return r.buf[r.pos : r.pos+n : r.pos+n], nil
}
