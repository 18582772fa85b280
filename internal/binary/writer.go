package binary

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrStringTooLong is returned when a pascal string does not fit its
// one-byte length prefix.
var ErrStringTooLong = errors.New("pascal string longer than 255 bytes")

// Writer appends fixed-width integers and length-prefixed strings to a
// growing byte slice in a configured byte order.
type Writer struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWriter creates an empty writer.
func NewWriter(order binary.ByteOrder) *Writer {
	return &Writer{order: order}
}

// Pos returns the current write position, which is also the number of
// bytes written so far.
func (w *Writer) Pos() int {
	return len(w.buf)
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends data verbatim.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteUint8 appends an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint16 appends an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint32 appends an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WritePascalString appends a one-byte length followed by s.
func (w *Writer) WritePascalString(s string) error {
	if len(s) > math.MaxUint8 {
		return ErrStringTooLong
	}
	w.buf = append(w.buf, uint8(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// PutUint32At overwrites four bytes at off, which must already have been
// written.
func (w *Writer) PutUint32At(off int, v uint32) error {
	if off < 0 || off+4 > len(w.buf) {
		return ErrOutOfBounds
	}
	w.order.PutUint32(w.buf[off:], v)
	return nil
}
