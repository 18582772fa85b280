package binary

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestReaderReadUint8(t *testing.T) {
	data := []byte{0x42, 0xFF}
	r := NewReader(data, binary.LittleEndian)

	v, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02x", v)
	}

	v, err = r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02x", v)
	}

	if _, err := r.ReadUint8(); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds at end, got %v", err)
	}
}

func TestReaderReadUint16(t *testing.T) {
	data := []byte{0x02, 0x01}

	le, err := NewReader(data, binary.LittleEndian).ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if le != 0x0102 {
		t.Errorf("little-endian: expected 0x0102, got 0x%04x", le)
	}

	be, err := NewReader(data, binary.BigEndian).ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if be != 0x0201 {
		t.Errorf("big-endian: expected 0x0201, got 0x%04x", be)
	}
}

func TestReaderReadUint32(t *testing.T) {
	data := []byte{0x78, 0x56, 0x34, 0x12}

	le, err := NewReader(data, binary.LittleEndian).ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if le != 0x12345678 {
		t.Errorf("little-endian: expected 0x12345678, got 0x%08x", le)
	}

	be, err := NewReader(data, binary.BigEndian).ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if be != 0x78563412 {
		t.Errorf("big-endian: expected 0x78563412, got 0x%08x", be)
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03}, binary.LittleEndian)
	if _, err := r.ReadUint32(); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if r.Pos() != 0 {
		t.Errorf("failed read moved position to %d", r.Pos())
	}
}

func TestReaderAt(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(data, binary.LittleEndian)

	r2 := r.At(4)
	if r2.Pos() != 4 {
		t.Errorf("expected position 4, got %d", r2.Pos())
	}
	v, err := r2.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x04 {
		t.Errorf("expected 0x04, got 0x%02x", v)
	}

	if r.Pos() != 0 {
		t.Errorf("original reader position changed to %d", r.Pos())
	}

	if _, err := r.At(-1).ReadUint8(); err != ErrOutOfBounds {
		t.Errorf("negative offset: expected ErrOutOfBounds, got %v", err)
	}
	if _, err := r.At(7).ReadUint8(); err != ErrOutOfBounds {
		t.Errorf("offset past end: expected ErrOutOfBounds, got %v", err)
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader(make([]byte, 10), binary.LittleEndian)

	if err := r.Skip(5); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if r.Pos() != 5 || r.Remaining() != 5 {
		t.Errorf("expected pos 5 remaining 5, got %d/%d", r.Pos(), r.Remaining())
	}

	// Landing exactly on the end is fine.
	if err := r.Skip(5); err != nil {
		t.Fatalf("Skip to end failed: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", r.Remaining())
	}

	if err := r.Skip(1); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := r.Skip(-1); err != ErrOutOfBounds {
		t.Errorf("negative skip: expected ErrOutOfBounds, got %v", err)
	}
}

func TestReaderPeek(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	r := NewReader(data, binary.LittleEndian)

	peeked, err := r.Peek(2)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if !bytes.Equal(peeked, []byte{0x01, 0x02}) {
		t.Errorf("expected [01 02], got %v", peeked)
	}
	if r.Pos() != 0 {
		t.Errorf("Peek should not advance position, got %d", r.Pos())
	}

	// Peeked bytes are a view; appending must not clobber the buffer.
	_ = append(peeked, 0xFF)
	if data[2] != 0x03 {
		t.Errorf("append through peeked slice overwrote buffer: %v", data)
	}
}
