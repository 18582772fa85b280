package binary

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func TestWriteUint16(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	w.WriteUint16(0x1234)

	expected := []byte{0x34, 0x12}
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}
}

func TestWriteUint32(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	w.WriteUint32(0x12345678)

	expected := []byte{0x78, 0x56, 0x34, 0x12}
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}
}

func TestWriterBigEndian(t *testing.T) {
	w := NewWriter(binary.BigEndian)
	w.WriteUint32(0x12345678)

	// Big-endian: high byte first
	expected := []byte{0x12, 0x34, 0x56, 0x78}
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}
}

func TestWritePascalString(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	if err := w.WritePascalString("<ERROR>"); err != nil {
		t.Fatalf("WritePascalString failed: %v", err)
	}
	if err := w.WritePascalString(""); err != nil {
		t.Fatalf("WritePascalString(empty) failed: %v", err)
	}

	expected := append([]byte{7}, "<ERROR>"...)
	expected = append(expected, 0)
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}

	if err := w.WritePascalString(strings.Repeat("x", 256)); err != ErrStringTooLong {
		t.Errorf("expected ErrStringTooLong, got %v", err)
	}
	if w.Pos() != len(expected) {
		t.Errorf("rejected string changed length to %d", w.Pos())
	}
}

func TestPutUint32At(t *testing.T) {
	w := NewWriter(binary.BigEndian)
	w.WriteUint32(0)
	w.WriteUint8(0xEE)

	if err := w.PutUint32At(0, 0xCAFEBABE); err != nil {
		t.Fatalf("PutUint32At failed: %v", err)
	}
	expected := []byte{0xCA, 0xFE, 0xBA, 0xBE, 0xEE}
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}

	if err := w.PutUint32At(2, 1); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	// What the writer produces must read back through the Reader.
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		w := NewWriter(order)
		w.WriteUint8(0xAB)
		w.WriteUint16(0x1234)
		w.WriteUint32(0xDEADBEEF)

		r := NewReader(w.Bytes(), order)

		v8, _ := r.ReadUint8()
		if v8 != 0xAB {
			t.Errorf("%v uint8: expected 0xAB, got 0x%02X", order, v8)
		}
		v16, _ := r.ReadUint16()
		if v16 != 0x1234 {
			t.Errorf("%v uint16: expected 0x1234, got 0x%04X", order, v16)
		}
		v32, _ := r.ReadUint32()
		if v32 != 0xDEADBEEF {
			t.Errorf("%v uint32: expected 0xDEADBEEF, got 0x%08X", order, v32)
		}
		if r.Remaining() != 0 {
			t.Errorf("%v: %d bytes left over", order, r.Remaining())
		}
	}
}

// plainOrder exposes only the binary.ByteOrder methods, hiding the
// Append helpers of the standard orders.
type plainOrder struct{ binary.ByteOrder }

func TestWriterPlainByteOrder(t *testing.T) {
	w := NewWriter(plainOrder{binary.BigEndian})
	w.WriteUint16(0x0102)
	w.WriteUint32(0x03040506)

	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, w.Bytes())
	}
}
