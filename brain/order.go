package brain

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Order is the byte order of a brain's multi-byte fields.
type Order uint8

const (
	Unknown Order = iota
	BigEndian
	LittleEndian
)

func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Valid reports whether o is BigEndian or LittleEndian.
func (o Order) Valid() bool {
	return o == BigEndian || o == LittleEndian
}

// ByteOrder returns the encoding/binary order for o, or nil for Unknown.
func (o Order) ByteOrder() binary.ByteOrder {
	switch o {
	case BigEndian:
		return binary.BigEndian
	case LittleEndian:
		return binary.LittleEndian
	default:
		return nil
	}
}

// Opposite returns the other order. Unknown stays Unknown.
func (o Order) Opposite() Order {
	switch o {
	case BigEndian:
		return LittleEndian
	case LittleEndian:
		return BigEndian
	default:
		return Unknown
	}
}

// NativeOrder returns the byte order of the running machine.
func NativeOrder() Order {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x02}) == 0x0102 {
		return BigEndian
	}
	return LittleEndian
}

// ParseTarget resolves a conversion target name. "big" and "little" are
// absolute; "this" (or "native") and "other" (or "opposite") are relative
// to native. Case is ignored.
func ParseTarget(name string, native Order) (Order, error) {
	if !native.Valid() {
		return Unknown, fmt.Errorf("%w: native order %s", ErrInvalidTarget, native)
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "big", "big-endian", "be":
		return BigEndian, nil
	case "little", "little-endian", "le":
		return LittleEndian, nil
	case "this", "native":
		return native, nil
	case "other", "opposite":
		return native.Opposite(), nil
	default:
		return Unknown, fmt.Errorf("%w: %q (want big, little, this or other)", ErrInvalidTarget, name)
	}
}
