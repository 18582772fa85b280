package binary

import "math/bits"

// Swap16 reverses the two bytes at the start of b in place.
func Swap16(b []byte) {
	_ = b[1]
	b[0], b[1] = b[1], b[0]
}

// Swap32 reverses the four bytes at the start of b in place.
func Swap32(b []byte) {
	_ = b[3]
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]
}

// Reverse32 returns v with its bytes in the opposite order.
func Reverse32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}
