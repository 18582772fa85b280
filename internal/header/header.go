// Package header validates the fixed ten-byte brain header.
//
// Every brain starts with the nine ASCII bytes "MegaHALv8" followed by a
// one-byte format version, which must be 5. Nothing else in the file may be
// read until [Validate] has passed: it also guarantees the buffer is long
// enough to hold two trees and a dictionary, so later stages can index the
// header and the first nodes without further checks.
package header

import (
	"bytes"
	"fmt"

	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// Signature is the header signature as bytes.
var Signature = []byte(format.Signature)

// Validate checks buf's size and header. maxSize bounds the buffer length
// when positive. Every failure wraps format.ErrMismatch.
func Validate(buf []byte, maxSize int) error {
	if len(buf) < format.MinSize {
		return fmt.Errorf("%w: %d bytes is shorter than the %d-byte minimum",
			format.ErrMismatch, len(buf), format.MinSize)
	}
	if maxSize > 0 && len(buf) > maxSize {
		return fmt.Errorf("%w: %d bytes exceeds the %d-byte limit",
			format.ErrMismatch, len(buf), maxSize)
	}
	if v := buf[format.SignatureSize]; v != format.Version {
		return fmt.Errorf("%w: unsupported version %d", format.ErrMismatch, v)
	}
	if !bytes.Equal(buf[:format.SignatureSize], Signature) {
		return fmt.Errorf("%w: signature %q", format.ErrMismatch, buf[:format.SignatureSize])
	}
	return nil
}
