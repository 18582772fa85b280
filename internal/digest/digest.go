// Package digest fingerprints brain contents so a run can report whether a
// conversion changed the file.
package digest

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Size is the digest length in bytes.
const Size = 32

// Digest is a BLAKE3 hash of a brain buffer.
type Digest [Size]byte

// Sum hashes data.
func Sum(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// String returns the hex encoding used in logs and inspect output.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first eight bytes in hex, enough to tell two
// files apart in a log line.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:8])
}

// MarshalText encodes the digest as hex.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
