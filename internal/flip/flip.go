// Package flip byte-swaps a brain in place.
package flip

import (
	"fmt"

	binpkg "github.com/robert-malhotra/go-brnflip/internal/binary"
	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// Flip reverses the byte order of every multi-byte field in buf: the four
// fields of each node in the tree region, then the dictionary word count at
// dict. Dictionary strings are left alone. Node positions do not depend on
// tree shape, so the tree region is swept ten bytes at a time rather than
// walked.
//
// dict must come from dictionary.Locate on the same buffer. Flip checks it
// before touching anything, so an error always leaves buf unchanged.
// Applying Flip twice restores the original bytes.
func Flip(buf []byte, dict int) error {
	if !format.IsTreeEnd(dict) || dict+format.CountSize > len(buf) {
		return fmt.Errorf("%w: %d is not a dictionary offset", format.ErrMismatch, dict)
	}

	for pos := format.HeaderSize; pos < dict; pos += format.NodeSize {
		node := buf[pos : pos+format.NodeSize]
		binpkg.Swap16(node[format.NodeSymbolOffset:])
		binpkg.Swap32(node[format.NodeUsageOffset:])
		binpkg.Swap16(node[format.NodeCountOffset:])
		binpkg.Swap16(node[format.NodeBranchesOffset:])
	}
	binpkg.Swap32(buf[dict:])
	return nil
}
