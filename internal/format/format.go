// Package format describes the MegaHALv8 brain file layout.
//
// A brain is three contiguous regions:
//
//	+0x00  signature  "MegaHALv8" (9 bytes, no terminator)
//	+0x09  version    uint8, always 5
//	+0x0a  tree #1    pre-order nodes
//	 ...   tree #2    pre-order nodes, immediately after tree #1
//	 D     words      uint32 word count N
//	 D+4   N pascal strings (uint8 length + bytes), first is "<ERROR>"
//
// Every node is a fixed 10-byte record:
//
//	+0  symbol    uint16
//	+2  usage     uint32
//	+6  count     uint16
//	+8  branches  uint16, number of child nodes that follow
//
// The file does not record which byte order its multi-byte fields use.
package format

import "errors"

// Signature is the literal text at the start of every brain.
const Signature = "MegaHALv8"

// Version is the format revision stored right after the signature.
const Version = 5

// Region and record sizes.
const (
	SignatureSize = len(Signature)
	HeaderSize    = SignatureSize + 1
	NodeSize      = 10
	CountSize     = 4
)

// Node field offsets, relative to the start of the node.
const (
	NodeSymbolOffset   = 0
	NodeUsageOffset    = 2
	NodeCountOffset    = 6
	NodeBranchesOffset = 8
)

// ErrorWord is always the first dictionary entry.
const ErrorWord = "<ERROR>"

// TreeCount is the number of trees between the header and the dictionary.
const TreeCount = 2

// MinTreeEnd is the smallest possible dictionary offset: two leaf roots.
const MinTreeEnd = HeaderSize + TreeCount*NodeSize

// MinSize is the smallest well-formed brain: header, two leaf roots,
// a word count of one and the "<ERROR>" word.
const MinSize = MinTreeEnd + CountSize + 1 + len(ErrorWord)

// Default resource limits.
const (
	DefaultMaxSize  = 1 << 30
	DefaultMaxDepth = 4096
)

// ErrMismatch is returned (wrapped) whenever a buffer is not a well-formed
// brain or its byte order cannot be established.
var ErrMismatch = errors.New("not a MegaHALv8 brain")

// IsTreeEnd reports whether off could be the end of the tree region, i.e.
// it lies a whole number of nodes past the header and leaves room for two
// root nodes.
func IsTreeEnd(off int) bool {
	return off >= MinTreeEnd && (off-HeaderSize)%NodeSize == 0
}
