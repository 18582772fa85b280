// Package testbrain builds synthetic MegaHALv8 brains for tests.
//
// A [Brain] describes the two trees and the dictionary; [Build] encodes it
// in a chosen byte order. [Minimal] is the smallest valid brain (two leaf
// roots, one word) and [Sample] is a small brain with nested branches and a
// multi-word dictionary.
//
// Helpers call t.Fatalf on failure rather than returning errors, since test
// setup failures are not recoverable.
package testbrain

import (
	"encoding/binary"

	binpkg "github.com/robert-malhotra/go-brnflip/internal/binary"
	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// Node is one tree node and its children, in pre-order.
type Node struct {
	Symbol   uint16
	Usage    uint32
	Count    uint16
	Children []Node
}

// Brain describes a whole brain file.
type Brain struct {
	Forward  Node
	Backward Node

	// Words is the dictionary. Build does not insert "<ERROR>"; put it
	// first to produce a well-formed brain.
	Words []string
}

// T is the subset of testing.TB the helpers need.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Encode writes b in the given byte order.
func Encode(b Brain, order binary.ByteOrder) ([]byte, error) {
	w := binpkg.NewWriter(order)
	w.WriteBytes([]byte(format.Signature))
	w.WriteUint8(format.Version)

	writeTree(w, b.Forward)
	writeTree(w, b.Backward)

	countOffset := w.Pos()
	w.WriteUint32(0)
	for _, word := range b.Words {
		if err := w.WritePascalString(word); err != nil {
			return nil, err
		}
	}
	if err := w.PutUint32At(countOffset, uint32(len(b.Words))); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Build is Encode for tests.
func Build(t T, b Brain, order binary.ByteOrder) []byte {
	t.Helper()
	buf, err := Encode(b, order)
	if err != nil {
		t.Fatalf("encoding test brain: %v", err)
	}
	return buf
}

func writeTree(w *binpkg.Writer, n Node) {
	w.WriteUint16(n.Symbol)
	w.WriteUint32(n.Usage)
	w.WriteUint16(n.Count)
	w.WriteUint16(uint16(len(n.Children)))
	for _, child := range n.Children {
		writeTree(w, child)
	}
}

// TreeEnd returns the dictionary offset b will have once encoded.
func TreeEnd(b Brain) int {
	return format.HeaderSize + (countNodes(b.Forward)+countNodes(b.Backward))*format.NodeSize
}

func countNodes(n Node) int {
	total := 1
	for _, child := range n.Children {
		total += countNodes(child)
	}
	return total
}

// Minimal returns the smallest well-formed brain: two leaf roots and a
// dictionary holding only "<ERROR>".
func Minimal() Brain {
	return Brain{
		Forward:  Node{Symbol: 0x0102, Usage: 0x03040506, Count: 0x0708},
		Backward: Node{Symbol: 0x1112, Usage: 0x13141516, Count: 0x1718},
		Words:    []string{format.ErrorWord},
	}
}

// Sample returns a brain with nested, uneven branching and a dictionary
// whose word count is not a byte-swap palindrome.
func Sample() Brain {
	return Brain{
		Forward: Node{
			Symbol: 0, Usage: 12, Count: 3,
			Children: []Node{
				{Symbol: 2, Usage: 5, Count: 2, Children: []Node{
					{Symbol: 3, Usage: 2, Count: 2, Children: []Node{
						{Symbol: 1, Usage: 2, Count: 2},
					}},
				}},
				{Symbol: 3, Usage: 4, Count: 1},
				{Symbol: 4, Usage: 3, Count: 3, Children: []Node{
					{Symbol: 1, Usage: 1, Count: 1},
					{Symbol: 2, Usage: 2, Count: 2},
				}},
			},
		},
		Backward: Node{
			Symbol: 0, Usage: 9, Count: 2,
			Children: []Node{
				{Symbol: 1, Usage: 7, Count: 7, Children: []Node{
					{Symbol: 4, Usage: 300, Count: 258},
				}},
				{Symbol: 4, Usage: 2, Count: 2},
			},
		},
		Words: []string{format.ErrorWord, "<FIN>", "HELLO", "WORLD", ""},
	}
}
