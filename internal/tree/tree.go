// Package tree decodes the pre-order node trees between the brain header and
// the dictionary.
//
// A tree has no length field. Its extent is only known by reading every
// node's branch count and then that many child trees, so the branch count
// has to be read in the right byte order; read in the wrong one, the walk
// almost always runs off the end of the tree region. That is what makes the
// walk useful as a byte-order check.
//
// The walk keeps its pending child counts on an explicit stack instead of
// recursing, so a malformed branch count cannot grow the goroutine stack.
package tree

import (
	"encoding/binary"
	"fmt"

	binpkg "github.com/robert-malhotra/go-brnflip/internal/binary"
	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// Stats summarizes one decoded tree.
type Stats struct {
	Start    int `json:"start"`
	End      int `json:"end"`
	Nodes    int `json:"nodes"`
	Leaves   int `json:"leaves"`
	MaxDepth int `json:"max_depth"`
}

// Walk decodes one tree starting at start and returns the offset just past
// its last node. Branch counts are read in order. A node that would extend
// past bound, or nesting deeper than maxDepth (when positive), fails with
// format.ErrMismatch.
func Walk(buf []byte, start, bound int, order binary.ByteOrder, maxDepth int) (int, error) {
	return walk(buf, start, bound, order, maxDepth, nil)
}

// Stat walks the tree like Walk and reports its shape.
func Stat(buf []byte, start, bound int, order binary.ByteOrder, maxDepth int) (Stats, error) {
	st := Stats{Start: start}
	end, err := walk(buf, start, bound, order, maxDepth, func(depth int, branches uint16) {
		st.Nodes++
		if branches == 0 {
			st.Leaves++
		}
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
	})
	if err != nil {
		return Stats{}, err
	}
	st.End = end
	return st, nil
}

// WalkAll decodes format.TreeCount consecutive trees starting right after
// the header and returns the offset past the last one.
func WalkAll(buf []byte, bound int, order binary.ByteOrder, maxDepth int) (int, error) {
	pos := format.HeaderSize
	for i := 0; i < format.TreeCount; i++ {
		end, err := Walk(buf, pos, bound, order, maxDepth)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		pos = end
	}
	return pos, nil
}

func walk(buf []byte, start, bound int, order binary.ByteOrder, maxDepth int, visit func(depth int, branches uint16)) (int, error) {
	if bound > len(buf) {
		bound = len(buf)
	}
	r := binpkg.NewReader(buf, order)
	pos := start

	next := func(depth int) (uint16, error) {
		if pos < 0 || pos > bound-format.NodeSize {
			return 0, fmt.Errorf("%w: node at offset %d extends past offset %d", format.ErrMismatch, pos, bound)
		}
		branches, err := r.At(pos + format.NodeBranchesOffset).ReadUint16()
		if err != nil {
			return 0, fmt.Errorf("%w: node at offset %d: %v", format.ErrMismatch, pos, err)
		}
		if visit != nil {
			visit(depth, branches)
		}
		pos += format.NodeSize
		return branches, nil
	}

	branches, err := next(0)
	if err != nil {
		return 0, err
	}

	// pending[i] is how many children of the open node at depth i are
	// still to be read.
	var pending []uint16
	if branches > 0 {
		pending = append(pending, branches)
	}
	for len(pending) > 0 {
		top := len(pending) - 1
		if pending[top] == 0 {
			pending = pending[:top]
			continue
		}
		pending[top]--

		depth := len(pending)
		branches, err := next(depth)
		if err != nil {
			return 0, err
		}
		if branches == 0 {
			continue
		}
		if maxDepth > 0 && depth >= maxDepth {
			return 0, fmt.Errorf("%w: tree at offset %d nests deeper than %d", format.ErrMismatch, start, maxDepth)
		}
		pending = append(pending, branches)
	}
	return pos, nil
}
