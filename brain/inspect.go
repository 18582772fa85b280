package brain

import (
	"github.com/robert-malhotra/go-brnflip/internal/dictionary"
	"github.com/robert-malhotra/go-brnflip/internal/format"
	"github.com/robert-malhotra/go-brnflip/internal/tree"
)

// SampleWords is how many leading dictionary words Inspect keeps.
const SampleWords = 8

// TreeStats describes one of the two trees.
type TreeStats = tree.Stats

// Info is a structural report on a brain.
type Info struct {
	Size             int         `json:"size"`
	Order            Order       `json:"order"`
	DictionaryOffset int         `json:"dictionary_offset"`
	DeclaredBig      uint32      `json:"declared_words_big_endian"`
	DeclaredLittle   uint32      `json:"declared_words_little_endian"`
	Words            int         `json:"words"`
	Trees            []TreeStats `json:"trees,omitempty"`
	Sample           []string    `json:"sample_words,omitempty"`
}

// Inspect detects buf's byte order and decodes its structure. It never
// modifies buf. On error the returned Info holds whatever was established
// before the failure.
func Inspect(buf []byte, opts ...Option) (*Info, error) {
	o := newOptions(opts)
	info := &Info{Size: len(buf)}

	dict, err := locate(buf, o)
	if err != nil {
		return info, err
	}
	info.DictionaryOffset = dict

	if info.DeclaredBig, err = dictionary.DeclaredCount(buf, dict, BigEndian.ByteOrder()); err != nil {
		return info, err
	}
	if info.DeclaredLittle, err = dictionary.DeclaredCount(buf, dict, LittleEndian.ByteOrder()); err != nil {
		return info, err
	}

	words, err := dictionary.Words(buf, dict)
	if err != nil {
		return info, err
	}
	info.Words = len(words)
	info.Sample = words[:min(len(words), SampleWords)]

	order, err := detect(buf, dict, o)
	if err != nil {
		return info, err
	}
	info.Order = order

	pos := format.HeaderSize
	for i := 0; i < format.TreeCount; i++ {
		st, err := tree.Stat(buf, pos, dict, order.ByteOrder(), o.maxDepth)
		if err != nil {
			return info, err
		}
		info.Trees = append(info.Trees, st)
		pos = st.End
	}
	return info, nil
}
