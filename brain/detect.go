package brain

import (
	"fmt"

	binpkg "github.com/robert-malhotra/go-brnflip/internal/binary"
	"github.com/robert-malhotra/go-brnflip/internal/dictionary"
	"github.com/robert-malhotra/go-brnflip/internal/header"
	"github.com/robert-malhotra/go-brnflip/internal/tree"
)

// locate validates the header and finds the dictionary offset.
func locate(buf []byte, o *options) (int, error) {
	if err := header.Validate(buf, o.maxSize); err != nil {
		return 0, err
	}
	return dictionary.Locate(buf)
}

// detect decides the byte order of a header-validated buffer whose
// dictionary starts at dict.
//
// The word count is read as stored and byte-swapped and compared with the
// number of words actually in the dictionary. That picks a first guess,
// which is only trusted once both trees, decoded in the guessed order, end
// exactly at dict. If they do not, the opposite order gets one try.
func detect(buf []byte, dict int, o *options) (Order, error) {
	native := o.native
	declared, err := dictionary.DeclaredCount(buf, dict, native.ByteOrder())
	if err != nil {
		return Unknown, err
	}
	declaredSwapped := binpkg.Reverse32(declared)

	actual, err := dictionary.CountWords(buf, dict)
	if err != nil {
		return Unknown, err
	}

	var guess Order
	switch {
	case int64(declaredSwapped) == int64(actual):
		guess = native.Opposite()
	case int64(declared) == int64(actual):
		guess = native
	case declared == declaredSwapped:
		// Reads the same both ways; only the trees can tell.
		guess = native
	default:
		return Unknown, fmt.Errorf("%w: dictionary declares %d words (%d byte-swapped) but holds %d",
			ErrFormatMismatch, declared, declaredSwapped, actual)
	}

	o.logger.Debug("guessed byte order from word count",
		"declared", declared,
		"declared_swapped", declaredSwapped,
		"actual", actual,
		"guess", guess,
	)

	if verify(buf, dict, guess, o) {
		return guess, nil
	}

	retry := guess.Opposite()
	o.logger.Debug("trees do not end at dictionary, retrying", "order", retry)
	if verify(buf, dict, retry, o) {
		return retry, nil
	}

	return Unknown, fmt.Errorf("%w: trees do not end at the dictionary (offset %d) in either byte order",
		ErrFormatMismatch, dict)
}

// verify reports whether both trees, read in order, end exactly at dict.
func verify(buf []byte, dict int, order Order, o *options) bool {
	end, err := tree.WalkAll(buf, dict, order.ByteOrder(), o.maxDepth)
	if err != nil {
		o.logger.Debug("tree walk failed", "order", order, "error", err)
		return false
	}
	if end != dict {
		o.logger.Debug("trees end before dictionary", "order", order, "end", end, "dictionary", dict)
		return false
	}
	return true
}
