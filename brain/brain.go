package brain

import (
	"fmt"

	"github.com/robert-malhotra/go-brnflip/internal/flip"
)

// Detect returns the byte order buf was written in. It never modifies buf.
func Detect(buf []byte, opts ...Option) (Order, error) {
	o := newOptions(opts)
	dict, err := locate(buf, o)
	if err != nil {
		return Unknown, err
	}
	return detect(buf, dict, o)
}

// Convert rewrites buf in place so it is in the target byte order, and
// returns the order it was detected in. If that already is target, buf is
// left alone. If detection fails, buf is left alone and the error wraps
// ErrFormatMismatch.
func Convert(buf []byte, target Order, opts ...Option) (Order, error) {
	if !target.Valid() {
		return Unknown, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
	}
	o := newOptions(opts)
	dict, err := locate(buf, o)
	if err != nil {
		return Unknown, err
	}
	detected, err := detect(buf, dict, o)
	if err != nil {
		return Unknown, err
	}
	if detected == target {
		o.logger.Debug("already in target byte order", "order", detected)
		return detected, nil
	}
	if err := flip.Flip(buf, dict); err != nil {
		return Unknown, err
	}
	o.logger.Debug("converted", "from", detected, "to", target)
	return detected, nil
}

// ForceFlip swaps the byte order of buf without detecting it first. Only
// the header and the dictionary marker are checked, so it also works on
// brains whose order Detect cannot establish. Applying it twice restores
// the original buffer.
func ForceFlip(buf []byte, opts ...Option) error {
	o := newOptions(opts)
	dict, err := locate(buf, o)
	if err != nil {
		return err
	}
	if err := flip.Flip(buf, dict); err != nil {
		return err
	}
	o.logger.Debug("flipped without detection", "dictionary", dict)
	return nil
}
