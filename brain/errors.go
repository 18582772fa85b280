package brain

import (
	"errors"

	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// Common errors
var (
	// ErrFormatMismatch is wrapped by every error that means the buffer is
	// not a well-formed brain or its byte order could not be established.
	// Test for it with errors.Is.
	ErrFormatMismatch = format.ErrMismatch

	ErrInvalidTarget = errors.New("invalid target byte order")
)
