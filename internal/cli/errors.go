package cli

import "fmt"

// ErrorCategory classifies command errors so main can pick an exit code
// without parsing error text.
type ErrorCategory string

const (
	// CategoryValidation means the command line or config was unusable:
	// unknown flag, repeated flag, bad target name.
	CategoryValidation ErrorCategory = "validation"

	// CategoryFormat means the input is not a brain the converter can
	// handle.
	CategoryFormat ErrorCategory = "format"

	// CategoryInternal covers I/O failures and anything unexpected.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by the command. It wraps the
// underlying error so errors.Is and errors.As still see the full chain.
type ToolError struct {
	Category ErrorCategory
	Err      error
	Hint     string
}

func (e *ToolError) Error() string { return e.Err.Error() }

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode maps the category to the process exit status.
func (e *ToolError) ExitCode() int {
	if e.Category == CategoryValidation {
		return 2
	}
	return 1
}

// WithHint attaches a follow-up suggestion printed after the error.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Format creates an error for input that is not a usable brain.
func Format(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryFormat, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an I/O failure or a bug.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
