// Package apperr defines the error kinds surfaced to the user.
// Everything here is fatal to the run; display degradation and cleanup
// failures are logged, not returned.
package apperr

import "fmt"

// InputError reports a source file that does not exist, cannot be read,
// or is not valid text. Nothing has been written when it is returned.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// RenderError reports a failed Markdown-to-HTML conversion. The cause is
// surfaced verbatim; the run aborts with no partial output.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// WriteError reports an unwritable output location. Filesystem faults are
// treated as non-transient, so callers never retry.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
