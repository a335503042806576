package rendering

import "fmt"

// RenderError wraps a document rendering failure. Rendering is deterministic,
// so failures are propagated to the caller without retry.
type RenderError struct {
	Format  string // "latex", "pdf" or "docx"
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s rendering failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s rendering failed: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
