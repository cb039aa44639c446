package docx

import "fmt"

// WriteError represents a failure to build or save a DOCX package
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	target := ""
	if e.Path != "" {
		target = " " + e.Path
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to write document%s: %s: %v", target, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to write document%s: %s", target, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
