// Package data loads, detects, and saves CV data in JSON and YAML while preserving key order.
package data

import "fmt"

// FileNotFoundError is returned when an input file does not exist
type FileNotFoundError struct {
	Path  string
	Cause error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Cause
}

// ParseError represents malformed JSON or YAML content
type ParseError struct {
	Format Format
	Path   string
	Detail string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid %s file %s: %s", e.Format.Label(), e.Path, e.Detail)
	}
	return fmt.Sprintf("invalid %s content: %s", e.Format.Label(), e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// FormatDetectionError is returned when neither the extension nor the content identifies a format
type FormatDetectionError struct {
	Path  string
	Cause error
}

func (e *FormatDetectionError) Error() string {
	return fmt.Sprintf("cannot determine format for file: %s", e.Path)
}

func (e *FormatDetectionError) Unwrap() error {
	return e.Cause
}
