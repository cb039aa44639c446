package data

import (
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported textual serialization
type Format string

const (
	// FormatJSON is plain JSON
	FormatJSON Format = "json"
	// FormatYAML is block-style YAML
	FormatYAML Format = "yaml"
)

// Label returns the upper-case name used in user-facing messages
func (f Format) Label() string {
	return strings.ToUpper(string(f))
}

// FormatFromExtension maps a file extension to a format, case-insensitively.
// The second return value is false for unrecognized extensions.
func FormatFromExtension(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// DetectFormat infers the format of an existing file.
// The extension wins when recognized; otherwise the content is parsed as JSON,
// then as YAML, and a FormatDetectionError is returned when both fail.
func DetectFormat(path string) (Format, error) {
	if format, ok := FormatFromExtension(path); ok {
		return format, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FormatDetectionError{Path: path, Cause: err}
	}

	format, err := sniffFormat(content)
	if err != nil {
		return "", &FormatDetectionError{Path: path, Cause: err}
	}
	return format, nil
}

// sniffFormat tries JSON first since every JSON document also parses as YAML
func sniffFormat(content []byte) (Format, error) {
	if _, err := decodeJSON(content); err == nil {
		return FormatJSON, nil
	}
	if _, err := decodeYAML(content); err != nil {
		return "", err
	}
	return FormatYAML, nil
}
