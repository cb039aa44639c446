package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Load reads a JSON or YAML file into an ordered value tree.
// The format comes from DetectFormat.
func Load(path string) (any, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path, Cause: err}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	value, err := Decode(content, format)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return value, nil
}

// Decode parses content in the given format
func Decode(content []byte, format Format) (any, error) {
	var (
		value any
		err   error
	)
	switch format {
	case FormatJSON:
		value, err = decodeJSON(content)
	case FormatYAML:
		value, err = decodeYAML(content)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Detail: err.Error(), Cause: err}
	}
	return value, nil
}

// Encode serializes a value tree. Pretty only affects JSON; YAML is always block style.
func Encode(v any, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(v, pretty)
	case FormatYAML:
		return encodeYAML(v)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Save writes a value tree to path. When format is empty it is inferred from
// the path's extension. The file is replaced atomically.
func Save(v any, path string, format Format, pretty bool) error {
	if format == "" {
		detected, ok := FormatFromExtension(path)
		if !ok {
			return &FormatDetectionError{Path: path}
		}
		format = detected
	}

	content, err := Encode(v, format, pretty)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format.Label(), err)
	}

	if err := WriteFileAtomic(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic writes content to a temp file beside path and renames it into place,
// so readers never observe a partially written file.
func WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
