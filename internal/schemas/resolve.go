package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-as-code/internal/data"
)

// DefaultSchemaFile is the CV schema file name looked up under schema/ directories
const DefaultSchemaFile = "cv.schema.json"

const (
	schemaDir        = "schema"
	maxAncestorDepth = 3
)

// SchemaNotFoundError is returned when no default schema can be located
type SchemaNotFoundError struct {
	Searched []string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("cannot find %s (searched: %s); run from the project directory or pass --schema",
		DefaultSchemaFile, strings.Join(e.Searched, ", "))
}

// ResolveSchemaPath returns explicit when it exists, or the default CV schema when explicit is empty
func ResolveSchemaPath(explicit string) (string, error) {
	if explicit == "" {
		return FindDefaultSchema()
	}

	if _, err := os.Stat(explicit); err != nil {
		if os.IsNotExist(err) {
			return "", &data.FileNotFoundError{Path: explicit, Cause: err}
		}
		return "", fmt.Errorf("failed to stat schema %s: %w", explicit, err)
	}
	return explicit, nil
}

// FindDefaultSchema locates schema/cv.schema.json. It tries, in order:
//  1. the directory holding the cvac executable and its parent
//  2. the current working directory
//  3. up to three ancestors of the working directory
func FindDefaultSchema() (string, error) {
	var exeDir string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		exeDir = filepath.Dir(exe)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	path, searched := findSchema(exeDir, cwd)
	if path == "" {
		return "", &SchemaNotFoundError{Searched: searched}
	}
	return path, nil
}

func findSchema(exeDir, cwd string) (string, []string) {
	candidates := schemaCandidates(exeDir, cwd)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, candidates
		}
	}
	return "", candidates
}

func schemaCandidates(exeDir, cwd string) []string {
	var candidates []string
	if exeDir != "" {
		candidates = append(candidates,
			filepath.Join(exeDir, schemaDir, DefaultSchemaFile),
			filepath.Join(filepath.Dir(exeDir), schemaDir, DefaultSchemaFile),
		)
	}

	candidates = append(candidates, filepath.Join(cwd, schemaDir, DefaultSchemaFile))

	dir := cwd
	for i := 0; i < maxAncestorDepth; i++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
		candidates = append(candidates, filepath.Join(dir, schemaDir, DefaultSchemaFile))
	}
	return candidates
}
