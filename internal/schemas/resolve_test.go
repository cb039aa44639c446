package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeSchema(t *testing.T, dir string) string {
	t.Helper()
	schemaPath := filepath.Join(dir, schemaDir, DefaultSchemaFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(schemaPath), 0755))
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object"}`), 0644))
	return schemaPath
}

func TestFindSchema_PrefersExecutableLocation(t *testing.T) {
	root := t.TempDir()
	exeDir := filepath.Join(root, "install", "bin")
	cwd := filepath.Join(root, "work")
	require.NoError(t, os.MkdirAll(exeDir, 0755))
	require.NoError(t, os.MkdirAll(cwd, 0755))

	installed := placeSchema(t, filepath.Join(root, "install"))
	placeSchema(t, cwd)

	got, _ := findSchema(exeDir, cwd)
	assert.Equal(t, installed, got)
}

func TestFindSchema_WorkingDirectory(t *testing.T) {
	root := t.TempDir()
	cwd := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(cwd, 0755))
	want := placeSchema(t, cwd)

	got, _ := findSchema("", cwd)
	assert.Equal(t, want, got)
}

func TestFindSchema_Ancestors(t *testing.T) {
	root := t.TempDir()
	want := placeSchema(t, root)

	tests := []struct {
		name  string
		depth []string
		found bool
	}{
		{"one level", []string{"a"}, true},
		{"three levels", []string{"a", "b", "c"}, true},
		{"four levels", []string{"a", "b", "c", "d"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cwd := filepath.Join(append([]string{root}, tt.depth...)...)
			require.NoError(t, os.MkdirAll(cwd, 0755))

			got, searched := findSchema("", cwd)
			if tt.found {
				assert.Equal(t, want, got)
			} else {
				assert.Empty(t, got)
				assert.Len(t, searched, 1+maxAncestorDepth)
			}
		})
	}
}

func TestResolveSchemaPath_ExplicitMissing(t *testing.T) {
	_, err := ResolveSchemaPath(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var notFound *data.FileNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveSchemaPath_ExplicitExists(t *testing.T) {
	got, err := ResolveSchemaPath(cvSchemaPath)
	require.NoError(t, err)
	assert.Equal(t, cvSchemaPath, got)
}

func TestSchemaNotFoundError_Message(t *testing.T) {
	err := &SchemaNotFoundError{Searched: []string{"/a/schema/cv.schema.json"}}
	assert.Contains(t, err.Error(), DefaultSchemaFile)
	assert.Contains(t, err.Error(), "/a/schema/cv.schema.json")
}
