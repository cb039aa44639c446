package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{"cv.json", FormatJSON, true},
		{"cv.JSON", FormatJSON, true},
		{"cv.yaml", FormatYAML, true},
		{"cv.YAML", FormatYAML, true},
		{"dir.v2/cv.yml", FormatYAML, true},
		{"cv.txt", "", false},
		{"cv", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FormatFromExtension(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_ContentSniffing(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Format
	}{
		{"json without extension", "cv", `{"a":1}`, FormatJSON},
		{"json with unknown extension", "cv.data", `[1, 2, 3]`, FormatJSON},
		{"yaml with unknown extension", "cv.txt", "a: 1\nb:\n  - x\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			got, err := DetectFormat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_BothParsersFail(t *testing.T) {
	path := writeFile(t, "cv.dat", `{"a": [1, 2`)

	_, err := DetectFormat(path)
	require.Error(t, err)
	var detectErr *FormatDetectionError
	assert.ErrorAs(t, err, &detectErr)
	assert.Contains(t, err.Error(), "cannot determine format")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var notFound *FileNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLoad_MalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  Format
	}{
		{"json", "cv.json", `{ invalid json }`, FormatJSON},
		{"trailing data", "cv.json", `{} {}`, FormatJSON},
		{"empty json", "cv.json", ``, FormatJSON},
		{"yaml", "cv.yaml", "a: [1, 2\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.format, parseErr.Format)
			assert.Equal(t, path, parseErr.Path)
			assert.NotEmpty(t, parseErr.Detail)
		})
	}
}

func TestLoad_PreservesKeyOrder(t *testing.T) {
	path := writeFile(t, "order.json", `{"zeta": 1, "alpha": {"y": true, "b": null}, "mid": "x"}`)

	value, err := Load(path)
	require.NoError(t, err)

	m, ok := value.(*Map)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	inner, _ := m.Get("alpha")
	assert.Equal(t, []string{"y", "b"}, inner.(*Map).Keys())
}

func TestDecode_JSONNestedOrder(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    []any
		want    []string
	}{
		{"object in array", `{"jobs": [{"z": 1, "a": {"q": 1, "c": 2}}]}`, []any{"jobs", 0}, []string{"z", "a"}},
		{"object in array in object", `{"jobs": [{"z": 1, "a": {"q": 1, "c": 2}}]}`, []any{"jobs", 0, "a"}, []string{"q", "c"}},
		{"top-level array", `[{"m": 1, "b": 2}]`, []any{0}, []string{"m", "b"}},
		{"nested arrays", `{"grid": [[{"y": 1, "x": 2}]]}`, []any{"grid", 0, 0}, []string{"y", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Decode([]byte(tt.content), FormatJSON)
			require.NoError(t, err)

			for _, step := range tt.path {
				switch s := step.(type) {
				case string:
					value, _ = value.(*Map).Get(s)
				case int:
					value = value.([]any)[s]
				}
			}
			m, ok := value.(*Map)
			require.True(t, ok, "expected *Map, got %T", value)
			assert.Equal(t, tt.want, m.Keys())
		})
	}
}

func TestDecode_JSONScalars(t *testing.T) {
	value, err := Decode([]byte(` "R&D" `), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "R&D", value)

	value, err = Decode([]byte(`null`), FormatJSON)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestEncode_NestedJSONDoesNotEscapeText(t *testing.T) {
	inner := NewMap()
	inner.Set("team", "R&D <core>")
	value := NewMap()
	value.Set("jobs", []any{inner})

	out, err := Encode(value, FormatJSON, false)
	require.NoError(t, err)
	assert.Equal(t, `{"jobs":[{"team":"R&D <core>"}]}`, string(out))
}

func TestLoad_YAMLTimestampsStayStrings(t *testing.T) {
	path := writeFile(t, "cv.yaml", "graduationDate: 2019-05-20\nyear: 2020\n")

	value, err := Load(path)
	require.NoError(t, err)

	m := value.(*Map)
	date, _ := m.Get("graduationDate")
	assert.Equal(t, "2019-05-20", date)
	year, _ := m.Get("year")
	assert.Equal(t, float64(2020), year)
}

func TestLoad_YAMLMergeKeys(t *testing.T) {
	content := "base: &base\n  city: Boston\n  country: USA\nhome:\n  <<: *base\n  city: Cambridge\n"
	path := writeFile(t, "cv.yaml", content)

	value, err := Load(path)
	require.NoError(t, err)

	home, _ := value.(*Map).Get("home")
	want := map[string]any{"city": "Cambridge", "country": "USA"}
	assert.Equal(t, want, Plain(home))
}

func TestSave_JSONPrettyAndCompact(t *testing.T) {
	value := NewMap()
	value.Set("a", float64(1))
	value.Set("b", []any{float64(2), float64(3)})
	nested := NewMap()
	nested.Set("d", float64(4))
	value.Set("c", nested)

	dir := t.TempDir()

	compactPath := filepath.Join(dir, "compact.json")
	require.NoError(t, Save(value, compactPath, "", false))
	compact, err := os.ReadFile(compactPath)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[2,3],"c":{"d":4}}`, string(compact))

	prettyPath := filepath.Join(dir, "pretty.json")
	require.NoError(t, Save(value, prettyPath, FormatJSON, true))
	pretty, err := os.ReadFile(prettyPath)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"a\": 1,")
	assert.Contains(t, string(pretty), "\n    \"d\": 4\n")
}

func TestSave_JSONDoesNotEscapeText(t *testing.T) {
	value := NewMap()
	value.Set("team", "R&D <core>")
	value.Set("city", "São Paulo")

	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, Save(value, path, "", false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"team":"R&D <core>","city":"São Paulo"}`, string(content))
}

func TestSave_YAMLKeepsOrderAndUnicode(t *testing.T) {
	value := NewMap()
	value.Set("zeta", "José")
	value.Set("alpha", "São Paulo")
	value.Set("startDate", "2020")

	path := filepath.Join(t.TempDir(), "cv.yaml")
	require.NoError(t, Save(value, path, "", true))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "zeta: José")
	assert.Contains(t, text, "alpha: São Paulo")
	assert.Less(t, strings.Index(text, "zeta"), strings.Index(text, "alpha"))
	assert.NotContains(t, text, "{")

	reloaded, err := Load(path)
	require.NoError(t, err)
	startDate, _ := reloaded.(*Map).Get("startDate")
	assert.Equal(t, "2020", startDate, "numeric-looking strings must stay strings")
}

func TestSave_UnknownExtension(t *testing.T) {
	err := Save(NewMap(), filepath.Join(t.TempDir(), "cv.txt"), "", true)
	require.Error(t, err)
	var detectErr *FormatDetectionError
	assert.ErrorAs(t, err, &detectErr)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(NewMap(), filepath.Join(dir, "cv.json"), "", true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cv.json", entries[0].Name())
}

func TestRoundTrip_AcrossFormats(t *testing.T) {
	sources := []string{
		filepath.Join("..", "..", "testdata", "cv", "full.json"),
		filepath.Join("..", "..", "testdata", "cv", "full.yaml"),
	}
	targets := []string{"out.json", "out.yaml"}

	for _, source := range sources {
		for _, target := range targets {
			for _, pretty := range []bool{true, false} {
				name := filepath.Base(source) + "->" + target
				t.Run(name, func(t *testing.T) {
					original, err := Load(source)
					require.NoError(t, err)

					outPath := filepath.Join(t.TempDir(), target)
					require.NoError(t, Save(original, outPath, "", pretty))

					reloaded, err := Load(outPath)
					require.NoError(t, err)

					if diff := cmp.Diff(Plain(original), Plain(reloaded)); diff != "" {
						t.Errorf("round trip mismatch (-want +got):\n%s", diff)
					}
					assert.Equal(t, original.(*Map).Keys(), reloaded.(*Map).Keys())
				})
			}
		}
	}
}

func TestLoad_JSONAndYAMLFixturesAgree(t *testing.T) {
	fromJSON, err := Load(filepath.Join("..", "..", "testdata", "cv", "full.json"))
	require.NoError(t, err)
	fromYAML, err := Load(filepath.Join("..", "..", "testdata", "cv", "full.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(Plain(fromJSON), Plain(fromYAML)); diff != "" {
		t.Errorf("full.json and full.yaml differ (-json +yaml):\n%s", diff)
	}
	assert.Equal(t, fromJSON.(*Map).Keys(), fromYAML.(*Map).Keys())
}

func TestRoundTrip_Unicode(t *testing.T) {
	path := writeFile(t, "cv.json", `{"firstName":"José","city":"São Paulo"}`)
	dir := t.TempDir()

	first, err := Load(path)
	require.NoError(t, err)

	yamlPath := filepath.Join(dir, "cv.yaml")
	require.NoError(t, Save(first, yamlPath, "", true))
	second, err := Load(yamlPath)
	require.NoError(t, err)

	jsonPath := filepath.Join(dir, "cv_2.json")
	require.NoError(t, Save(second, jsonPath, "", true))
	third, err := Load(jsonPath)
	require.NoError(t, err)

	assert.True(t, Equal(first, third))
	city, _ := third.(*Map).Get("city")
	assert.Equal(t, "São Paulo", city)
}

func TestEqual(t *testing.T) {
	a := NewMap()
	a.Set("x", float64(1))
	a.Set("y", []any{"a", NewMap()})

	b := NewMap()
	b.Set("y", []any{"a", NewMap()})
	b.Set("x", float64(1))

	assert.True(t, Equal(a, b), "key order is not structural")
	assert.True(t, a.Equal(b))

	b.Set("x", float64(2))
	assert.False(t, Equal(a, b))
	assert.False(t, Equal([]any{"a"}, []any{"a", "b"}))
	assert.False(t, Equal("1", float64(1)))
	assert.True(t, Equal(map[string]any{"k": "v"}, FromPlain(map[string]any{"k": "v"})))
}
