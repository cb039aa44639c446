package style

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/jonathan/cv-as-code/internal/schemas"
)

//go:embed style.schema.json
var styleSchema string

// unitFields maps each length-valued path to the unit a bare number is read in
var unitFields = map[string]map[string]Unit{
	"": {
		"font_size":         Point,
		"name_font_size":    Point,
		"heading_font_size": Point,
	},
	"margins": {
		"top":    Millimeter,
		"bottom": Millimeter,
		"left":   Millimeter,
		"right":  Millimeter,
	},
	"paragraph_spacing": {
		"before": Point,
		"after":  Point,
	},
	"bullet_style": {
		"left_indent":       Centimeter,
		"first_line_indent": Centimeter,
		"space_after":       Point,
		"space_before":      Point,
	},
}

// Resolve deep-merges override onto the default style and returns the result.
// Bare numbers are read in the unit of their field; strings may carry their own unit.
func Resolve(override map[string]any) (*Config, error) {
	if len(override) == 0 {
		cfg := Default()
		return &cfg, nil
	}
	if err := validateOverride(override); err != nil {
		return nil, err
	}

	merged := Merge(Default().Tree(), override)
	if err := normalizeUnits(merged); err != nil {
		return nil, err
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style decoder: %w", err)
	}
	if err := dec.Decode(merged); err != nil {
		return nil, &StyleConfigError{Message: err.Error(), Cause: err}
	}
	return &cfg, nil
}

// LoadFile reads a JSON or YAML style file and resolves it against the defaults.
// An empty path yields the default style.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Resolve(nil)
	}
	value, err := data.Load(path)
	if err != nil {
		return nil, err
	}
	plain := data.Plain(value)
	if plain == nil {
		return Resolve(nil)
	}
	override, ok := plain.(map[string]any)
	if !ok {
		return nil, &StyleConfigError{Message: fmt.Sprintf("style file %s must contain a mapping", path)}
	}
	return Resolve(override)
}

// Merge returns a new mapping with override applied on top of base.
// Nested mappings merge recursively; any other override value replaces the base value.
// Neither input is modified.
func Merge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		merged[key] = copyValue(value)
	}
	for key, value := range override {
		baseChild, baseIsMap := merged[key].(map[string]any)
		overrideChild, overrideIsMap := value.(map[string]any)
		if baseIsMap && overrideIsMap {
			merged[key] = Merge(baseChild, overrideChild)
			continue
		}
		merged[key] = copyValue(value)
	}
	return merged
}

func copyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, child := range tv {
			out[k] = copyValue(child)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, child := range tv {
			out[i] = copyValue(child)
		}
		return out
	default:
		return v
	}
}

func validateOverride(override map[string]any) error {
	validator, err := schemas.NewValidatorFromString("style.schema.json", styleSchema)
	if err != nil {
		return err
	}
	if err := validator.Validate(override); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			return &StyleConfigError{Field: ve.PathString(), Message: ve.Message, Cause: err}
		}
		return err
	}
	return nil
}

func normalizeUnits(tree map[string]any) error {
	for section, fields := range unitFields {
		target := tree
		if section != "" {
			child, ok := tree[section].(map[string]any)
			if !ok {
				continue
			}
			target = child
		}
		for field, unit := range fields {
			raw, ok := target[field]
			if !ok {
				continue
			}
			length, err := toLength(raw, unit)
			if err != nil {
				return &StyleConfigError{Field: fieldName(section, field), Message: err.Error(), Cause: err}
			}
			target[field] = length
		}
	}
	return nil
}

func fieldName(section, field string) string {
	if section == "" {
		return field
	}
	return section + "." + field
}

func toLength(v any, unit Unit) (Length, error) {
	switch tv := v.(type) {
	case Length:
		return tv, nil
	case float64:
		return Length{Value: tv, Unit: unit}, nil
	case float32:
		return Length{Value: float64(tv), Unit: unit}, nil
	case int:
		return Length{Value: float64(tv), Unit: unit}, nil
	case int64:
		return Length{Value: float64(tv), Unit: unit}, nil
	case string:
		return ParseLength(tv)
	default:
		return Length{}, fmt.Errorf("expected a number or a length string, got %T", v)
	}
}
