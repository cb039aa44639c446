// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CVAC_SCHEMA_PATH
const EnvPrefix = "CVAC"

// Config represents CLI settings loaded from a JSON or YAML file and CVAC_* variables.
// All fields are optional; CLI flags take precedence after merging.
type Config struct {
	SchemaPath string `mapstructure:"schema_path"` // Path to the CV JSON Schema
	StylePath  string `mapstructure:"style_path"`  // Path to a style override file
	OutputPath string `mapstructure:"output_path" validate:"omitempty,endswith=.docx"`
	LogLevel   string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Verbose    bool   `mapstructure:"verbose"`
}

var configKeys = []string{"schema_path", "style_path", "output_path", "log_level", "verbose"}

// Defaults returns the built-in settings
func Defaults() Config {
	return Config{
		OutputPath: "resume-generated.docx",
		LogLevel:   "warn",
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// LoadConfig loads configuration from a JSON or YAML file, with CVAC_* environment
// variables taking precedence over file values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		v.SetConfigType("json")
	case ".yaml", ".yml":
		v.SetConfigType("yaml")
	default:
		return nil, fmt.Errorf("unsupported config file type %q: use .json, .yaml or .yml", filepath.Ext(path))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv builds a configuration from CVAC_* environment variables only
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment config: %w", err)
	}
	return &cfg, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return validate
}

// Validate checks that the configuration has valid values and that
// referenced schema and style files exist.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("config error: %s", describe(fieldErrs[0]))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
		}
	}

	if c.StylePath != "" {
		if _, err := os.Stat(c.StylePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: style file not found: %s", c.StylePath)
		}
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s", fe.Field(), fe.Param())
	case "endswith":
		return fmt.Sprintf("'%s' must end with %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("'%s' failed %s validation", fe.Field(), fe.Tag())
	}
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if result.StylePath == "" {
		result.StylePath = defaults.StylePath
	}
	if result.OutputPath == "" {
		result.OutputPath = defaults.OutputPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
