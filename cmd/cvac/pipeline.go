package main

import (
	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/jonathan/cv-as-code/internal/schemas"
	"go.uber.org/zap"
)

// firstNonEmpty returns the first non-empty value
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadAndValidate reads a CV file and validates it against the schema.
// The schema comes from the flag, then the config, then the default search.
func loadAndValidate(input, schemaFlag string) (any, data.Format, error) {
	value, err := data.Load(input)
	if err != nil {
		return nil, "", err
	}
	format, err := data.DetectFormat(input)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("input loaded", zap.String("path", input), zap.String("format", string(format)))

	validator, err := schemas.NewValidator(firstNonEmpty(schemaFlag, settings.SchemaPath))
	if err != nil {
		return nil, "", err
	}
	logger.Debug("schema resolved", zap.String("schema", validator.Source()))

	if err := validator.Validate(value); err != nil {
		logger.Info("schema validation failed", zap.String("path", input), zap.Error(err))
		return value, format, err
	}
	return value, format, nil
}
