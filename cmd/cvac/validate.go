package main

import (
	"errors"
	"strings"

	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/jonathan/cv-as-code/internal/observability"
	"github.com/jonathan/cv-as-code/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Validate CV data against schema",
	Long:  "Validate a JSON or YAML CV file against the CV JSON Schema and print a summary.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Custom schema file (default: built-in CV schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	input := args[0]
	printer := observability.NewPrinter(cmd.OutOrStdout())

	value, format, err := loadAndValidate(input, validateSchema)
	if err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			printer.PrintViolations(input, violations(ve))
		}
		return err
	}

	summary := summarize(value)
	summary.File = input
	summary.Format = string(format)
	printer.PrintValidationSummary(summary)
	return nil
}

func violations(ve *schemas.ValidationError) []observability.Violation {
	if len(ve.Errors) == 0 {
		return []observability.Violation{{Message: ve.Message, Path: ve.Path}}
	}
	out := make([]observability.Violation, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		out = append(out, observability.Violation{Message: fe.Message, Path: fe.Path})
	}
	return out
}

// summarize reads counts from the raw tree so that custom schemas with other shapes still summarize
func summarize(value any) observability.ValidationSummary {
	root, ok := value.(*data.Map)
	if !ok {
		return observability.ValidationSummary{}
	}

	summary := observability.ValidationSummary{
		WorkExperience: listLen(field(root, "workExperience")),
		Education:      listLen(field(root, "education")),
		Skills:         listLen(field(root, "skills")),
	}
	if info, ok := field(root, "personalInfo").(*data.Map); ok {
		var parts []string
		for _, key := range []string{"firstName", "middleName", "lastName"} {
			if s, ok := field(info, key).(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		summary.Name = strings.Join(parts, " ")
	}
	return summary
}

func field(m *data.Map, key string) any {
	v, _ := m.Get(key)
	return v
}

func listLen(v any) int {
	if items, ok := v.([]any); ok {
		return len(items)
	}
	return 0
}
