package main

import (
	"github.com/jonathan/cv-as-code/internal/docx"
	"github.com/jonathan/cv-as-code/internal/observability"
	"github.com/jonathan/cv-as-code/internal/rendering"
	"github.com/jonathan/cv-as-code/internal/style"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultOutputPath is used when neither an argument nor the config names an output
const defaultOutputPath = "resume-generated.docx"

var generateCmd = &cobra.Command{
	Use:   "generate <input> [output]",
	Short: "Generate DOCX document from CV data",
	Long:  "Generate a professional DOCX document from JSON or YAML CV data. The output defaults to resume-generated.docx.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGenerate,
}

var (
	generateStyle  string
	generateSchema string
)

func init() {
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "", "Custom style configuration file (JSON or YAML)")
	generateCmd.Flags().StringVar(&generateSchema, "schema", "", "Custom schema file (default: built-in CV schema)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := firstNonEmpty(settings.OutputPath, defaultOutputPath)
	if len(args) > 1 {
		output = args[1]
	}

	value, _, err := loadAndValidate(input, generateSchema)
	if err != nil {
		return err
	}

	stylePath := firstNonEmpty(generateStyle, settings.StylePath)
	cfg, err := style.LoadFile(stylePath)
	if err != nil {
		return err
	}
	logger.Debug("style resolved", zap.String("style", stylePath), zap.String("font", cfg.FontName))

	doc, err := rendering.RenderValue(value, *cfg)
	if err != nil {
		return err
	}
	logger.Debug("document rendered", zap.Int("blocks", len(doc.Blocks)), zap.Strings("sections", doc.Headings()))

	if err := docx.WriteFile(doc, output); err != nil {
		return err
	}
	logger.Info("document written", zap.String("output", output))

	observability.NewPrinter(cmd.OutOrStdout()).PrintGenerated(output)
	return nil
}
