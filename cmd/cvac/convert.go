package main

import (
	"fmt"
	"path/filepath"

	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/jonathan/cv-as-code/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert between JSON and YAML formats",
	Long:  "Convert CV data between JSON and YAML. The output format is taken from the output file extension.",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

var (
	convertPretty bool
	convertSchema string
)

func init() {
	convertCmd.Flags().BoolVarP(&convertPretty, "pretty", "p", false, "Pretty print output with indentation")
	convertCmd.Flags().StringVar(&convertSchema, "schema", "", "Custom schema file (default: built-in CV schema)")

	rootCmd.AddCommand(convertCmd)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	if samePath(input, output) {
		return fmt.Errorf("input and output files must be different: %s", input)
	}

	format, ok := data.FormatFromExtension(output)
	if !ok {
		return &data.FormatDetectionError{Path: output}
	}

	value, inputFormat, err := loadAndValidate(input, convertSchema)
	if err != nil {
		return err
	}

	if err := data.Save(value, output, format, convertPretty); err != nil {
		return err
	}
	logger.Info("data converted",
		zap.String("input", input),
		zap.String("from", string(inputFormat)),
		zap.String("output", output),
		zap.String("to", string(format)),
	)

	observability.NewPrinter(cmd.OutOrStdout()).PrintConverted(input, output, string(format))
	return nil
}
