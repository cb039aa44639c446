// Package main implements the cvac CLI: generate DOCX résumés from JSON or YAML CV data,
// convert between formats, and validate against the CV schema.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/cv-as-code/internal/config"
	"github.com/jonathan/cv-as-code/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "1.2.0"

var rootCmd = &cobra.Command{
	Use:   "cvac",
	Short: "CV as Code: generate professional CVs from structured data",
	Long: `cvac turns a CV written in JSON or YAML into a formatted DOCX document.

Examples:
  cvac generate cv.yaml resume.docx
  cvac generate cv.json resume.docx --style modern.json
  cvac convert cv.json cv.yaml
  cvac validate cv.yaml`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	verbose    bool
	logLevel   string
)

// settings and logger are populated by setup before any subcommand runs
var (
	settings = config.Defaults()
	logger   = zap.NewNop()
)

func init() {
	rootCmd.SetVersionTemplate("cvac version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default warn)")
}

// setup loads configuration (file or CVAC_* env), applies flag overrides and builds the logger
func setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if verbose {
		cfg.Verbose = true
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return err
	}

	base, err := observability.NewLoggerTo(cmd.ErrOrStderr(), merged.LogLevel, merged.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger, _ = observability.WithRunID(base)
	settings = merged

	logger.Debug("configuration loaded",
		zap.String("config", configPath),
		zap.String("log_level", merged.LogLevel),
		zap.String("schema_path", merged.SchemaPath),
		zap.String("style_path", merged.StylePath),
	)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
