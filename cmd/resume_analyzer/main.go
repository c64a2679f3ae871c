// Package main provides the resume_analyzer command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:               "resume_analyzer",
	Short:             "Rule-based resume information extraction",
	Long:              "resume_analyzer turns plain-text resumes into structured JSON records using keyword catalogs, section headings and line-shape heuristics.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath string

	// settings and logger are populated before any subcommand runs.
	settings = config.Defaults()
	logger   = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(configPath, os.Getenv)
	if err != nil {
		return err
	}
	settings = cfg
	logger = logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, cmd.ErrOrStderr())
	return nil
}

// buildConfig loads the optional config file, applies environment overrides,
// validates the result and fills in defaults.
func buildConfig(path string, getenv func(string) string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg.MergeWithDefaults(config.Defaults()), nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
