package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// recordSuffix is appended to each input's base name in --out mode.
const recordSuffix = ".resume.json"

var extractCmd = &cobra.Command{
	Use:   "extract FILE...",
	Short: "Extract structured fields from plain-text resumes",
	Long: `Analyze one or more plain-text resumes and emit a JSON record for each.

A single file without --out prints its record to stdout. Otherwise each record is
written to <out>/<name>.resume.json and files are analyzed concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

var (
	extractOutDir         string
	extractConcurrency    int
	extractValidateSchema bool
	extractVerbose        bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutDir, "out", "o", "", "Output directory for records")
	extractCmd.Flags().IntVarP(&extractConcurrency, "concurrency", "c", 0, "Files analyzed at once (default from config)")
	extractCmd.Flags().BoolVar(&extractValidateSchema, "validate-schema", false, "Check each record against the JSON Schema")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of each record")

	rootCmd.AddCommand(extractCmd)
}

type extractResult struct {
	source string
	path   string
	record *types.ResumeRecord
	data   []byte
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Flags win over config values when explicitly set
	concurrency := settings.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = extractConcurrency
	}
	validateSchema := settings.ValidateSchema || extractValidateSchema
	verbose := settings.Verbose || extractVerbose

	if concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}
	if len(args) > 1 && extractOutDir == "" {
		return fmt.Errorf("--out is required when extracting more than one file")
	}

	extractor := extraction.New(
		extraction.WithLogger(logger),
		extraction.WithMaxInputBytes(settings.MaxInputBytes),
	)

	results := make([]extractResult, len(args))
	for i, source := range args {
		results[i].source = source
		if extractOutDir != "" {
			results[i].path = filepath.Join(extractOutDir, recordName(source))
		}
	}
	if err := checkDistinctOutputs(results); err != nil {
		return err
	}
	if extractOutDir != "" {
		if err := os.MkdirAll(extractOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := range results {
		res := &results[i]
		g.Go(func() error {
			record, data, err := analyzeFile(extractor, res.source, validateSchema)
			if err != nil {
				logger.Error().Err(err).Str("source", res.source).Msg("extraction failed")
				return err
			}
			res.record, res.data = record, data

			if res.path == "" {
				return nil
			}
			if err := os.WriteFile(res.path, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", res.path, err)
			}
			return nil
		})
	}
	err := g.Wait()

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	for _, res := range results {
		if res.record == nil {
			continue
		}
		if verbose {
			printer.PrintResumeRecord(res.source, res.record)
		}
		if res.path == "" {
			_, _ = fmt.Fprintf(out, "%s\n", res.data)
		} else {
			_, _ = fmt.Fprintf(out, "Wrote %s\n", res.path)
		}
	}

	return err
}

// analyzeFile ingests one file and returns its record and indented JSON.
func analyzeFile(extractor *extraction.Extractor, source string, validateSchema bool) (*types.ResumeRecord, []byte, error) {
	text, _, err := ingestion.IngestFromFile(source, int64(settings.MaxInputBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to ingest %s: %w", source, err)
	}

	record, err := extractor.Extract(text)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal record for %s: %w", source, err)
	}

	if validateSchema {
		if err := schemas.ValidateResumeRecord(data); err != nil {
			return nil, nil, fmt.Errorf("record for %s does not match schema: %w", source, err)
		}
	}

	return record, data, nil
}

// recordName maps "dir/jane.txt" to "jane.resume.json".
func recordName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + recordSuffix
}

func checkDistinctOutputs(results []extractResult) error {
	seen := make(map[string]string, len(results))
	for _, res := range results {
		if res.path == "" {
			continue
		}
		if prev, ok := seen[res.path]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", prev, res.source, res.path)
		}
		seen[res.path] = res.source
	}
	return nil
}
