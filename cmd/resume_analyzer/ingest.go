package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Clean a plain-text resume and record its metadata",
	Long:  "Read a plain-text resume, normalize its text, and write the cleaned text with a metadata file.",
	RunE:  runIngest,
}

var (
	ingestInput   string
	ingestOutDir  string
	ingestVerbose bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInput, "in", "i", "", "Path to the resume text file (required)")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print a summary of the ingested document")

	_ = ingestCmd.MarkFlagRequired("in")
	_ = ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cleanedText, metadata, err := ingestion.IngestFromFile(ingestInput, int64(settings.MaxInputBytes))
	if err != nil {
		return fmt.Errorf("failed to ingest from file: %w", err)
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug().Str("document_id", metadata.ID).Str("source", ingestInput).Msg("resume ingested")

	out := cmd.OutOrStdout()
	if ingestVerbose || settings.Verbose {
		observability.NewPrinter(out).PrintIngestMetadata(metadata)
	}
	_, _ = fmt.Fprintf(out, "Successfully ingested resume\n")
	_, _ = fmt.Fprintf(out, "Cleaned text: %s\n", filepath.Join(ingestOutDir, ingestion.CleanedTextFile))
	_, _ = fmt.Fprintf(out, "Metadata: %s\n", filepath.Join(ingestOutDir, ingestion.MetadataFile))

	return nil
}
