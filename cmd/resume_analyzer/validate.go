package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	resumeschemas "github.com/jonathan/resume-analyzer/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON record against a schema",
	Long: `Validate a JSON file against a JSON Schema.

Without --schema the resume record schema is used: the repository copy when it can be
found from the working directory, otherwise the copy built into the binary.`,
	RunE: runValidate,
}

var (
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", resumeschemas.ResumeRecordFile, "Path to JSON Schema file")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON file to validate (required)")

	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	schemaName, err := validateRecordFile(cmd.Flags().Changed("schema"))
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(out, "Validation failed:\n")
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("validation found %d error(s)", len(validationErr.Errors))
		}
		return err
	}

	_, _ = fmt.Fprintf(out, "Validation passed: %s matches %s\n", validateJSONPath, schemaName)
	return nil
}

// validateRecordFile validates --json and returns the name of the schema it used.
func validateRecordFile(explicitSchema bool) (string, error) {
	schemaPath := validateSchemaPath
	if !explicitSchema {
		schemaPath = schemas.ResolveSchemaPath(validateSchemaPath)
	}

	if schemaPath != "" {
		return schemaPath, schemas.ValidateJSON(schemaPath, validateJSONPath)
	}

	data, err := os.ReadFile(validateJSONPath)
	if err != nil {
		return "", fmt.Errorf("failed to read JSON file: %w", err)
	}
	return "built-in " + resumeschemas.ResumeRecordFile, schemas.ValidateResumeRecord(data)
}
