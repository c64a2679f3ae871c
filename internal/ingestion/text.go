// Package ingestion normalizes extracted resume text and reads plain-text resumes from disk.
package ingestion

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var excessiveBlankLines = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes text content while preserving line structure.
// Every line is trimmed and its whitespace runs collapsed to one space, but
// line breaks survive so section and experience parsing can work line by line.
// CleanText is idempotent.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ToValidUTF8(content, "")
	content = norm.NFC.String(content)

	// CRLF and bare CR become LF
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	content = strings.Map(dropControl, content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses inner whitespace runs to a single space.
func cleanLine(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// dropControl removes C0 and C1 control characters other than tab and newline.
func dropControl(r rune) rune {
	switch {
	case r == '\n' || r == '\t':
		return r
	case r < 0x20, r >= 0x7F && r <= 0x9F:
		return -1
	default:
		return r
	}
}

// Lines splits normalized text into its non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// IngestText checks that raw looks like text, cleans it, and builds its metadata.
func IngestText(raw []byte, source string) (string, *Metadata, error) {
	contentType := http.DetectContentType(raw)
	if !strings.HasPrefix(contentType, "text/") {
		return "", nil, &IngestError{
			Source:  source,
			Message: fmt.Sprintf("unsupported content type %s; only plain text resumes can be ingested", contentType),
		}
	}

	cleanedText := CleanText(string(raw))
	if cleanedText == "" {
		return "", nil, &IngestError{
			Source:  source,
			Message: "no text content could be extracted from the document",
		}
	}

	metadata := NewMetadata(cleanedText, source)
	metadata.Bytes = len(raw)
	return cleanedText, metadata, nil
}

// IngestFromFile reads a plain-text resume, cleans it, and returns cleaned text with metadata.
// Files larger than maxBytes are rejected when maxBytes is positive.
func IngestFromFile(path string, maxBytes int64) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &IngestError{Source: path, Message: "file not found", Cause: err}
		}
		return "", nil, &IngestError{Source: path, Message: "failed to stat file", Cause: err}
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", nil, &IngestError{
			Source:  path,
			Message: fmt.Sprintf("file is %d bytes, limit is %d", info.Size(), maxBytes),
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &IngestError{Source: path, Message: "failed to read file", Cause: err}
	}

	return IngestText(content, path)
}

// Output file names written by WriteOutput.
const (
	CleanedTextFile = "resume.cleaned.txt"
	MetadataFile    = "resume.meta.json"
)

// WriteOutput writes the cleaned text and metadata to output files
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, CleanedTextFile)
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, MetadataFile)
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
