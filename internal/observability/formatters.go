// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to n characters, marking the cut with "...".
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// writeList writes up to maxItemsToShow items under a label.
func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	for _, item := range items[:min(len(items), maxItemsToShow)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintResumeRecord outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResumeRecord(source string, record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Name))
	if record.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.Email))
	}
	if record.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", record.Phone))
	}
	if record.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", record.Location))
	}
	sb.WriteString(fmt.Sprintf("Years:    %d\n", record.YearsOfExperience))
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n\n", len(record.Skills), strings.Join(record.Skills, ", ")))
	}

	if len(record.Experience) > 0 {
		sb.WriteString("Experience:\n")
		for i, entry := range record.Experience[:min(len(record.Experience), maxItemsToShow)] {
			sb.WriteString(fmt.Sprintf("  %d. %s", i+1, entry.Title))
			if entry.Company != "" {
				sb.WriteString(" @ " + entry.Company)
			}
			if entry.Duration != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Duration))
			}
			sb.WriteString("\n")
		}
		if len(record.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Education", record.Education)
	writeList(&sb, "Certifications", record.Certifications)
	writeList(&sb, "Projects", record.Projects)
	if len(record.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages: %s\n", strings.Join(record.Languages, ", ")))
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSpace(sb.String()))
}

// PrintIngestMetadata outputs the metadata of an ingested document.
func (p *Printer) PrintIngestMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", meta.Source))
	sb.WriteString(fmt.Sprintf("ID:     %s\n", meta.ID))
	sb.WriteString(fmt.Sprintf("Bytes:  %d\n", meta.Bytes))
	sb.WriteString(fmt.Sprintf("Words:  %d\n", meta.WordCount))
	sb.WriteString(fmt.Sprintf("Lines:  %d\n", meta.LineCount))
	sb.WriteString(fmt.Sprintf("Hash:   %s", meta.Hash))

	p.printBox("INGESTED DOCUMENT", sb.String())
}
