package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	nameCandidateLines = 5
	maxNameChars       = 50
	minNameWords       = 2
	maxNameWords       = 4
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// optional country code, optional parenthesized area code
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[ -]?)?(?:\(\d{3}\)|\d{3})[ .-]?\d{3}[ .-]?\d{4}`)

	// tried in order; matches never cross a line break
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*,[ \t]*[A-Z]{2}\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*,[ \t]*[A-Z][a-z]+\b`),
	}
)

// extractName returns the first of the leading lines that reads like a
// person's name.
func extractName(doc *document) string {
	for i, line := range doc.lines {
		if i == nameCandidateLines {
			break
		}
		if rejectNameLine(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < minNameWords || len(words) > maxNameWords {
			continue
		}
		if allProperCase(words) {
			return line
		}
	}
	return types.DefaultName
}

func rejectNameLine(line string) bool {
	lower := strings.ToLower(line)
	first, _ := utf8.DecodeRuneInString(line)
	return strings.Contains(line, "@") ||
		strings.Contains(line, "http") ||
		unicode.IsDigit(first) ||
		strings.Contains(lower, "resume") ||
		strings.Contains(lower, "cv") ||
		utf8.RuneCountInString(line) > maxNameChars
}

func allProperCase(words []string) bool {
	for _, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		rest := w[size:]
		if unicode.ToUpper(first) != first || strings.ToLower(rest) != rest {
			return false
		}
	}
	return true
}

func extractEmail(doc *document) string {
	return emailPattern.FindString(doc.text)
}

func extractPhone(doc *document) string {
	return phonePattern.FindString(doc.text)
}

func extractLocation(doc *document) string {
	for _, p := range locationPatterns {
		if m := p.FindString(doc.text); m != "" {
			return m
		}
	}
	return ""
}
