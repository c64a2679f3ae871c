package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	maxTitleLineChars     = 100
	minDescriptionChars   = 21
	maxParsedDescriptions = types.MaxDescriptionChars
)

var (
	titleIndicators = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:developer|engineer|manager|analyst|designer|coordinator|specialist|director|lead|senior|junior)\b`),
		regexp.MustCompile(`(?i)\bat\s+\w+`),
		regexp.MustCompile(`\|\s*\w+`),
		regexp.MustCompile(`-\s*\w+`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`),
		regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\b`),
		regexp.MustCompile(`\b(?:20\d{2}|19\d{2})\b`),
		regexp.MustCompile(`(?i)\b(?:present|current)\b`),
	}
)

// jobLine is the title, company and duration read from one experience line.
type jobLine struct {
	Title    string
	Company  string
	Duration string
}

// lineShape is one way a job line may be written.
type lineShape struct {
	name    string
	pattern *regexp.Regexp
}

// parse returns the fields of line, or false when the line has another shape.
// Every shape captures title, company and an optional duration.
func (s lineShape) parse(line string) (jobLine, bool) {
	m := s.pattern.FindStringSubmatch(line)
	if m == nil {
		return jobLine{}, false
	}
	return jobLine{
		Title:    strings.TrimSpace(m[1]),
		Company:  strings.TrimSpace(m[2]),
		Duration: strings.TrimSpace(m[3]),
	}, true
}

// jobLineShapes are tried in order.
var jobLineShapes = []lineShape{
	{name: "at", pattern: regexp.MustCompile(`^(.+?)\s+at\s+(.+?)(?:\s*\((.+?)\))?$`)},
	{name: "pipe", pattern: regexp.MustCompile(`^(.+?)\s*\|\s*(.+?)\s*\|\s*(.+)$`)},
	{name: "dash", pattern: regexp.MustCompile(`^(.+?)\s*-\s*(.+?)\s*-\s*(.+)$`)},
}

// parseJobLine reads line with the first shape that fits it. A line no shape
// fits becomes the title.
func parseJobLine(line string) jobLine {
	for _, shape := range jobLineShapes {
		if job, ok := shape.parse(line); ok {
			return job
		}
	}
	return jobLine{Title: line}
}

func looksLikeJobTitle(line string) bool {
	if utf8.RuneCountInString(line) >= maxTitleLineChars {
		return false
	}
	for _, p := range titleIndicators {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func looksLikeDate(line string) bool {
	for _, p := range datePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// extractExperience walks the experience section. A job line opens an entry;
// longer lines that follow it and are not dates become its description.
func extractExperience(doc *document) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	var (
		current     *jobLine
		description []string
	)
	flush := func() {
		if current == nil {
			return
		}
		entries = append(entries, types.ExperienceEntry{
			Title:       current.Title,
			Company:     current.Company,
			Duration:    current.Duration,
			Description: truncate(strings.Join(description, " "), maxParsedDescriptions),
		})
	}

	for _, line := range doc.body(sections.Experience) {
		switch {
		case looksLikeJobTitle(line):
			flush()
			job := parseJobLine(line)
			current = &job
			description = nil
		case current != nil && utf8.RuneCountInString(line) >= minDescriptionChars && !looksLikeDate(line):
			description = append(description, line)
		}
	}
	flush()

	return entries
}
