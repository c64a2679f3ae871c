package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/sections"
)

const maxSummaryParsedChars = 500

var (
	// Long keywords match anywhere; abbreviations only as whole words so
	// "ms" does not fire on "Systems".
	degreeKeywords      = regexp.MustCompile(`(?i)bachelor|master|phd|doctorate|degree|diploma|university|college|school|institute|academy`)
	degreeAbbreviations = regexp.MustCompile(`(?i)(?:^|[^\pL\pN])(?:bs|ba|ms|ma|mba|bsc|msc|b\.s\.|m\.s\.|b\.a\.|m\.a\.)(?:$|[^\pL\pN])`)

	certificationKeywords = regexp.MustCompile(`(?i)certified|certification|certificate|aws|azure|google|microsoft|oracle|cisco|comptia|pmp|scrum|agile|itil`)
	certificationHeading  = regexp.MustCompile(`(?i)^(?:certification|certificates)`)
	projectHeading        = regexp.MustCompile(`(?i)^(?:projects|portfolio)`)

	bulletMarker = regexp.MustCompile(`^[-•*]\s*`)
)

func extractEducation(doc *document) []string {
	education := []string{}
	for _, line := range doc.body(sections.Education) {
		if degreeKeywords.MatchString(line) || degreeAbbreviations.MatchString(line) {
			education = append(education, line)
		}
	}
	return education
}

func extractCertifications(doc *document) []string {
	certs := []string{}
	for _, line := range doc.body(sections.Certifications) {
		if !certificationKeywords.MatchString(line) || certificationHeading.MatchString(line) {
			continue
		}
		if item := stripBullet(line); item != "" {
			certs = append(certs, item)
		}
	}
	return certs
}

func extractProjects(doc *document) []string {
	projects := []string{}
	for _, line := range doc.body(sections.Projects) {
		if !strings.Contains(line, ":") && !bulletMarker.MatchString(line) {
			continue
		}
		if projectHeading.MatchString(line) {
			continue
		}
		if item := stripBullet(line); item != "" {
			projects = append(projects, item)
		}
	}
	return projects
}

// extractSummary joins the lines under the summary heading.
func extractSummary(doc *document) string {
	body := doc.body(sections.Summary)
	if len(body) == 0 {
		return ""
	}
	return truncate(strings.Join(body, " "), maxSummaryParsedChars)
}

func stripBullet(line string) string {
	return strings.TrimSpace(bulletMarker.ReplaceAllString(line, ""))
}
