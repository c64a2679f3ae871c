package extraction

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// extractSkills matches the skill catalog against the skills section, or the
// whole document when there is none. Results follow catalog order.
func extractSkills(doc *document, cat *catalog.Catalog) []string {
	return catalog.MatchAll(cat.Skills(), doc.scope(sections.Skills))
}

// extractLanguages matches spoken languages the same way extractSkills does.
func extractLanguages(doc *document, cat *catalog.Catalog) []string {
	return catalog.MatchAll(cat.Languages(), doc.scope(sections.Languages))
}

// extractJobTitles lists experience titles first, then catalog titles found
// anywhere in the text, without case-insensitive repeats.
func extractJobTitles(doc *document, experience []types.ExperienceEntry, cat *catalog.Catalog) []string {
	titles := make([]string, 0, len(experience))
	seen := make(map[string]struct{})
	add := func(title string) {
		key := strings.ToLower(title)
		if _, ok := seen[key]; ok || title == "" {
			return
		}
		seen[key] = struct{}{}
		titles = append(titles, title)
	}

	for _, entry := range experience {
		add(entry.Title)
	}
	for _, title := range catalog.MatchAll(cat.JobTitles(), doc.text) {
		add(title)
	}
	return titles
}
