// Package catalog provides the fixed keyword tables used by rule-based resume extraction.
// Tables are stored as JSON files and embedded at compile time.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
	"sync"
)

//go:embed *.json
var catalogFiles embed.FS

// File names every catalog filesystem must provide.
const (
	SkillsFile    = "skills.json"
	JobTitlesFile = "job_titles.json"
	LanguagesFile = "languages.json"
	SectionsFile  = "sections.json"
)

// Term is a catalog entry with its compiled whole-word matcher.
type Term struct {
	Name     string
	Category string
	pattern  *regexp.Regexp
}

// In reports whether the term occurs in text as a whole word, ignoring case.
func (t Term) In(text string) bool {
	if t.pattern == nil || text == "" {
		return false
	}
	return t.pattern.MatchString(text)
}

// SectionHeading lists the heading keywords that open one section kind and
// the kinds whose headings end it. An empty EndsAt means any other kind.
type SectionHeading struct {
	Kind     string   `json:"kind"`
	Keywords []string `json:"keywords"`
	EndsAt   []string `json:"endsAt,omitempty"`
}

// Catalog holds the keyword tables. It is read-only after Load returns.
type Catalog struct {
	skills    []Term
	jobTitles []Term
	languages []Term
	sections  []SectionHeading
}

// Skills returns the skill terms in catalog order.
func (c *Catalog) Skills() []Term { return slices.Clone(c.skills) }

// JobTitles returns the job title terms in catalog order.
func (c *Catalog) JobTitles() []Term { return slices.Clone(c.jobTitles) }

// Languages returns the spoken language terms in catalog order.
func (c *Catalog) Languages() []Term { return slices.Clone(c.languages) }

// Sections returns the section headings in catalog order.
func (c *Catalog) Sections() []SectionHeading {
	out := make([]SectionHeading, len(c.sections))
	for i, s := range c.sections {
		out[i] = SectionHeading{Kind: s.Kind, Keywords: slices.Clone(s.Keywords), EndsAt: slices.Clone(s.EndsAt)}
	}
	return out
}

type skillsFile struct {
	Categories []struct {
		Name  string   `json:"name"`
		Terms []string `json:"terms"`
	} `json:"categories"`
}

type termsFile struct {
	Terms []string `json:"terms"`
}

type sectionsFile struct {
	Sections []SectionHeading `json:"sections"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(catalogFiles)
})

// Default returns the embedded catalog, panicking if the embedded files are malformed.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded catalog: %v", err))
	}
	return c
}

// Load builds a catalog from the four catalog files in fsys.
// Use it to extend or localize the tables without touching extraction code.
func Load(fsys fs.FS) (*Catalog, error) {
	var sf skillsFile
	if err := readJSON(fsys, SkillsFile, &sf); err != nil {
		return nil, err
	}
	c := &Catalog{}
	for _, cat := range sf.Categories {
		for _, name := range cat.Terms {
			c.skills = append(c.skills, Term{Name: name, Category: cat.Name})
		}
	}

	var tf termsFile
	if err := readJSON(fsys, JobTitlesFile, &tf); err != nil {
		return nil, err
	}
	for _, name := range tf.Terms {
		c.jobTitles = append(c.jobTitles, Term{Name: name})
	}

	tf = termsFile{}
	if err := readJSON(fsys, LanguagesFile, &tf); err != nil {
		return nil, err
	}
	for _, name := range tf.Terms {
		c.languages = append(c.languages, Term{Name: name})
	}

	var secf sectionsFile
	if err := readJSON(fsys, SectionsFile, &secf); err != nil {
		return nil, err
	}
	c.sections = secf.Sections

	for file, terms := range map[string][]Term{
		SkillsFile:    c.skills,
		JobTitlesFile: c.jobTitles,
		LanguagesFile: c.languages,
	} {
		if err := compileTerms(file, terms); err != nil {
			return nil, err
		}
	}
	if err := checkSections(c.sections); err != nil {
		return nil, err
	}

	return c, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", name, err)
	}
	return nil
}

// compileTerms attaches matchers in place and rejects empty or duplicate names.
func compileTerms(file string, terms []Term) error {
	seen := make(map[string]bool, len(terms))
	for i := range terms {
		name := strings.TrimSpace(terms[i].Name)
		if name == "" {
			return fmt.Errorf("catalog file %s: empty term at index %d", file, i)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("catalog file %s: duplicate term %q", file, name)
		}
		seen[key] = true
		terms[i].Name = name
		terms[i].pattern = WholeWord(name)
	}
	return nil
}

// checkSections lowercases keywords in place and rejects tables that would
// compile to a matcher for the empty string or end at an unknown kind.
func checkSections(sections []SectionHeading) error {
	seen := make(map[string]bool, len(sections))
	for i, s := range sections {
		if s.Kind == "" {
			return fmt.Errorf("catalog file %s: section %d has no kind", SectionsFile, i)
		}
		if seen[s.Kind] {
			return fmt.Errorf("catalog file %s: duplicate section kind %q", SectionsFile, s.Kind)
		}
		seen[s.Kind] = true
		if len(s.Keywords) == 0 {
			return fmt.Errorf("catalog file %s: section %q has no keywords", SectionsFile, s.Kind)
		}
		for j, kw := range s.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				return fmt.Errorf("catalog file %s: section %q has an empty keyword at index %d", SectionsFile, s.Kind, j)
			}
			sections[i].Keywords[j] = kw
		}
	}
	for _, s := range sections {
		for _, end := range s.EndsAt {
			if !seen[end] {
				return fmt.Errorf("catalog file %s: section %q ends at unknown kind %q", SectionsFile, s.Kind, end)
			}
		}
	}
	return nil
}

// WholeWord compiles a case-insensitive matcher for phrase that refuses to match
// inside a longer word. Guards are only added on sides where phrase starts or ends
// with a word character, so entries like "C++" and ".NET" still match.
func WholeWord(phrase string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?i)`)
	if isWordByte(phrase[0]) {
		b.WriteString(`(?:^|[^A-Za-z0-9_])`)
	}
	b.WriteString(regexp.QuoteMeta(phrase))
	if isWordByte(phrase[len(phrase)-1]) {
		b.WriteString(`(?:$|[^A-Za-z0-9_])`)
	}
	return regexp.MustCompile(b.String())
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// MatchAll returns the names of terms found in text, in catalog order, without duplicates.
func MatchAll(terms []Term, text string) []string {
	found := make([]string, 0)
	seen := make(map[string]bool)
	for _, t := range terms {
		if seen[t.Name] || !t.In(text) {
			continue
		}
		seen[t.Name] = true
		found = append(found, t.Name)
	}
	return found
}
