// Package sections locates labeled resume sections by building an index of heading lines.
package sections

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

// Kind names a section category, e.g. "experience".
type Kind string

// Section kinds consumed by the field extractors. Catalogs may define more
// kinds; those only act as boundaries for other sections.
const (
	Summary        Kind = "summary"
	Experience     Kind = "experience"
	Education      Kind = "education"
	Skills         Kind = "skills"
	Projects       Kind = "projects"
	Certifications Kind = "certifications"
	Languages      Kind = "languages"
)

const (
	maxHeadingChars = 40
	// words allowed after the keyword, as in "Skills & Tools"
	maxTrailingWords = 2
)

var headingDecoration = regexp.MustCompile(`^[\s#*•·\-–>=_]+|[\s*•·\-–=_:.]+$`)

// Heading is one line of the document recognized as a section heading.
type Heading struct {
	Line  int
	Kinds []Kind
}

// Has reports whether the heading opens a section of kind k.
func (h Heading) Has(k Kind) bool {
	return slices.Contains(h.Kinds, k)
}

// Section is the span of lines from a heading up to the next heading of a kind
// that ends it.
type Section struct {
	Kind    Kind
	Start   int // index of the heading line
	End     int // index one past the last line
	Heading string
	Body    []string // lines after the heading
}

// Text returns the heading line and body joined by newlines.
func (s Section) Text() string {
	return strings.Join(append([]string{s.Heading}, s.Body...), "\n")
}

// Index records which lines of a document are headings.
type Index struct {
	lines    []string
	headings []Heading
	endsAt   map[Kind][]Kind
}

type matcher struct {
	kind    Kind
	pattern *regexp.Regexp
}

// Locator recognizes heading lines using the catalog's section keywords.
type Locator struct {
	matchers []matcher
	// kinds that end a section; a kind without an entry ends at any other kind
	endsAt map[Kind][]Kind
}

// NewLocator compiles heading matchers from the section table in cat.
func NewLocator(cat *catalog.Catalog) *Locator {
	headings := cat.Sections()
	l := &Locator{
		matchers: make([]matcher, 0, len(headings)),
		endsAt:   make(map[Kind][]Kind),
	}
	for _, h := range headings {
		alts := make([]string, len(h.Keywords))
		for i, kw := range h.Keywords {
			alts[i] = regexp.QuoteMeta(kw)
		}
		pattern := regexp.MustCompile(`(?i)^(` + strings.Join(alts, "|") + `)(?:$|[^\pL\pN_])`)
		l.matchers = append(l.matchers, matcher{kind: Kind(h.Kind), pattern: pattern})
		for _, end := range h.EndsAt {
			l.endsAt[Kind(h.Kind)] = append(l.endsAt[Kind(h.Kind)], Kind(end))
		}
	}
	return l
}

// Classify returns the kinds a line opens, or nil if it is not a heading.
// Only the part before the first colon is matched. A heading starts with a
// section keyword and carries at most two more words. When the keyword does
// not name its kind, as "Technologies" for skills, the line must hold the
// keyword alone: "Technologies: Go" and "Applications Developer" are
// sub-labels or titles, while "Skills: Go" is a heading with inline content.
func (l *Locator) Classify(line string) []Kind {
	head, rest, _ := strings.Cut(line, ":")
	head = headingDecoration.ReplaceAllString(head, "")
	if head == "" || utf8.RuneCountInString(head) > maxHeadingChars {
		return nil
	}
	inline := strings.TrimSpace(rest) != ""

	var kinds []Kind
	for _, m := range l.matchers {
		match := m.pattern.FindStringSubmatch(head)
		if match == nil {
			continue
		}
		trailing := len(strings.Fields(head[len(match[1]):]))
		if trailing > maxTrailingWords {
			continue
		}
		if !namesKind(match[1], m.kind) && (inline || trailing > 0) {
			continue
		}
		kinds = append(kinds, m.kind)
	}
	return kinds
}

func namesKind(keyword string, k Kind) bool {
	return strings.Contains(strings.ToLower(keyword), string(k))
}

// Build indexes the heading lines of lines.
func (l *Locator) Build(lines []string) *Index {
	idx := &Index{lines: lines, endsAt: l.endsAt}
	for i, line := range lines {
		if kinds := l.Classify(line); len(kinds) > 0 {
			idx.headings = append(idx.headings, Heading{Line: i, Kinds: kinds})
		}
	}
	return idx
}

// Headings returns the recognized headings in document order.
func (idx *Index) Headings() []Heading {
	return slices.Clone(idx.headings)
}

// Locate returns the first section of kind k. The span stops before the next
// heading of a kind that ends k; a repeated heading of kind k, or one of a kind
// k does not end, stays inside the span. ok is false when no heading of kind k
// exists.
func (idx *Index) Locate(k Kind) (Section, bool) {
	for i, h := range idx.headings {
		if !h.Has(k) {
			continue
		}

		end := len(idx.lines)
		for _, next := range idx.headings[i+1:] {
			if idx.ends(next, k) {
				end = next.Line
				break
			}
		}

		return Section{
			Kind:    k,
			Start:   h.Line,
			End:     end,
			Heading: idx.lines[h.Line],
			Body:    slices.Clone(idx.lines[h.Line+1 : end]),
		}, true
	}
	return Section{}, false
}

// ends reports whether heading h closes an open section of kind k.
func (idx *Index) ends(h Heading, k Kind) bool {
	terminators, bounded := idx.endsAt[k]
	for _, kind := range h.Kinds {
		if kind == k {
			continue
		}
		if !bounded || slices.Contains(terminators, kind) {
			return true
		}
	}
	return false
}
