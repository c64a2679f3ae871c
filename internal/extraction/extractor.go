// Package extraction turns cleaned resume text into a ResumeRecord using
// keyword catalogs, section headings and line-shape heuristics.
package extraction

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultMaxInputBytes bounds the text a default Extractor accepts.
const DefaultMaxInputBytes = 10 << 20

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used to report defaulted fields.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Extractor) { e.logger = logger }
}

// WithClock sets the time source used to resolve "present" in durations.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// WithCatalog replaces the embedded keyword catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(e *Extractor) { e.catalog = cat }
}

// WithMaxInputBytes sets the input size limit. Zero or less disables the limit.
func WithMaxInputBytes(n int) Option {
	return func(e *Extractor) { e.maxInputBytes = n }
}

// Extractor analyzes resume text. It holds no per-call state and is safe for
// concurrent use.
type Extractor struct {
	catalog       *catalog.Catalog
	locator       *sections.Locator
	logger        zerolog.Logger
	now           func() time.Time
	maxInputBytes int
	fields        []fieldRule
}

// New creates an Extractor with the embedded catalog and a no-op logger.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		logger:        zerolog.Nop(),
		now:           time.Now,
		maxInputBytes: DefaultMaxInputBytes,
		fields:        fieldRules,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	e.locator = sections.NewLocator(e.catalog)
	return e
}

var defaultExtractor = sync.OnceValue(func() *Extractor { return New() })

// Extract analyzes text with a shared default Extractor.
func Extract(text string) (*types.ResumeRecord, error) {
	return defaultExtractor().Extract(text)
}

// Extract analyzes text and returns a bounded ResumeRecord. Fields that cannot
// be found keep their defaults; an error means no record was produced.
func (e *Extractor) Extract(text string) (record *types.ResumeRecord, err error) {
	if e.maxInputBytes > 0 && len(text) > e.maxInputBytes {
		return nil, &AnalysisError{
			Cause: fmt.Errorf("%w: %d bytes, limit is %d", ErrInputTooLarge, len(text), e.maxInputBytes),
		}
	}

	defer func() {
		if p := recover(); p != nil {
			record = nil
			err = &AnalysisError{Cause: fmt.Errorf("unexpected failure: %v", p)}
		}
	}()

	doc := e.newDocument(text)
	bounded := ApplyBounds(e.collect(doc))
	if err := bounded.Validate(); err != nil {
		return nil, &AnalysisError{Cause: err}
	}

	e.logger.Debug().
		Int("lines", len(doc.lines)).
		Int("headings", len(doc.index.Headings())).
		Int("skills", len(bounded.Skills)).
		Int("experience", len(bounded.Experience)).
		Msg("resume analyzed")

	return &bounded, nil
}

// fieldRule fills one record field. Rules run in order, so a rule may read
// fields set by the rules before it.
type fieldRule struct {
	name string
	run  func(e *Extractor, doc *document, r *types.ResumeRecord)
}

var fieldRules = []fieldRule{
	{"name", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Name = extractName(doc) }},
	{"email", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Email = extractEmail(doc) }},
	{"phone", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Phone = extractPhone(doc) }},
	{"location", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Location = extractLocation(doc) }},
	{"skills", func(e *Extractor, doc *document, r *types.ResumeRecord) { r.Skills = extractSkills(doc, e.catalog) }},
	{"languages", func(e *Extractor, doc *document, r *types.ResumeRecord) { r.Languages = extractLanguages(doc, e.catalog) }},
	{"experience", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Experience = extractExperience(doc) }},
	{"education", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Education = extractEducation(doc) }},
	{"jobTitles", func(e *Extractor, doc *document, r *types.ResumeRecord) {
		r.JobTitles = extractJobTitles(doc, r.Experience, e.catalog)
	}},
	{"summary", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Summary = extractSummary(doc) }},
	{"yearsOfExperience", func(e *Extractor, doc *document, r *types.ResumeRecord) {
		r.YearsOfExperience = yearsOfExperience(doc, r.Experience, e.now())
	}},
	{"certifications", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Certifications = extractCertifications(doc) }},
	{"projects", func(_ *Extractor, doc *document, r *types.ResumeRecord) { r.Projects = extractProjects(doc) }},
}

// collect runs every field rule over doc. A failing rule leaves its field at
// the default value.
func (e *Extractor) collect(doc *document) types.ResumeRecord {
	r := types.NewResumeRecord()
	for _, rule := range e.fields {
		e.field(rule.name, func() { rule.run(e, doc, &r) })
	}
	return r
}

func (e *Extractor) field(name string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			e.logger.Warn().Err(&FieldError{Field: name, Cause: p}).Msg("field extraction failed; using default")
		}
	}()
	fn()
}

// document is one normalized input with its heading index.
type document struct {
	text  string
	lines []string
	index *sections.Index
}

func (e *Extractor) newDocument(raw string) *document {
	text := ingestion.CleanText(raw)
	lines := ingestion.Lines(text)
	return &document{
		text:  text,
		lines: lines,
		index: e.locator.Build(lines),
	}
}

// body returns the lines under the first heading of kind k, or nil when the
// document has no such section.
func (d *document) body(k sections.Kind) []string {
	s, ok := d.index.Locate(k)
	if !ok {
		return nil
	}
	return s.Body
}

// scope returns the text of the section of kind k, or the whole document when
// it has no such section.
func (d *document) scope(k sections.Kind) string {
	if s, ok := d.index.Locate(k); ok {
		return s.Text()
	}
	return d.text
}
