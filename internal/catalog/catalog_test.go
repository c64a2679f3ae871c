package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedTables(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.GreaterOrEqual(t, len(c.Skills()), 100)
	assert.Len(t, c.JobTitles(), 36)
	assert.Len(t, c.Languages(), 18)

	kinds := make([]string, 0)
	for _, s := range c.Sections() {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []string{
		"summary", "experience", "education", "skills", "projects", "certifications",
		"languages", "awards", "interests", "references", "volunteer",
	}, kinds)
}

func TestDefault_SkillOrderFollowsFile(t *testing.T) {
	skills := Default().Skills()
	assert.Equal(t, "JavaScript", skills[0].Name)
	assert.Equal(t, "Programming Languages", skills[0].Category)
	assert.Equal(t, "Time Management", skills[len(skills)-1].Name)
	assert.Equal(t, "Soft Skills", skills[len(skills)-1].Category)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Default()
	skills := c.Skills()
	skills[0].Name = "changed"
	sections := c.Sections()
	sections[0].Keywords[0] = "changed"

	assert.Equal(t, "JavaScript", c.Skills()[0].Name)
	assert.NotEqual(t, "changed", c.Sections()[0].Keywords[0])
}

func TestTerm_In(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		text  string
		found bool
	}{
		{"plain word", "Python", "I write python daily", true},
		{"inside longer word", "Java", "JavaScript only", false},
		{"suffix symbols", "C++", "Languages: C++, Rust", true},
		{"hash suffix", "C#", "C# and F#", true},
		{"leading dot", ".NET", "built on .NET core", true},
		{"dotted name", "Node.js", "React, Node.js, Python", true},
		{"multi word", "Machine Learning", "applied machine  learning", false},
		{"multi word exact", "Machine Learning", "applied machine learning", true},
		{"slash", "CI/CD", "owned the CI/CD pipeline", true},
		{"single letter", "R", "React developer", false},
		{"single letter standalone", "R", "Stats in R and SQL", true},
		{"empty text", "Go", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := Term{Name: tt.term, pattern: WholeWord(tt.term)}
			assert.Equal(t, tt.found, term.In(tt.text))
		})
	}
}

func TestMatchAll_CatalogOrderAndDedup(t *testing.T) {
	terms := []Term{
		{Name: "Python", pattern: WholeWord("Python")},
		{Name: "React", pattern: WholeWord("React")},
		{Name: "Node.js", pattern: WholeWord("Node.js")},
	}

	found := MatchAll(terms, "Node.js; React | python | React")
	assert.Equal(t, []string{"Python", "React", "Node.js"}, found)

	assert.Empty(t, MatchAll(terms, "nothing here"))
	assert.NotNil(t, MatchAll(terms, ""))
}

func validFS() fstest.MapFS {
	return fstest.MapFS{
		SkillsFile:    {Data: []byte(`{"categories":[{"name":"Langs","terms":["Go","Rust"]}]}`)},
		JobTitlesFile: {Data: []byte(`{"terms":["Software Engineer"]}`)},
		LanguagesFile: {Data: []byte(`{"terms":["English"]}`)},
		SectionsFile:  {Data: []byte(`{"sections":[{"kind":"skills","keywords":["Skills"]}]}`)},
	}
}

func TestLoad_CustomFS(t *testing.T) {
	c, err := Load(validFS())
	require.NoError(t, err)

	assert.Len(t, c.Skills(), 2)
	assert.Equal(t, "skills", c.Sections()[0].Kind)
	assert.Equal(t, []string{"skills"}, c.Sections()[0].Keywords, "keywords are lowercased")
	assert.Empty(t, c.Sections()[0].EndsAt)
	assert.True(t, c.Skills()[1].In("written in rust"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{"invalid json", SkillsFile, `{bad`, "failed to parse catalog file skills.json"},
		{"duplicate term", LanguagesFile, `{"terms":["English","english"]}`, "duplicate term"},
		{"empty term", JobTitlesFile, `{"terms":["  "]}`, "empty term"},
		{"duplicate kind", SectionsFile, `{"sections":[{"kind":"a","keywords":["a"]},{"kind":"a","keywords":["b"]}]}`, "duplicate section kind"},
		{"no keywords", SectionsFile, `{"sections":[{"kind":"a","keywords":[]}]}`, "has no keywords"},
		{"empty keyword", SectionsFile, `{"sections":[{"kind":"a","keywords":["a",""]}]}`, "empty keyword at index 1"},
		{"blank keyword", SectionsFile, `{"sections":[{"kind":"a","keywords":["   "]}]}`, "empty keyword at index 0"},
		{"unknown end kind", SectionsFile, `{"sections":[{"kind":"a","keywords":["a"],"endsAt":["b"]}]}`, `ends at unknown kind "b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := validFS()
			fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.content)}

			c, err := Load(fsys)
			assert.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := validFS()
	delete(fsys, LanguagesFile)

	_, err := Load(fsys)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file languages.json")
}
