package extraction

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ApplyBounds caps every sequence, truncates long text and clamps the years
// into range. It returns a new record, never shares slices with r, and
// ApplyBounds(ApplyBounds(r)) equals ApplyBounds(r).
func ApplyBounds(r types.ResumeRecord) types.ResumeRecord {
	out := r

	if strings.TrimSpace(out.Name) == "" {
		out.Name = types.DefaultName
	}

	out.Skills = capSlice(r.Skills, types.MaxSkills)
	out.Education = capSlice(r.Education, types.MaxEducation)
	out.JobTitles = capSlice(r.JobTitles, types.MaxJobTitles)
	out.Certifications = capSlice(r.Certifications, types.MaxCertifications)
	out.Projects = capSlice(r.Projects, types.MaxProjects)
	out.Languages = capSlice(r.Languages, types.MaxLanguages)

	out.Experience = capSlice(r.Experience, types.MaxExperience)
	for i := range out.Experience {
		out.Experience[i].Description = truncate(out.Experience[i].Description, types.MaxDescriptionChars)
	}

	out.Summary = truncate(r.Summary, types.MaxSummaryChars)
	out.YearsOfExperience = min(max(r.YearsOfExperience, 0), types.MaxYearsOfExperience)

	return out
}

// capSlice copies at most n leading elements of s. The result is never nil.
func capSlice[T any](s []T, n int) []T {
	out := make([]T, min(len(s), n))
	copy(out, s)
	return out
}

// truncate shortens s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
