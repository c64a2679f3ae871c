// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultName is the name reported when no candidate line qualifies.
const DefaultName = "Unknown"

// Field bounds enforced on every ResumeRecord returned by the extractor.
const (
	MaxSkills            = 20
	MaxExperience        = 10
	MaxEducation         = 5
	MaxJobTitles         = 5
	MaxCertifications    = 10
	MaxProjects          = 10
	MaxLanguages         = 10
	MaxSummaryChars      = 1000
	MaxDescriptionChars  = 200
	MaxYearsOfExperience = 50
)

// ResumeRecord is the structured result of analyzing one resume
type ResumeRecord struct {
	Name              string            `json:"name" validate:"required"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Skills            []string          `json:"skills" validate:"max=20"`
	Experience        []ExperienceEntry `json:"experience" validate:"max=10,dive"`
	Education         []string          `json:"education" validate:"max=5"`
	JobTitles         []string          `json:"jobTitles" validate:"max=5"`
	Summary           string            `json:"summary" validate:"max=1000"`
	YearsOfExperience int               `json:"yearsOfExperience" validate:"min=0,max=50"`
	Certifications    []string          `json:"certifications" validate:"max=10"`
	Projects          []string          `json:"projects" validate:"max=10"`
	Languages         []string          `json:"languages" validate:"max=10"`
	Location          string            `json:"location"`
}

// ExperienceEntry is one job parsed from the experience section
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description" validate:"max=200"`
}

// NewResumeRecord returns a record holding the default value of every field.
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		Name:           DefaultName,
		Skills:         []string{},
		Experience:     []ExperienceEntry{},
		Education:      []string{},
		JobTitles:      []string{},
		Certifications: []string{},
		Projects:       []string{},
		Languages:      []string{},
	}
}

// Validate checks the record against its field bounds.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
