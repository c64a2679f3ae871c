package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeRecord_Defaults(t *testing.T) {
	r := NewResumeRecord()

	assert.Equal(t, "Unknown", r.Name)
	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Experience)
	assert.NotNil(t, r.Languages)
	assert.Zero(t, r.YearsOfExperience)
	assert.NoError(t, r.Validate())
}

func TestResumeRecord_JSONEmptySequences(t *testing.T) {
	r := NewResumeRecord()

	jsonBytes, err := json.Marshal(r)
	require.NoError(t, err)

	out := string(jsonBytes)
	assert.Contains(t, out, `"name":"Unknown"`)
	assert.Contains(t, out, `"skills":[]`)
	assert.Contains(t, out, `"experience":[]`)
	assert.Contains(t, out, `"jobTitles":[]`)
	assert.Contains(t, out, `"yearsOfExperience":0`)
	assert.NotContains(t, out, "null")
}

func TestExperienceEntry_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"title": "Senior Developer",
		"company": "Acme Corp",
		"duration": "2019 - 2021",
		"description": "Built scalable web applications"
	}`

	var entry ExperienceEntry
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &entry))
	assert.Equal(t, ExperienceEntry{
		Title:       "Senior Developer",
		Company:     "Acme Corp",
		Duration:    "2019 - 2021",
		Description: "Built scalable web applications",
	}, entry)
}

func TestResumeRecord_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ResumeRecord)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "defaults",
			mutate:  func(r *ResumeRecord) {},
			wantErr: false,
		},
		{
			name:    "empty name",
			mutate:  func(r *ResumeRecord) { r.Name = "" },
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "too many skills",
			mutate: func(r *ResumeRecord) {
				r.Skills = make([]string, MaxSkills+1)
			},
			wantErr: true,
			errMsg:  "Skills",
		},
		{
			name:    "skills at cap",
			mutate:  func(r *ResumeRecord) { r.Skills = make([]string, MaxSkills) },
			wantErr: false,
		},
		{
			name:    "negative years",
			mutate:  func(r *ResumeRecord) { r.YearsOfExperience = -1 },
			wantErr: true,
			errMsg:  "YearsOfExperience",
		},
		{
			name:    "years above cap",
			mutate:  func(r *ResumeRecord) { r.YearsOfExperience = 51 },
			wantErr: true,
			errMsg:  "YearsOfExperience",
		},
		{
			name:    "summary counts characters not bytes",
			mutate:  func(r *ResumeRecord) { r.Summary = strings.Repeat("é", MaxSummaryChars) },
			wantErr: false,
		},
		{
			name:    "summary too long",
			mutate:  func(r *ResumeRecord) { r.Summary = strings.Repeat("a", MaxSummaryChars+1) },
			wantErr: true,
			errMsg:  "Summary",
		},
		{
			name: "description too long",
			mutate: func(r *ResumeRecord) {
				r.Experience = []ExperienceEntry{{Title: "Dev", Description: strings.Repeat("a", MaxDescriptionChars+1)}}
			},
			wantErr: true,
			errMsg:  "Description",
		},
		{
			name: "too many education lines",
			mutate: func(r *ResumeRecord) {
				r.Education = make([]string, MaxEducation+1)
			},
			wantErr: true,
			errMsg:  "Education",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResumeRecord()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
