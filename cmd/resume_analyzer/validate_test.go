package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resumeschemas "github.com/jonathan/resume-analyzer/schemas"
)

const validRecord = `{
  "name": "Jane Smith",
  "email": "",
  "phone": "",
  "location": "",
  "skills": [],
  "experience": [],
  "education": [],
  "summary": "",
  "jobTitles": [],
  "yearsOfExperience": 0,
  "certifications": [],
  "languages": [],
  "projects": []
}`

func TestValidate_DefaultSchema(t *testing.T) {
	out := useCommand(t, validateCmd)
	jsonPath := writeFile(t, t.TempDir(), "record.json", validRecord)
	require.NoError(t, validateCmd.Flags().Set("json", jsonPath))

	require.NoError(t, runValidate(validateCmd, nil))
	assert.Contains(t, out.String(), "Validation passed")
	assert.Contains(t, out.String(), resumeschemas.ResumeRecordFile)
}

func TestValidate_BuiltInSchemaFallback(t *testing.T) {
	out := useCommand(t, validateCmd)
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "record.json", validRecord)
	require.NoError(t, validateCmd.Flags().Set("json", jsonPath))
	t.Chdir(dir)

	require.NoError(t, runValidate(validateCmd, nil))
	assert.Contains(t, out.String(), "built-in")
}

func TestValidate_Failure(t *testing.T) {
	out := useCommand(t, validateCmd)
	jsonPath := writeFile(t, t.TempDir(), "record.json", `{"name": "Jane Smith", "yearsOfExperience": 99}`)
	require.NoError(t, validateCmd.Flags().Set("json", jsonPath))

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Validation failed")
	assert.Contains(t, out.String(), "yearsOfExperience")
}

func TestValidate_ExplicitSchema(t *testing.T) {
	out := useCommand(t, validateCmd)
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "name.schema.json", `{"type": "object", "required": ["name"]}`)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "x"}`)
	require.NoError(t, validateCmd.Flags().Set("schema", schemaPath))
	require.NoError(t, validateCmd.Flags().Set("json", jsonPath))

	require.NoError(t, runValidate(validateCmd, nil))
	assert.Contains(t, out.String(), schemaPath)
}

func TestValidate_MissingJSON(t *testing.T) {
	useCommand(t, validateCmd)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, validateCmd.Flags().Set("json", "absent.json"))

	assert.Error(t, runValidate(validateCmd, nil))
}
