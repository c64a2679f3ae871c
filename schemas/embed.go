// Package schemas holds the JSON Schemas for the artifacts the analyzer writes.
package schemas

import _ "embed"

// ResumeRecordFile is the schema's path relative to the repository root.
const ResumeRecordFile = "schemas/resume_record.schema.json"

// ResumeRecord is the JSON Schema for an extracted ResumeRecord.
//
//go:embed resume_record.schema.json
var ResumeRecord string
