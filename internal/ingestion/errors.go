package ingestion

import "fmt"

// IngestError represents a failure to turn a source document into clean text
type IngestError struct {
	Source  string
	Message string
	Cause   error
}

func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest %s: %s", e.Source, e.Message)
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}
