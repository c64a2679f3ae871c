package extraction

import (
	"errors"
	"fmt"
)

// ErrInputTooLarge is returned when the input exceeds the extractor's size limit.
var ErrInputTooLarge = errors.New("input exceeds maximum size")

// AnalysisError is the single failure Extract reports. No partial record accompanies it.
type AnalysisError struct {
	Cause error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("failed to analyze resume: %v", e.Cause)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// FieldError describes a field extractor that failed and was defaulted.
type FieldError struct {
	Field string
	Cause any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Field, e.Cause)
}
