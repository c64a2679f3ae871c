package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	previewChars = 500
	// multipart framing allowed on top of the file itself
	multipartOverhead = 64 << 10
	uploadField       = "file"
)

var validate = validator.New()

// ExtractRequest is the JSON form of an extraction request.
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

// ExtractMetadata describes the analyzed upload.
type ExtractMetadata struct {
	WordCount int `json:"wordCount"`
	FileSize  int `json:"fileSize"`
}

// ExtractResponse is returned by a successful extraction.
type ExtractResponse struct {
	Success      bool                `json:"success"`
	ResumeData   *types.ResumeRecord `json:"resumeData"`
	OriginalText string              `json:"originalText"`
	Metadata     ExtractMetadata     `json:"metadata"`
}

// handleExtract analyzes a plain-text resume sent as a text body, a JSON
// document or a multipart upload.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	raw, source, err := s.readResume(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	text, meta, err := ingestion.IngestText(raw, source)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.extractor.Extract(text)
	if err != nil {
		logger.Error().Err(err).Str("document_id", meta.ID).Msg("extraction failed")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	logger.Debug().
		Str("document_id", meta.ID).
		Int("skills", len(record.Skills)).
		Int("experience", len(record.Experience)).
		Msg("resume extracted")

	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		Success:      true,
		ResumeData:   record,
		OriginalText: preview(text),
		Metadata: ExtractMetadata{
			WordCount: meta.WordCount,
			FileSize:  meta.Bytes,
		},
	})
}

// readResume returns the raw resume bytes and a source label for the request body.
func (s *Server) readResume(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", &ErrUnsupportedType{ContentType: r.Header.Get("Content-Type")}
	}

	limit := s.maxInputBytes
	if mediaType == "multipart/form-data" && limit > 0 {
		limit += multipartOverhead
	}
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	switch mediaType {
	case "text/plain":
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, "", err
		}
		return raw, "request body", nil

	case "application/json":
		var req ExtractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return nil, "", err
			}
			return nil, "", &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
		}
		if err := validate.Struct(req); err != nil {
			return nil, "", &ErrValidation{Field: "text", Message: "is required"}
		}
		return []byte(req.Text), "request body", nil

	case "multipart/form-data":
		return s.readUpload(r)

	default:
		return nil, "", &ErrUnsupportedType{ContentType: mediaType}
	}
}

func (s *Server) readUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, "", err
		}
		return nil, "", &ErrValidation{Field: uploadField, Message: "no file uploaded"}
	}
	defer file.Close()

	partType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil || partType != "text/plain" {
		return nil, "", &ErrUnsupportedType{ContentType: header.Header.Get("Content-Type")}
	}
	if s.maxInputBytes > 0 && header.Size > s.maxInputBytes {
		return nil, "", &http.MaxBytesError{Limit: s.maxInputBytes}
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return raw, header.Filename, nil
}

// preview returns the first previewChars characters of text followed by "...".
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewChars {
		return text
	}
	return string(runes[:previewChars]) + "..."
}
