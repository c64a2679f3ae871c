package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONRoundTrip(t *testing.T) {
	metadata := &Metadata{
		ID:        "4f1c2b9e-0000-4000-8000-000000000000",
		Source:    "resume.txt",
		Timestamp: "2024-01-01T00:00:00Z",
		Hash:      "abcd1234",
		WordCount: 12,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
	assert.Contains(t, string(jsonBytes), `"word_count": 12`)
}

func TestNewMetadata(t *testing.T) {
	metadata := NewMetadata("Jane Smith\n\nSkills: Go", "upload")

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
	assert.Equal(t, "upload", metadata.Source)
	assert.Equal(t, 4, metadata.WordCount)
	assert.Equal(t, 2, metadata.LineCount)
	assert.Equal(t, computeHash("Jane Smith\n\nSkills: Go"), metadata.Hash)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}
