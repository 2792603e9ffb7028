// ABOUTME: Chunk represents a content fragment with its embedding vector
// ABOUTME: Embeddings arrive as JSON number arrays or JSON-encoded array strings
package models

import "encoding/json"

// Chunk is a piece of study material with an embedding attached by an
// upstream embedding service. The embedding is kept as raw JSON because
// callers send it either as a number array or as a string containing a
// JSON array.
type Chunk struct {
	ID        string          `json:"id"`
	Content   string          `json:"content,omitempty"`
	Embedding json.RawMessage `json:"embedding,omitempty"`
}

// Vector parses the chunk's embedding into a float64 slice.
// Accepts a JSON number array or a JSON string that itself contains a JSON
// array (some upstream pipelines double-encode embeddings). Returns ok=false
// for missing, null, or unparseable embeddings. The parsed slice is a fresh
// copy; the chunk's raw bytes are never modified.
func (c Chunk) Vector() ([]float64, bool) {
	if len(c.Embedding) == 0 {
		return nil, false
	}

	var vec []float64
	if err := json.Unmarshal(c.Embedding, &vec); err == nil {
		if vec == nil {
			return nil, false
		}
		return vec, true
	}

	// Some pipelines double-encode: "\"[1,2,3]\""
	var encoded string
	if err := json.Unmarshal(c.Embedding, &encoded); err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(encoded), &vec); err != nil {
		return nil, false
	}
	if vec == nil {
		return nil, false
	}
	return vec, true
}
