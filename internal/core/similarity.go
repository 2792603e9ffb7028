// ABOUTME: Cosine similarity metric for embedding vectors
// ABOUTME: Shared by centroid seeding and Lloyd iteration
package core

import "math"

// CosineSimilarity calculates cosine similarity between two vectors.
// Returns 0.0 when the lengths differ or either vector has zero norm.
// Mismatched lengths are treated as maximal dissimilarity rather than an
// error; callers must not rely on this to detect malformed input.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
