// ABOUTME: Tests for the cosine similarity metric
// ABOUTME: Verifies identity, orthogonality, and defensive zero fallbacks
package core

import (
	"math"
	"testing"
)

func TestCosineSimilarity_Identity(t *testing.T) {
	vectors := [][]float64{
		{1, 0, 0},
		{0.5, 0.5},
		{-1, 2, -3, 4},
	}

	for _, v := range vectors {
		got := CosineSimilarity(v, v)
		if math.Abs(got-1.0) > 1e-12 {
			t.Errorf("CosineSimilarity(%v, %v) = %v, want 1.0", v, v, got)
		}
	}
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	got := CosineSimilarity([]float64{1, 0}, []float64{0, 1})
	if got != 0 {
		t.Errorf("CosineSimilarity(orthogonal) = %v, want 0", got)
	}
}

func TestCosineSimilarity_Opposite(t *testing.T) {
	got := CosineSimilarity([]float64{1, 2}, []float64{-1, -2})
	if math.Abs(got+1.0) > 1e-12 {
		t.Errorf("CosineSimilarity(opposite) = %v, want -1.0", got)
	}
}

func TestCosineSimilarity_MismatchedLengths(t *testing.T) {
	// Length mismatch is treated as maximal dissimilarity, not an error
	got := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2})
	if got != 0 {
		t.Errorf("CosineSimilarity(mismatched) = %v, want 0", got)
	}
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	if got := CosineSimilarity([]float64{0, 0}, []float64{1, 1}); got != 0 {
		t.Errorf("CosineSimilarity(zero, v) = %v, want 0", got)
	}
	if got := CosineSimilarity([]float64{1, 1}, []float64{0, 0}); got != 0 {
		t.Errorf("CosineSimilarity(v, zero) = %v, want 0", got)
	}
}

func TestCosineSimilarity_KnownValue(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	got := CosineSimilarity(a, b)
	want := 0.9746318461970762

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("CosineSimilarity(%v, %v) = %v, want %v", a, b, got, want)
	}
}
