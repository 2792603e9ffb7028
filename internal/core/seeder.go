// ABOUTME: k-means++ centroid initialization for topic clustering
// ABOUTME: Weighted probabilistic seeding with an injected random source
package core

import "math/rand/v2"

// initializeCentroids selects up to k initial centroids from vectors using
// k-means++ seeding: the first centroid is picked uniformly at random, each
// subsequent one by weighted sampling proportional to the squared cosine
// distance from the nearest already-chosen centroid.
//
// When len(vectors) <= k every vector becomes its own centroid. When all
// remaining weights are zero (every unused vector identical to an existing
// centroid) seeding stops early, so callers may receive fewer than k
// centroids. Returned centroids are copies; input vectors are never aliased.
func initializeCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	if len(vectors) == 0 || k <= 0 {
		return nil
	}

	// Trivial case: one vector per centroid
	if len(vectors) <= k {
		centroids := make([][]float64, len(vectors))
		for i, v := range vectors {
			centroids[i] = copyVector(v)
		}
		return centroids
	}

	centroids := make([][]float64, 0, k)
	used := make(map[int]bool, k)

	first := rng.IntN(len(vectors))
	centroids = append(centroids, copyVector(vectors[first]))
	used[first] = true

	for len(centroids) < k {
		// Weight each unused vector by squared distance to its nearest centroid
		weights := make([]float64, len(vectors))
		total := 0.0
		for i, v := range vectors {
			if used[i] {
				continue
			}
			minDist := 2.0 // cosine distance upper bound is 2
			for _, c := range centroids {
				d := 1.0 - CosineSimilarity(v, c)
				if d < minDist {
					minDist = d
				}
			}
			weights[i] = minDist * minDist
			total += weights[i]
		}

		// All unused vectors coincide with existing centroids; stop early
		if total == 0 {
			break
		}

		// Roulette-wheel selection proportional to weight
		r := rng.Float64() * total
		chosen := -1
		for i := range vectors {
			if used[i] {
				continue
			}
			r -= weights[i]
			if r <= 0 {
				chosen = i
				break
			}
		}
		if chosen < 0 {
			// Floating-point underrun; fall back to the last unused index
			for i := len(vectors) - 1; i >= 0; i-- {
				if !used[i] {
					chosen = i
					break
				}
			}
		}

		centroids = append(centroids, copyVector(vectors[chosen]))
		used[chosen] = true
	}

	return centroids
}

// copyVector returns an engine-owned copy of v
func copyVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
