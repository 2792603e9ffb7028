// ABOUTME: Lloyd assign/update iteration loop for topic clustering
// ABOUTME: Runs until assignments stabilize or the iteration cap is reached
package core

// iterate runs Lloyd's alternating assign/update loop over vectors starting
// from the given centroids. Each vector is assigned to the centroid of
// maximum cosine similarity, ties resolving to the first centroid in order.
// Iteration stops when the assignment vector is unchanged from the previous
// pass (converged) or after maxIterations passes.
//
// Centroids with no assigned vectors keep their previous value, so the
// centroid count never shrinks mid-run. Both terminal states return a valid
// (centroids, assignments) pair.
func iterate(vectors [][]float64, centroids [][]float64, maxIterations int) ([][]float64, []int) {
	assignments := make([]int, len(vectors))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < maxIterations; iter++ {
		// Assignment step: nearest centroid by cosine similarity
		changed := false
		for i, v := range vectors {
			best := 0
			bestSim := CosineSimilarity(v, centroids[0])
			for c := 1; c < len(centroids); c++ {
				sim := CosineSimilarity(v, centroids[c])
				if sim > bestSim {
					bestSim = sim
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update step: coordinate-wise mean of each centroid's members
		dim := len(vectors[0])
		sums := make([][]float64, len(centroids))
		counts := make([]int, len(centroids))
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vectors {
			c := assignments[i]
			counts[c]++
			for d := 0; d < len(v) && d < dim; d++ {
				sums[c][d] += v[d]
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				// Empty centroid retains its previous value
				continue
			}
			for d := range sums[c] {
				sums[c][d] /= float64(counts[c])
			}
			centroids[c] = sums[c]
		}
	}

	return centroids, assignments
}
