// ABOUTME: Engine partitions embedded chunks into topic-coherent clusters
// ABOUTME: Orchestrates k-means++ seeding, Lloyd iteration, and assembly
package core

import (
	"math/rand/v2"
	"sort"

	"github.com/studymate/topics/internal/models"
)

const (
	// DefaultNumClusters is the default target cluster count
	DefaultNumClusters = 6
	// DefaultMinChunksPerGroup is the default lower bound on cluster occupancy
	DefaultMinChunksPerGroup = 1
	// DefaultMaxIterations is the default Lloyd iteration cap
	DefaultMaxIterations = 10
)

// Options configures the clustering engine. Zero values fall back to the
// package defaults, so Options{} is a valid configuration.
type Options struct {
	NumClusters       int
	MinChunksPerGroup int
	MaxIterations     int
	// Rand supplies the randomness for k-means++ seeding. Inject a
	// fixed-seed source for reproducible results; nil uses an auto-seeded
	// generator.
	Rand *rand.Rand
}

// Engine groups chunks by embedding proximity so downstream generation can
// sample evenly across a document's topics. Each Cluster call is independent
// and stateless; no state survives across calls.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine, applying defaults for unset options
func NewEngine(opts Options) *Engine {
	if opts.NumClusters <= 0 {
		opts.NumClusters = DefaultNumClusters
	}
	if opts.MinChunksPerGroup <= 0 {
		opts.MinChunksPerGroup = DefaultMinChunksPerGroup
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{opts: opts}
}

// Cluster partitions chunks into topic clusters sorted by size descending.
// Chunks with missing or unparseable embeddings are dropped from clustering.
// Malformed input never produces an error: when nothing is clusterable the
// original chunks are returned as a single fallback cluster with a nil
// centroid. Caller-owned chunk records are treated as read-only.
func (e *Engine) Cluster(chunks []models.Chunk) []models.Cluster {
	if len(chunks) == 0 {
		return []models.Cluster{}
	}

	effectiveK := e.opts.NumClusters
	maxGroups := (len(chunks) + e.opts.MinChunksPerGroup - 1) / e.opts.MinChunksPerGroup
	if maxGroups < effectiveK {
		effectiveK = maxGroups
	}

	// Too few chunks to split: everything in one group, no clustering
	if effectiveK <= 1 {
		return []models.Cluster{{Chunks: chunks, Centroid: nil, Size: len(chunks)}}
	}

	validChunks, vectors := filterValid(chunks)

	// Nothing clusterable: preserve all original input for the caller
	if len(validChunks) == 0 {
		return []models.Cluster{{Chunks: chunks, Centroid: nil, Size: len(chunks)}}
	}

	centroids := initializeCentroids(vectors, effectiveK, e.opts.Rand)
	centroids, assignments := iterate(vectors, centroids, e.opts.MaxIterations)

	// Group chunks by final assignment, dropping empty clusters
	members := make([][]models.Chunk, len(centroids))
	for i, c := range validChunks {
		members[assignments[i]] = append(members[assignments[i]], c)
	}

	clusters := make([]models.Cluster, 0, len(centroids))
	for c := range centroids {
		if len(members[c]) == 0 {
			continue
		}
		clusters = append(clusters, models.Cluster{
			Chunks:   members[c],
			Centroid: centroids[c],
			Size:     len(members[c]),
		})
	}

	// Largest clusters first so consumers get balanced topic coverage early
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Size > clusters[j].Size
	})

	return clusters
}

// filterValid splits out the chunks with parseable embeddings along with
// their parsed vectors. Parsing works on engine-local copies; caller data is
// never written back.
func filterValid(chunks []models.Chunk) ([]models.Chunk, [][]float64) {
	valid := make([]models.Chunk, 0, len(chunks))
	vectors := make([][]float64, 0, len(chunks))
	for _, c := range chunks {
		vec, ok := c.Vector()
		if !ok {
			continue
		}
		valid = append(valid, c)
		vectors = append(vectors, vec)
	}
	return valid, vectors
}
