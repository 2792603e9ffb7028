// ABOUTME: Cluster models for topic grouping output
// ABOUTME: Defines Cluster and the worker request/response message shapes
package models

// Cluster is a topic-coherent group of chunks produced by the clustering
// engine. Centroid is nil for fallback clusters where no clustering was
// performed (marshals to JSON null).
type Cluster struct {
	Chunks   []Chunk   `json:"chunks"`
	Centroid []float64 `json:"centroid"`
	Size     int       `json:"size"`
}

// ClusterRequest is the input message accepted by the clustering worker.
type ClusterRequest struct {
	Chunks            []Chunk `json:"chunks"`
	NumClusters       int     `json:"numClusters,omitempty"`
	MinChunksPerGroup int     `json:"minChunksPerGroup,omitempty"`
}

// ClusterResponse is the single reply produced for each ClusterRequest.
type ClusterResponse struct {
	Success bool      `json:"success"`
	Result  []Cluster `json:"result,omitempty"`
	Error   string    `json:"error,omitempty"`
}
