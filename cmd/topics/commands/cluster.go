// ABOUTME: CLI command to cluster embedded chunks into topic groups
// ABOUTME: Reads a cluster request from file or stdin, emits the response
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studymate/topics/internal/config"
	"github.com/studymate/topics/internal/core"
	"github.com/studymate/topics/internal/models"
	"github.com/studymate/topics/internal/worker"
)

var (
	clusterCount     int
	minChunksPer     int
	clusterSeedValue uint64
)

// NewClusterCmd creates the cluster command
func NewClusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster [file]",
		Short: "Cluster embedded chunks into topic groups",
		Long: `Cluster embedded content chunks into topic-coherent groups.

Reads a JSON request from the given file (or stdin when omitted):

  {"chunks": [{"id": "c1", "embedding": [0.1, 0.2]}, ...],
   "numClusters": 6, "minChunksPerGroup": 1}

Chunks without usable embeddings are dropped from clustering; when nothing
is clusterable all input is returned as a single fallback cluster.

Examples:
  topics cluster chunks.json
  cat chunks.json | topics cluster
  topics cluster --clusters 4 --format json chunks.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCluster,
	}

	cmd.Flags().IntVar(&clusterCount, "clusters", 0, "Target cluster count (overrides request and config)")
	cmd.Flags().IntVar(&minChunksPer, "min-chunks", 0, "Minimum chunks per cluster (overrides request and config)")
	cmd.Flags().Uint64Var(&clusterSeedValue, "seed", 0, "Random seed for reproducible clustering (0 = random)")

	return cmd
}

func runCluster(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var req models.ClusterRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	if clusterCount > 0 {
		req.NumClusters = clusterCount
	}
	if minChunksPer > 0 {
		req.MinChunksPerGroup = minChunksPer
	}

	opts := core.Options{
		NumClusters:       cfg.NumClusters,
		MinChunksPerGroup: cfg.MinChunksPerGroup,
		MaxIterations:     cfg.MaxIterations,
	}
	if clusterSeedValue != 0 {
		opts.Rand = seededRand(clusterSeedValue)
	}

	task := worker.StartTask(opts)
	defer task.Close()

	clusters, err := task.Submit(context.Background(), req)

	var response models.ClusterResponse
	if err != nil {
		response = models.ClusterResponse{Success: false, Error: err.Error()}
	} else {
		response = models.ClusterResponse{Success: true, Result: clusters}
	}

	if outputFormat == "json" || outputFormat == "auto" {
		jsonData, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	// Table format
	if !response.Success {
		return fmt.Errorf("clustering failed: %s", response.Error)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CLUSTER\tSIZE\tCHUNK IDS\n")
	fmt.Fprintf(w, "-------\t----\t---------\n")
	for i, cluster := range clusters {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i+1, cluster.Size, truncate(joinChunkIDs(cluster.Chunks), 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d cluster(s) from %d chunk(s)\n", len(clusters), len(req.Chunks))
	}

	return nil
}

// readInput reads the request body from the file argument or stdin
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}
