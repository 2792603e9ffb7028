// ABOUTME: CLI command to attach OpenAI embeddings to content chunks
// ABOUTME: Caller-side harness for the upstream embedding service boundary
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/studymate/topics/internal/config"
	"github.com/studymate/topics/internal/llm"
	"github.com/studymate/topics/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

var embedBatchSize int

// NewEmbedCmd creates the embed command
func NewEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed [file]",
		Short: "Attach embeddings to content chunks",
		Long: `Attach OpenAI embeddings to chunks that do not have one yet.

Reads a JSON array of chunks from the given file (or stdin when omitted),
generates an embedding for each chunk's content, and writes the enriched
array to stdout, ready for the cluster command. Chunks without an id are
assigned one.

Requires OPENAI_API_KEY (loaded from the environment or a .env file).

Examples:
  topics embed chunks.json > embedded.json
  topics embed chunks.json | topics cluster`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEmbed,
	}

	cmd.Flags().IntVar(&embedBatchSize, "batch-size", 64, "Chunks per embedding API request")

	return cmd
}

func runEmbed(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(embedBatchSize, "batch-size"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var chunks []models.Chunk
	if err := json.Unmarshal(input, &chunks); err != nil {
		return fmt.Errorf("parsing chunks: %w", err)
	}

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return fmt.Errorf("creating OpenAI client: %w", err)
	}

	// Collect the chunks that still need an embedding
	var pending []int
	for i := range chunks {
		if chunks[i].ID == "" {
			chunks[i].ID = "chunk_" + uuid.New().String()
		}
		if _, ok := chunks[i].Vector(); !ok && chunks[i].Content != "" {
			pending = append(pending, i)
		}
	}

	for start := 0; start < len(pending); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		texts := make([]string, len(batch))
		for j, idx := range batch {
			texts[j] = chunks[idx].Content
		}

		vectors, err := client.GenerateEmbeddings(texts)
		if err != nil {
			return fmt.Errorf("generating embeddings: %w", err)
		}

		for j, idx := range batch {
			raw, err := json.Marshal(vectors[j])
			if err != nil {
				return fmt.Errorf("encoding embedding: %w", err)
			}
			chunks[idx].Embedding = raw
		}
	}

	jsonData, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)

	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Embedded %d of %d chunk(s)\n", len(pending), len(chunks))
	}

	return nil
}
