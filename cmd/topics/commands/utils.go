// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates helpers used by cluster and embed commands
package commands

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/studymate/topics/internal/models"
)

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// joinChunkIDs renders cluster members as a comma-separated ID list
func joinChunkIDs(chunks []models.Chunk) string {
	ids := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.ID
	}
	return strings.Join(ids, ", ")
}

// seededRand builds a deterministic random source from a single seed value
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
