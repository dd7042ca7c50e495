package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-chat-be/pkg/embedding"
	"portfolio-chat-be/pkg/store"
)

// NoRelevantContext is the sentinel handed to the composer when the index
// returns nothing usable. The policy prompt keys off it.
const NoRelevantContext = "[NO RELEVANT CONTEXT FOUND]"

// Index is the consumed vector-index interface: top-K nearest chunks for a
// query vector, best-first, each carrying a cosine similarity score.
type Index interface {
	SearchSimilar(ctx context.Context, vector []float32, topK int) ([]store.Chunk, error)
}

// Config encapsulates retrieval parameters
type Config struct {
	TopK int

	// Threshold gates the best hit's similarity score. Scores at or below it
	// mean the whole result set is discarded, never partial chunks.
	Threshold float64
}

// DefaultConfig returns default retrieval configuration
func DefaultConfig() Config {
	return Config{
		TopK:      3,
		Threshold: 0.1,
	}
}

// Gate embeds the query, searches the index and applies the relevance
// threshold, producing either a formatted context block or the sentinel.
type Gate struct {
	embedder embedding.Provider
	index    Index
	config   Config
}

func NewGate(embedder embedding.Provider, index Index, config Config) *Gate {
	return &Gate{
		embedder: embedder,
		index:    index,
		config:   config,
	}
}

// Retrieve returns the context block for a query. Embedding and search
// failures propagate; retrieval cannot proceed without a query vector, and
// search errors are not retried at this layer.
func (g *Gate) Retrieve(ctx context.Context, query string) (string, error) {
	vector, err := g.embedder.Generate(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embedding generation failed: %w", err)
	}

	chunks, err := g.index.SearchSimilar(ctx, vector, g.config.TopK)
	if err != nil {
		return "", fmt.Errorf("vector search failed: %w", err)
	}

	// Relevance is an all-or-nothing gate on the top hit only.
	if len(chunks) == 0 || chunks[0].Distance <= g.config.Threshold {
		return NoRelevantContext, nil
	}

	return renderChunks(chunks), nil
}

// renderChunks formats hits in index order (best-first); no re-ranking or
// deduplication by link/section.
func renderChunks(chunks []store.Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		meta := []byte("{}")
		if c.Metadata != nil {
			if b, err := json.Marshal(c.Metadata); err == nil {
				meta = b
			}
		}
		parts = append(parts, fmt.Sprintf(
			"[SECTION]: %s\n[CONTENT]: %s\n[LINK]: %s\n[METADATA]: %s",
			c.Section, c.Content, c.Link, string(meta),
		))
	}
	return strings.Join(parts, "\n\n")
}
