package embedding

import (
	"context"
	"errors"
)

// ErrEmptyInput is returned before any provider call when the input text is
// empty or whitespace-only. A missing embedding must abort retrieval rather
// than produce a garbage query vector.
var ErrEmptyInput = errors.New("input to embed must be a non-empty string")

// Provider defines the interface for generating text embeddings
type Provider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}
