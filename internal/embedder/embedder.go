// Package embedder talks to the external sentence-embeddings service. The
// model is opaque to this repo: text in, fixed-dimension float32 vector out.
package embedder

import "context"

// generates embeddings from text
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
