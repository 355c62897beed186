package embedder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelf/recommender/internal/model"
)

func embeddingsServer(t *testing.T, dim int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := embeddingResponse{Model: req.Model}

		for i := range req.Input {
			emb := make([]float32, dim)
			emb[0] = float32(i + 1)

			resp.Data = append(resp.Data, struct {
				Index     int       `json:"index"`
				Embedding []float32 `json:"embedding"`
			}{Index: i, Embedding: emb})
		}

		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestHTTPEmbedder_Embed(t *testing.T) {
	server := embeddingsServer(t, model.EmbeddingDim)
	defer server.Close()

	e := NewHTTPEmbedder(HTTPConfig{URL: server.URL})

	emb, err := e.Embed(context.Background(), "a book about whales")

	require.NoError(t, err)
	assert.Len(t, emb, model.EmbeddingDim)
}

func TestHTTPEmbedder_Batch(t *testing.T) {
	server := embeddingsServer(t, model.EmbeddingDim)
	defer server.Close()

	e := NewHTTPEmbedder(HTTPConfig{URL: server.URL})

	embs, err := e.EmbedBatch(context.Background(), []string{"one", "two", "three"})

	require.NoError(t, err)
	require.Len(t, embs, 3)
	assert.Equal(t, float32(1), embs[0][0])
	assert.Equal(t, float32(3), embs[2][0])
}

func TestHTTPEmbedder_WrongDimension(t *testing.T) {
	server := embeddingsServer(t, 1536)
	defer server.Close()

	e := NewHTTPEmbedder(HTTPConfig{URL: server.URL})

	_, err := e.Embed(context.Background(), "text")

	assert.ErrorContains(t, err, "dimensions")
}

func TestHTTPEmbedder_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	e := NewHTTPEmbedder(HTTPConfig{URL: server.URL})

	_, err := e.Embed(context.Background(), "text")

	assert.ErrorContains(t, err, "status 503")
}

func TestHTTPEmbedder_EmptyInput(t *testing.T) {
	e := NewHTTPEmbedder(HTTPConfig{URL: "http://localhost:0"})

	_, err := e.EmbedBatch(context.Background(), nil)

	assert.Error(t, err)
}
