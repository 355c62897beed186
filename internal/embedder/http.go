package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bookshelf/recommender/internal/model"
)

const (
	// all-MiniLM-L6-v2 served behind an OpenAI-compatible embeddings endpoint;
	// its output dimension matches the vector index
	defaultModel = "sentence-transformers/all-MiniLM-L6-v2"
)

// shared HTTP client for embeddings calls
// reuses connection pool and timeout configuration
var embedderHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for embeddings calls (10 requests/second with burst capacity of 5)
var embedderRateLimiter = rate.NewLimiter(10, 5)

type embeddingRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
}

type HTTPConfig struct {
	URL    string // embeddings endpoint, e.g. "http://localhost:8081/v1/embeddings"
	APIKey string // optional bearer token
	Model  string
}

// HTTPEmbedder generates embeddings through an OpenAI-compatible endpoint
type HTTPEmbedder struct {
	config     HTTPConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewHTTPEmbedder(config HTTPConfig) *HTTPEmbedder {
	if config.Model == "" {
		config.Model = defaultModel
	}

	return &HTTPEmbedder{
		config:     config,
		httpClient: embedderHTTPClient,
		limiter:    embedderRateLimiter,
	}
}

func (e *HTTPEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return embeddings[0], nil
}

func (e *HTTPEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	jsonData, err := json.Marshal(embeddingRequest{
		Input: texts,
		Model: e.config.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.config.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if e.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.config.APIKey)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embeddings request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var embResp embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	embeddings := make([][]float32, len(texts))

	for _, data := range embResp.Data {
		if data.Index < 0 || data.Index >= len(texts) {
			return nil, fmt.Errorf("embedding index %d out of range", data.Index)
		}

		if len(data.Embedding) != model.EmbeddingDim {
			return nil, fmt.Errorf("embedding has %d dimensions, expected %d",
				len(data.Embedding), model.EmbeddingDim)
		}

		embeddings[data.Index] = data.Embedding
	}

	for i, emb := range embeddings {
		if emb == nil {
			return nil, fmt.Errorf("no embedding returned for input %d", i)
		}
	}

	return embeddings, nil
}
