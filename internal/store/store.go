// Package store wraps the Redis Stack client: book documents live as JSON
// under prefixed keys, and similarity lookups go through the FT.SEARCH
// commands built by the redisearch package.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookshelf/recommender/internal/logger"
	"github.com/bookshelf/recommender/internal/model"
	"github.com/bookshelf/recommender/internal/redisearch"
	"github.com/bookshelf/recommender/internal/vector"
)

const (
	// KeyPrefix scopes book documents; the index is created over the same
	// prefix
	KeyPrefix = "book:"

	connectTimeout = 5 * time.Second
)

// ErrMissingEmbedding is returned when a similarity query is requested for a
// book that has no stored vector
var ErrMissingEmbedding = errors.New("no embedding stored for book")

// BookStore is a stateless wrapper around one Redis connection; it is safe
// for concurrent use to the extent the underlying client is.
type BookStore struct {
	client *redis.Client
	index  string
}

// New wraps an existing client. The index name is passed explicitly so
// multiple indices can coexist in tests and deployments.
func New(client *redis.Client, index string) *BookStore {
	return &BookStore{client: client, index: index}
}

// NewFromURL connects to redis and verifies the connection before returning
func NewFromURL(redisURL, index string) (*BookStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	// search replies are decoded positionally, which is the RESP2 shape
	opts.Protocol = 2

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return &BookStore{client: client, index: index}, nil
}

// closes the underlying connection
func (s *BookStore) Close() error {
	return s.client.Close()
}

// Key returns the storage key for a book id, e.g. "book:9"
func Key(id string) string {
	return KeyPrefix + id
}

// SaveBook stores a book as a JSON document under its prefixed key
func (s *BookStore) SaveBook(ctx context.Context, book *model.Book) error {
	if err := s.client.JSONSet(ctx, Key(book.ID), "$", book).Err(); err != nil {
		return fmt.Errorf("failed to store book %s: %w", book.ID, err)
	}

	return nil
}

// GetBook loads the book stored under the given key. Path-scoped JSON.GET
// wraps the document in a one-element array; DecodeBook accepts both shapes.
func (s *BookStore) GetBook(ctx context.Context, key string) (*model.Book, error) {
	raw, err := s.client.JSONGet(ctx, key, "$").Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", key, model.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get book %s: %w", key, err)
	}

	return model.DecodeBook([]byte(raw))
}

// EnsureIndex creates the search index unless it already exists
func (s *BookStore) EnsureIndex(ctx context.Context) error {
	raw, err := s.client.Do(ctx, redisearch.ListIndexes().Build()...).Result()
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}

	if names, ok := raw.([]any); ok {
		for _, name := range names {
			if n, ok := name.(string); ok && n == s.index {
				return nil
			}
		}
	}

	cmd := redisearch.CreateIndex(s.index, KeyPrefix)
	if err := s.client.Do(ctx, cmd.Build()...).Err(); err != nil {
		return fmt.Errorf("failed to create index %s: %w", s.index, err)
	}

	logger.Info("created search index", "index", s.index)

	return nil
}

// Recommend returns the k nearest neighbors of the book stored under key.
// The query matches all indexed documents, so the book itself is usually the
// top hit.
func (s *BookStore) Recommend(ctx context.Context, key string, k int) (*model.Recommendations, error) {
	enc, err := s.queryVector(ctx, key)
	if err != nil {
		return nil, err
	}

	cmd, err := redisearch.KNNQuery(s.index, enc, k)
	if err != nil {
		return nil, err
	}

	return s.search(ctx, cmd)
}

// RecommendByRange returns the books whose embedding lies within radius of
// the book stored under key
func (s *BookStore) RecommendByRange(ctx context.Context, key string, radius float64) (*model.Recommendations, error) {
	enc, err := s.queryVector(ctx, key)
	if err != nil {
		return nil, err
	}

	cmd, err := redisearch.RangeQuery(s.index, enc, radius)
	if err != nil {
		return nil, err
	}

	return s.search(ctx, cmd)
}

// loads the book and encodes its embedding, failing before any search
// command is issued when no usable vector is stored
func (s *BookStore) queryVector(ctx context.Context, key string) ([]byte, error) {
	book, err := s.GetBook(ctx, key)
	if err != nil {
		return nil, err
	}

	if book.Embedding == nil {
		return nil, fmt.Errorf("%s: %w", key, ErrMissingEmbedding)
	}

	if len(book.Embedding) != model.EmbeddingDim {
		return nil, fmt.Errorf("%s: embedding has %d dimensions, index expects %d",
			key, len(book.Embedding), model.EmbeddingDim)
	}

	return vector.Encode(book.Embedding), nil
}

func (s *BookStore) search(ctx context.Context, cmd redisearch.Command) (*model.Recommendations, error) {
	raw, err := s.client.Do(ctx, cmd.Build()...).Result()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	v, err := redisearch.FromReply(raw)
	if err != nil {
		return nil, err
	}

	return redisearch.DecodeRecommendations(v)
}
