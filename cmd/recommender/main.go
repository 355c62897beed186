package main

import (
	"context"
	"fmt"

	"github.com/bookshelf/recommender/internal/config"
	"github.com/bookshelf/recommender/internal/embedder"
	"github.com/bookshelf/recommender/internal/loader"
	"github.com/bookshelf/recommender/internal/logger"
	"github.com/bookshelf/recommender/internal/model"
	"github.com/bookshelf/recommender/internal/redisearch"
	"github.com/bookshelf/recommender/internal/store"
)

// demo lookups used when no id is given
var demoKeys = []string{"book:26415", "book:9"}

func main() {
	flags := config.ParseRecommenderFlags()

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	books, err := store.NewFromURL(flags.RedisURL, cfg.IndexName)
	if err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}

	defer books.Close() //nolint:errcheck,gosec // best-effort cleanup on exit

	ctx := context.Background()

	if flags.Load {
		emb := embedder.NewHTTPEmbedder(embedder.HTTPConfig{
			URL:    cfg.EmbedderURL,
			APIKey: cfg.EmbedderKey,
			Model:  cfg.EmbedderModel,
		})

		if _, err := loader.LoadBooks(ctx, books, emb, flags.BooksPath); err != nil {
			logger.Fatal("failed to load books", "error", err)
		}
	}

	if flags.Index {
		if err := books.EnsureIndex(ctx); err != nil {
			logger.Fatal("failed to create index", "error", err)
		}
	}

	keys := demoKeys
	if flags.ID != "" {
		keys = []string{flags.ID}
	}

	for _, key := range keys {
		fmt.Printf("Recommendations for %s\n", key)

		recs, err := books.Recommend(ctx, key, redisearch.DefaultK)
		if err != nil {
			logger.Fatal("recommendation query failed", "key", key, "error", err)
		}

		printRecommendations(recs)

		fmt.Printf("Recommendations by range for %s\n", key)

		recs, err = books.RecommendByRange(ctx, key, redisearch.DefaultRadius)
		if err != nil {
			logger.Fatal("range recommendation query failed", "key", key, "error", err)
		}

		printRecommendations(recs)
	}
}

func printRecommendations(recs *model.Recommendations) {
	for _, r := range recs.Recommendations {
		fmt.Printf("\tid: %s\n\ttitle: %s\n\tscore: %g\n\n", r.ID, r.Title, r.Score)
	}
}
