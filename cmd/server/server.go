package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/bookshelf/recommender/internal/config"
	"github.com/bookshelf/recommender/internal/store"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	books, err := store.NewFromURL(cfg.RedisURL, cfg.IndexName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// the index must exist before the first search; creation is idempotent
	if err := books.EnsureIndex(context.Background()); err != nil {
		books.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to ensure search index: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	srv := &Server{
		config: cfg,
		books:  books,
		router: router,
	}

	RegisterRoutes(router, srv)

	return srv, nil
}
