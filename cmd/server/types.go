package main

import (
	"github.com/gin-gonic/gin"

	"github.com/bookshelf/recommender/internal/config"
	"github.com/bookshelf/recommender/internal/store"
)

// holds all dependencies and state for the API server
type Server struct {
	config *config.Config
	books  *store.BookStore
	router *gin.Engine
}
