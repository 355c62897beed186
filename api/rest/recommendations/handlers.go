package recommendations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httperrors "github.com/bookshelf/recommender/internal/errors"
	"github.com/bookshelf/recommender/internal/model"
	"github.com/bookshelf/recommender/internal/redisearch"
	"github.com/bookshelf/recommender/internal/store"
)

// query modes
const (
	ModeKNN   = "knn"
	ModeRange = "range"
)

// Recommender is the store surface the handlers need
type Recommender interface {
	Recommend(ctx context.Context, key string, k int) (*model.Recommendations, error)
	RecommendByRange(ctx context.Context, key string, radius float64) (*model.Recommendations, error)
}

// GetRecommendationsHandler serves similarity lookups for a stored book.
// mode=knn (default) takes k, mode=range takes radius. The reply mirrors the
// decoded engine result: total match count plus the returned window.
func GetRecommendationsHandler(books Recommender) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			httperrors.BadRequest(c, "missing book id", nil)
			return
		}

		ctx := c.Request.Context()
		key := store.Key(id)

		var (
			recs *model.Recommendations
			err  error
		)

		switch mode := c.DefaultQuery("mode", ModeKNN); mode {
		case ModeKNN:
			k, convErr := strconv.Atoi(c.DefaultQuery("k", strconv.Itoa(redisearch.DefaultK)))
			if convErr != nil || k <= 0 {
				httperrors.BadRequest(c, "k must be a positive integer", convErr)
				return
			}

			recs, err = books.Recommend(ctx, key, k)
		case ModeRange:
			radius, convErr := strconv.ParseFloat(c.DefaultQuery("radius", strconv.Itoa(redisearch.DefaultRadius)), 64)
			if convErr != nil || radius <= 0 {
				httperrors.BadRequest(c, "radius must be a positive number", convErr)
				return
			}

			recs, err = books.RecommendByRange(ctx, key, radius)
		default:
			httperrors.BadRequest(c, "mode must be knn or range", nil)
			return
		}

		if err != nil {
			switch {
			case errors.Is(err, model.ErrNotFound):
				httperrors.NotFound(c, "book")
			case errors.Is(err, store.ErrMissingEmbedding):
				httperrors.BadRequest(c, "book has no stored embedding", err)
			default:
				httperrors.InternalError(c, "recommendation query failed", err)
			}

			return
		}

		c.JSON(http.StatusOK, recs)
	}
}
