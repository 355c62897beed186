package recommendations

import (
	"github.com/gin-gonic/gin"
)

// registers the recommendation routes on the given group
func RegisterRoutes(router *gin.RouterGroup, books Recommender) {
	router.GET("/books/:id/recommendations", GetRecommendationsHandler(books))
}
