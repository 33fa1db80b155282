package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-reviewbird/reviews"
)

// GetStatus reports the current review collection state.
func GetStatus(c *gin.Context, store *reviews.Store) {
	c.JSON(http.StatusOK, gin.H{
		"count":  store.Count(),
		"status": store.Status(),
	})
}

// LoadReviews reloads the review table. The body may carry a source
// override; otherwise REVIEWS_TSV_URL is used. A failed load leaves the
// previous collection in place.
func LoadReviews(c *gin.Context, store *reviews.Store) {
	var request struct {
		Source string `json:"source"`
	}
	// Body is optional, ignore bind errors on an empty body.
	_ = c.ShouldBindJSON(&request)

	source := request.Source
	if source == "" {
		source = os.Getenv("REVIEWS_TSV_URL")
	}
	if source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no review source configured"})
		return
	}

	count, err := store.Load(c.Request.Context(), source)
	if err != nil {
		log.Printf("Error loading reviews from %s: %v", source, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  count,
		"status": store.Status(),
	})
}

// GetRandomReview returns one uniformly random review.
func GetRandomReview(c *gin.Context, store *reviews.Store) {
	review, err := store.PickRandom()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}
