package handlers

import (
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-reviewbird/db"
	"go-reviewbird/summarization"
)

// GetSummary fetches recent classified reviews and asks OpenAI for a digest.
func GetSummary(c *gin.Context, firestoreClient *firestore.Client, openaiClient *openai.Client) {
	records, err := db.GetRecentClassifications(c.Request.Context(), firestoreClient, historyLimit(c))
	if err != nil {
		log.Printf("Error fetching classification history for digest: %v", err)
		respondError(c, err)
		return
	}

	digest, err := summarization.GenerateReviewDigest(c.Request.Context(), records, openaiClient)
	if err != nil {
		log.Printf("Error generating review digest: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviewCount": len(records),
		"digest":      digest,
	})
}
