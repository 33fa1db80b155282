package handlers

import (
	"log"
	"net/http"

	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-reviewbird/classifier"
	"go-reviewbird/nlp"
	"go-reviewbird/reviews"
)

// CompareSentiment classifies one text with the hosted model and with Cloud
// Natural Language, side by side. Text comes from the "text" query param, or
// a random review when it is absent.
func CompareSentiment(c *gin.Context, store *reviews.Store, clf *classifier.Classifier, nlpClient *language.Client) {
	text := c.Query("text")
	if text == "" {
		picked, err := store.PickRandom()
		if err != nil {
			respondError(c, err)
			return
		}
		text = picked
	}

	result, err := clf.Classify(c.Request.Context(), text, credential(c))
	if err != nil {
		log.Printf("Error classifying text for comparison: %v", err)
		respondError(c, err)
		return
	}

	secondOpinion, err := nlp.AnalyzeSentiment(nlpClient, text)
	if err != nil {
		log.Printf("Error getting Cloud NL sentiment: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":           text,
		"classification": result,
		"cloudSentiment": secondOpinion,
	})
}
