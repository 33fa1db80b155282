package handlers

import (
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-reviewbird/classifier"
	"go-reviewbird/db"
	"go-reviewbird/reviews"
	"go-reviewbird/types"
)

// classifyInFlight enforces the single in-flight discipline for the
// user-triggered pick-and-classify action.
var classifyInFlight atomic.Bool

// credential returns the caller-supplied token, falling back to the
// configured one. A blank credential means the request goes unauthenticated.
func credential(c *gin.Context) string {
	if token := c.Query("credential"); token != "" {
		return token
	}
	return os.Getenv("HF_API_TOKEN")
}

// ClassifyRandom picks one random review, classifies it and persists the
// outcome. Only one call may be in flight at a time; concurrent triggers get
// a 429 instead of a second request to the model.
func ClassifyRandom(c *gin.Context, store *reviews.Store, clf *classifier.Classifier, firestoreClient *firestore.Client) {
	if !classifyInFlight.CompareAndSwap(false, true) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "a classification is already in flight"})
		return
	}
	defer classifyInFlight.Store(false)

	review, err := store.PickRandom()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := clf.Classify(c.Request.Context(), review, credential(c))
	if err != nil {
		log.Printf("Error classifying review: %v", err)
		respondError(c, err)
		return
	}

	rec := persistClassification(c, firestoreClient, review, result, "random")

	c.JSON(http.StatusOK, gin.H{
		"review":         review,
		"classification": result,
		"id":             rec.ID,
	})
}

// ClassifyText classifies caller-provided text.
func ClassifyText(c *gin.Context, clf *classifier.Classifier, firestoreClient *firestore.Client) {
	var request struct {
		Text       string `json:"text"`
		Credential string `json:"credential"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
		return
	}

	token := request.Credential
	if token == "" {
		token = os.Getenv("HF_API_TOKEN")
	}

	result, err := clf.Classify(c.Request.Context(), request.Text, token)
	if err != nil {
		log.Printf("Error classifying text: %v", err)
		respondError(c, err)
		return
	}

	rec := persistClassification(c, firestoreClient, request.Text, result, "manual")

	c.JSON(http.StatusOK, gin.H{
		"classification": result,
		"id":             rec.ID,
	})
}

// persistClassification writes the outcome to the history collection.
// History is best effort: a nil client (no Firestore configured) or a failed
// write never fails the classification itself.
func persistClassification(c *gin.Context, firestoreClient *firestore.Client, text string, result types.Classification, source string) types.ClassificationRecord {
	rec := types.ClassificationRecord{
		Text:      text,
		RawLabel:  result.RawLabel,
		RawScore:  result.RawScore,
		Decision:  result.Decision,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
	if firestoreClient == nil {
		return rec
	}

	saved, err := db.SaveClassification(c.Request.Context(), firestoreClient, rec)
	if err != nil {
		log.Printf("Warning: failed to persist classification: %v", err)
		return rec
	}
	return saved
}
