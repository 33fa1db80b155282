package routes

import (
	"cloud.google.com/go/firestore"
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-reviewbird/classifier"
	"go-reviewbird/handlers"
	"go-reviewbird/reviews"
)

func SetupRouter(
	store *reviews.Store,
	clf *classifier.Classifier,
	firestoreClient *firestore.Client,
	nlpClient *language.Client,
	openaiClient *openai.Client,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Reviewbird!",
		})
	})

	// api routes, clients injected into handlers
	api := r.Group("/api/reviewbird")
	{
		api.GET("/status", func(c *gin.Context) {
			handlers.GetStatus(c, store)
		})
		api.POST("/load", func(c *gin.Context) {
			handlers.LoadReviews(c, store)
		})
		api.GET("/random", func(c *gin.Context) {
			handlers.GetRandomReview(c, store)
		})
		api.GET("/classify-random", func(c *gin.Context) {
			handlers.ClassifyRandom(c, store, clf, firestoreClient)
		})
		api.POST("/classify", func(c *gin.Context) {
			handlers.ClassifyText(c, clf, firestoreClient)
		})
		api.GET("/history", func(c *gin.Context) {
			handlers.GetHistory(c, firestoreClient)
		})
		api.GET("/report", func(c *gin.Context) {
			handlers.GetReport(c, firestoreClient)
		})
		api.GET("/counts", func(c *gin.Context) {
			handlers.GetDecisionCounts(c, firestoreClient)
		})
		api.GET("/summary", func(c *gin.Context) {
			handlers.GetSummary(c, firestoreClient, openaiClient)
		})
		api.GET("/compare", func(c *gin.Context) {
			handlers.CompareSentiment(c, store, clf, nlpClient)
		})
		api.GET("/live", func(c *gin.Context) {
			handlers.ClassifyLive(c, clf)
		})
	}

	return r
}
