package handlers

import (
	"log"
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-reviewbird/db"
	"go-reviewbird/stats"
)

const defaultHistoryLimit = 50

func historyLimit(c *gin.Context) int {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return limit
}

// GetHistory returns recent classification records, newest first.
func GetHistory(c *gin.Context, firestoreClient *firestore.Client) {
	records, err := db.GetRecentClassifications(c.Request.Context(), firestoreClient, historyLimit(c))
	if err != nil {
		log.Printf("Error fetching classification history: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"records": records,
	})
}

// GetReport aggregates recent history into a sentiment report.
func GetReport(c *gin.Context, firestoreClient *firestore.Client) {
	records, err := db.GetRecentClassifications(c.Request.Context(), firestoreClient, historyLimit(c))
	if err != nil {
		log.Printf("Error fetching classification history for report: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats.BuildReport(records))
}

// GetDecisionCounts tallies the whole history collection per decision.
func GetDecisionCounts(c *gin.Context, firestoreClient *firestore.Client) {
	counts, err := db.CountByDecision(c.Request.Context(), firestoreClient)
	if err != nil {
		log.Printf("Error counting classifications: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
