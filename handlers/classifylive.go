package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bluesky-social/indigo/xrpc"
	"github.com/gin-gonic/gin"

	"go-reviewbird/classifier"
	"go-reviewbird/types"
)

const (
	feedMethod = "app.bsky.feed.getFeed"
	// Curated product-chatter feed used for live demo classifications.
	liveFeedURI = "at://did:plc:qiknc4t5rq7yngvz7g4aezq7/app.bsky.feed.generator/aaaejsyozb6iq"
)

// ClassifyLive fetches one post from a Bluesky feed and runs its text
// through the classifier, showing the adapter against organic text.
func ClassifyLive(c *gin.Context, clf *classifier.Classifier) {
	client := &xrpc.Client{
		Client:    &http.Client{Timeout: 10 * time.Second},
		Host:      "https://public.api.bsky.app",
		UserAgent: nil,
	}

	cursor := c.Query("cursor")
	if cursor != "" {
		cursor = strings.ReplaceAll(cursor, " ", "+")
	}

	params := map[string]interface{}{
		"feed":   liveFeedURI,
		"limit":  1, // just fetch 1 post for demonstration
		"cursor": cursor,
	}

	var out types.FeedResponse
	if err := client.Do(c.Request.Context(), xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		log.Printf("Error fetching feed via xrpc: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if len(out.Feed) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No feed items returned"})
		return
	}

	post := out.Feed[0].Post
	if post.Record.Text == "" {
		c.JSON(http.StatusOK, gin.H{"message": "First feed item has no text"})
		return
	}

	result, err := clf.Classify(c.Request.Context(), post.Record.Text, credential(c))
	if err != nil {
		log.Printf("Error classifying live post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":         post.Author.DisplayName,
		"handle":         post.Author.Handle,
		"uri":            post.URI,
		"content":        post.Record.Text,
		"classification": result,
		"cursor":         out.Cursor,
	})
}
