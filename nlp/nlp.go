package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"

	"go-reviewbird/types"
)

// languageClient is a singleton languageClient instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// AnalyzeSentiment asks the Cloud Natural Language API for a second opinion
// on a review. Its score lives in [-1, 1], unlike the hosted model's [0, 1]
// confidence, so the two are shown side by side rather than compared.
func AnalyzeSentiment(client *language.Client, text string) (types.Sentiment, error) {
	var sentiment types.Sentiment
	ctx := context.Background()
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeSentiment(ctx, req)
	if err != nil {
		return sentiment, fmt.Errorf("AnalyzeSentiment request error: %w", err)
	}

	sentiment.Score = resp.DocumentSentiment.Score
	sentiment.Magnitude = resp.DocumentSentiment.Magnitude

	return sentiment, nil
}

// InitLanguageClient initializes and returns a language client from the
// base64 NATURAL_LANGUAGE_CREDENTIALS env var.
func InitLanguageClient() (*language.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		var creds []byte
		creds, err = base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Natural Language credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(context.Background(), opt)
		if err != nil {
			log.Fatalf("Failed to create Natural Language client: %v", err)
		}
	})

	return languageClient, err
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}
