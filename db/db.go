package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"go-reviewbird/types"
)

const classificationsCollection = "classifications"

// FirestoreClient is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client from the base64
// FIREBASE_CREDENTIALS env var.
func InitFirestore() (*firestore.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		var creds []byte
		creds, err = base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Firestore credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(creds)
		var app *firebase.App
		app, err = firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Fatalf("Error initializing Firestore: %v", err)
		}

		client, err = app.Firestore(context.Background())
		if err != nil {
			log.Fatalf("Error getting Firestore client: %v", err)
		}
	})

	return client, err
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}

// SaveClassification persists one classification record. A missing ID is
// filled in with a fresh UUID; the stored record is returned.
func SaveClassification(ctx context.Context, client *firestore.Client, rec types.ClassificationRecord) (types.ClassificationRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := client.Collection(classificationsCollection).Doc(rec.ID).Set(ctx, rec)
	if err != nil {
		return rec, fmt.Errorf("failed to save classification %s: %w", rec.ID, err)
	}
	return rec, nil
}

// GetRecentClassifications returns up to limit records, newest first.
func GetRecentClassifications(ctx context.Context, client *firestore.Client, limit int) ([]types.ClassificationRecord, error) {
	docs, err := client.Collection(classificationsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query classifications: %w", err)
	}

	records := make([]types.ClassificationRecord, 0, len(docs))
	for _, doc := range docs {
		var rec types.ClassificationRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode classification %s: %w", doc.Ref.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// CountByDecision tallies the whole history collection per decision.
func CountByDecision(ctx context.Context, client *firestore.Client) (types.DecisionCount, error) {
	var counts types.DecisionCount

	tally := []struct {
		decision types.Decision
		target   *int
	}{
		{types.Positive, &counts.PositiveCount},
		{types.Negative, &counts.NegativeCount},
		{types.Neutral, &counts.NeutralCount},
	}

	for _, t := range tally {
		docs, err := client.Collection(classificationsCollection).
			Where("decision", "==", string(t.decision)).
			Documents(ctx).
			GetAll()
		if err != nil {
			return counts, fmt.Errorf("failed to count %s classifications: %w", t.decision, err)
		}
		*t.target = len(docs)
	}

	return counts, nil
}

// DeleteClassification removes one record by ID.
func DeleteClassification(ctx context.Context, client *firestore.Client, id string) error {
	_, err := client.Collection(classificationsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete classification %s: %w", id, err)
	}
	return nil
}
